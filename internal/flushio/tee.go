package flushio

import "io"

// Tee returns a WriteFlusher that writes every byte into each of wfs in turn,
// stopping at the first to fail; nil entries are dropped, and nested tees are
// flattened. Flush flushes all of them, returning the first error.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case tee:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type tee []WriteFlusher

func (t tee) Write(p []byte) (int, error) {
	for _, wf := range t {
		if n, err := wf.Write(p); err != nil {
			return n, err
		} else if n < len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (t tee) WriteByte(c byte) error {
	for _, wf := range t {
		if err := WriteByte(wf, c); err != nil {
			return err
		}
	}
	return nil
}

func (t tee) Flush() (err error) {
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
