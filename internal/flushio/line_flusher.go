package flushio

import "bytes"

// LineFlusher wraps a WriteFlusher, flushing it after every write that
// contains a line feed; this gives terminal style line buffering over an
// otherwise fully buffered stream.
type LineFlusher struct {
	WriteFlusher
}

// Write writes p, then flushes if p contains a line feed.
func (lf LineFlusher) Write(p []byte) (n int, err error) {
	n, err = lf.WriteFlusher.Write(p)
	if err == nil && bytes.IndexByte(p[:n], '\n') >= 0 {
		err = lf.WriteFlusher.Flush()
	}
	return n, err
}

// WriteByte writes c, then flushes if it is a line feed.
func (lf LineFlusher) WriteByte(c byte) error {
	if err := WriteByte(lf.WriteFlusher, c); err != nil {
		return err
	}
	if c == '\n' {
		return lf.WriteFlusher.Flush()
	}
	return nil
}
