package flushio

import (
	"bufio"
	"io"
	"io/ioutil"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discardWriteFlusher WriteFlusher = nopFlusher{ioutil.Discard}

// NewWriteFlusher creates a new flushable writer: if the given writer is an in
// memory buffer, or ioutil.Discard, it is wrapped with a noop Flush; if it
// already is a WriteFlusher it is returned as is; otherwise a new bufio.Writer
// is returned.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == ioutil.Discard {
		return discardWriteFlusher
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// WriteByte writes a single byte to any WriteFlusher, avoiding a slice
// allocation when it is also an io.ByteWriter.
func WriteByte(wf WriteFlusher, c byte) error {
	if bw, ok := wf.(io.ByteWriter); ok {
		return bw.WriteByte(c)
	}
	_, err := wf.Write([]byte{c})
	return err
}
