package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/jcorbin/gobf/internal/runeio"
)

type ioCore struct {
	in  io.ByteReader
	out flushio.WriteFlusher

	eof     EOFMode
	utf8Out bool
}

func (ioc *ioCore) writeByte(c byte) (err error) {
	if ioc.utf8Out {
		_, err = runeio.WriteCodePoint(ioc.out, c)
	} else {
		err = flushio.WriteByte(ioc.out, c)
	}
	if err != nil {
		return RuntimeError{"writing", err}
	}
	return nil
}

// readByte flushes any pending output, then reads one byte of input; at the
// end of input, the EOF mode decides what value replaces cur.
func (ioc *ioCore) readByte(cur byte) (byte, error) {
	if err := ioc.flush(); err != nil {
		return 0, err
	}
	c, err := ioc.in.ReadByte()
	if err == io.EOF {
		return ioc.eof.value(cur), nil
	} else if err != nil {
		return 0, RuntimeError{"reading", err}
	}
	return c, nil
}

func (ioc *ioCore) flush() error {
	if err := ioc.out.Flush(); err != nil {
		return RuntimeError{"flushing", err}
	}
	return nil
}

// EOFMode determines what an input instruction stores once input is exhausted.
type EOFMode uint8

// EOF modes; EOFZero is the default.
const (
	EOFZero EOFMode = iota // store 0
	EOFMax                 // store 255
	EOFKeep                // leave the cell unchanged
)

var eofModeNames = [...]string{
	EOFZero: "zero",
	EOFMax:  "max",
	EOFKeep: "keep",
}

func (mode EOFMode) value(cur byte) byte {
	switch mode {
	case EOFMax:
		return 0xff
	case EOFKeep:
		return cur
	default:
		return 0
	}
}

func (mode EOFMode) String() string {
	if int(mode) < len(eofModeNames) {
		return eofModeNames[mode]
	}
	return fmt.Sprintf("EOFMode(%d)", uint8(mode))
}

// Set parses an EOF mode name, implementing flag.Value.
func (mode *EOFMode) Set(s string) error {
	for i, name := range eofModeNames {
		if s == name {
			*mode = EOFMode(i)
			return nil
		}
	}
	return fmt.Errorf("invalid EOF mode %q, expected one of %v", s, strings.Join(eofModeNames[:], ", "))
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

// logf logs a message after a mark, which is padded out by repeating its
// first character so that messages line up.
func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 && mark != "" {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
