package runeio

import (
	"io"
	"unicode/utf8"
)

// WriteCodePoint writes the Unicode code point numerically equal to c, in
// utf8 form, to the given writer: ASCII bytes are written as is, while bytes
// 0x80 through 0xff become the two byte encodings of U+0080 through U+00FF.
func WriteCodePoint(w io.Writer, c byte) (n int, err error) {
	if c < utf8.RuneSelf {
		if bw, ok := w.(io.ByteWriter); ok {
			return 1, bw.WriteByte(c)
		}
		return w.Write([]byte{c})
	}
	var buf [utf8.UTFMax]byte
	return w.Write(buf[:utf8.EncodeRune(buf[:], rune(c))])
}
