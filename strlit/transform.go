package strlit

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Unescaper rewrites escape sequences to the bytes they denote while
// streaming. It implements golang.org/x/text/transform.Transformer, so it
// plugs into transform.Reader, transform.Writer and transform.Chain.
//
// Unescaper works on raw text: quote characters pass through unchanged and
// do not delimit anything. Use the literal decoders for quoted input.
//
// The zero value is ready to use. Unescaper is stateless, therefore a single
// value may be shared between transformations.
type Unescaper struct {
	transform.NopResetter
}

var _ transform.Transformer = Unescaper{}

// Transform decodes escape sequences from src into dst. A malformed escape
// aborts the transformation with ErrMalformedEscape; src is then consumed up
// to, but not including, the offending backslash.
func (Unescaper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		i := bytes.IndexByte(src[nSrc:], '\\')
		if i != 0 { // some plain text before the next escape
			run := len(src) - nSrc
			if i > 0 {
				run = i
			}
			n := copy(dst[nDst:], src[nSrc:nSrc+run])
			nDst += n
			nSrc += n
			if n < run {
				return nDst, nSrc, transform.ErrShortDst
			}
			continue
		}
		tail := Segment(src[nSrc+1:])
		if !escapeComplete(tail, atEOF) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		var buf [utf8.UTFMax]byte
		out := Segment(buf[:0])
		rest := tail
		if err := DecodeEscape(&out, &rest); err != nil {
			tracer().Debugf("unescaper: stopping at malformed escape, %d bytes in", nSrc)
			return nDst, nSrc, err
		}
		if len(dst)-nDst < len(out) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += 1 + (len(tail) - len(rest))
	}
	return nDst, nSrc, nil
}

// escapeComplete reports whether tail, the bytes following a backslash,
// certainly contains a full escape sequence. With atEOF there is nothing
// more to wait for and the decoder gets to judge the fragment as is.
func escapeComplete(tail Segment, atEOF bool) bool {
	if atEOF {
		return true
	}
	if len(tail) == 0 {
		return false
	}
	switch tail[0] {
	case 'x':
		return len(tail) >= 3
	case 'u':
		return len(tail) >= 5
	}
	return true
}
