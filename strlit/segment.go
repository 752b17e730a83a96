package strlit

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

// Byte segments: views onto input text and growable decode output

var errSegmentBounds = errors.New("strlit: segment bounds error")

// MaxSegmentSize bounds the size any single segment may grow to by appending.
// The decoders never grow their output beyond the input they were given, so
// this limit guards against runaway callers rather than against inputs.
const MaxSegmentSize = 1 << 30

// Segment is a window onto a byte sequence: a pointer+length view.
//
// Segments are consumed by replacing them with suffix views (Cut, Splice),
// never by mutating bytes in place. A nil Segment is an "unset" buffer and is
// observably distinct from a non-nil empty Segment; the literal decoder uses
// this distinction for its no-copy fast path.
type Segment []byte

// Cut returns the suffix of s starting at n. n is clamped to [0, len(s)].
func (s Segment) Cut(n int) Segment {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[n:]
}

// Splice returns the sub-view s[from:to]. Both bounds are clamped to
// [0, len(s)], and from is clamped to to. Splice never fails; use View when
// out-of-range arguments should be reported instead of clamped.
func (s Segment) Splice(from, to int) Segment {
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from > to {
		from = to
	}
	return s[from:to]
}

// View returns n bytes at the given offset.
// The segment returned is a sub-slice of s.
func (s Segment) View(from, n int) (Segment, error) {
	if from < 0 || n < 0 || from+n > len(s) {
		return nil, errSegmentBounds
	}
	return s[from : from+n], nil
}

// String copies the segment out as a string.
func (s Segment) String() string {
	return string(s)
}

// --- Appending ---------------------------------------------------------

// Append appends a copy of src to *dst, growing *dst as needed. Appending to
// a nil *dst allocates. The grown segment never aliases src's storage.
func Append(dst *Segment, src Segment) {
	if len(src) == 0 {
		return
	}
	appendGuard(len(*dst), len(src))
	*dst = append(*dst, src...)
}

// AppendByte appends the single byte c to *dst.
func AppendByte(dst *Segment, c byte) {
	appendGuard(len(*dst), 1)
	*dst = append(*dst, c)
}

// AppendRune appends the UTF-8 encoding of r to *dst (1–4 bytes). Code points
// that are not valid runes, such as surrogate halves, encode as U+FFFD.
func AppendRune(dst *Segment, r rune) {
	appendGuard(len(*dst), utf8.UTFMax)
	*dst = utf8.AppendRune(*dst, r)
}

// Appendf appends the formatted arguments to *dst, in the manner of
// fmt.Appendf. It exists so that chained formatted output can share one
// growing segment.
func Appendf(dst *Segment, format string, args ...any) {
	*dst = fmt.Appendf(*dst, format, args...)
	assert(len(*dst) <= MaxSegmentSize, "segment exceeds maximum segment size")
}

// appendGuard asserts that growing a segment of size have by more bytes stays
// within MaxSegmentSize. Violations are programming errors, not input errors.
func appendGuard(have, more int) {
	total, err := checkedAddInt(have, more)
	assert(err == nil, "segment size arithmetic overflow")
	assert(total <= MaxSegmentSize, "segment exceeds maximum segment size")
}

// --- Checked arithmetic --------------------------------------------------

// checkedAddInt checks for overflow in addition of two integers
func checkedAddInt(a, b int) (int, error) {
	if b > 0 && a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	if b < 0 && a < math.MinInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}
