package timefmt

import (
	"errors"
	"math"

	"github.com/npillmayer/mediakit/strlit"
)

// NoPTS marks an unknown presentation timestamp. Formatting it yields the
// string "unknown" for every format.
const NoPTS = -0x1p63

// ErrBadFormat is returned for a '%' followed by an unknown directive, or a
// '%' that ends the format string.
var ErrBadFormat = errors.New("timefmt: bad directive in time format")

// FormatFmt renders the timestamp t, given in seconds, according to a format
// string with printf-like directives:
//
//	%h   hours, unpadded, with sign
//	%H   hours, two digits, with sign
//	%m   total minutes, unpadded, with sign
//	%M   minutes within the hour, two digits, no sign
//	%s   total seconds, unpadded, with sign
//	%S   seconds within the minute, two digits, no sign
//	%T   milliseconds, three digits, no sign
//	%%   a literal '%'
//
// All other bytes are copied verbatim. The sign is emitted at most once per
// directive and only for negative timestamps. NoPTS, NaN and infinities
// format as "unknown".
func FormatFmt(format string, t float64) (string, error) {
	if t == NoPTS || math.IsNaN(t) || math.IsInf(t, 0) {
		return "unknown", nil
	}
	sign := ""
	if t < 0 {
		sign = "-"
		t = -t
	}
	itime := int64(t)
	ms := int64((t - float64(itime)) * 1000)
	h := itime / 3600
	tm := itime / 60
	m := tm % 60
	s := itime % 60

	var out strlit.Segment
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			strlit.AppendByte(&out, c)
			continue
		}
		i++
		if i >= len(format) {
			return "", ErrBadFormat
		}
		switch format[i] {
		case 'h':
			strlit.Appendf(&out, "%s%d", sign, h)
		case 'H':
			strlit.Appendf(&out, "%s%02d", sign, h)
		case 'm':
			strlit.Appendf(&out, "%s%d", sign, tm)
		case 'M':
			strlit.Appendf(&out, "%02d", m)
		case 's':
			strlit.Appendf(&out, "%s%d", sign, itime)
		case 'S':
			strlit.Appendf(&out, "%02d", s)
		case 'T':
			strlit.Appendf(&out, "%03d", ms)
		case '%':
			strlit.AppendByte(&out, '%')
		default:
			tracer().Debugf("time format rejects directive %%%c", format[i])
			return "", ErrBadFormat
		}
	}
	return out.String(), nil
}

// Format renders t as "HH:MM:SS", or as "HH:MM:SS.mmm" when fractions is
// set. Hours grow beyond two digits for timestamps of 100 hours and more.
func Format(t float64, fractions bool) string {
	f := "%H:%M:%S"
	if fractions {
		f = "%H:%M:%S.%T"
	}
	out, _ := FormatFmt(f, t)
	return out
}
