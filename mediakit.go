/*
Package mediakit bundles support libraries for media front ends.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package mediakit

import (
	"github.com/npillmayer/mediakit/strlit"
	"github.com/npillmayer/mediakit/timefmt"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/transform"
)

// tracer writes to trace with key 'mediakit'
func tracer() tracing.Trace {
	return tracing.Select("mediakit")
}

// UnquoteString decodes a quoted string literal at the start of s, for
// example an option value. It returns the decoded content together with the
// text following the closing quote.
func UnquoteString(s string) (content, rest string, err error) {
	var dst strlit.Segment
	src := strlit.Segment(s)
	if err := strlit.DecodeQuoted(&dst, &src); err != nil {
		return "", s, err
	}
	tracer().Debugf("unquoted a literal of %d bytes", len(dst))
	return dst.String(), src.String(), nil
}

// Unescape expands all escape sequences in s. Quotes are not special; for
// quoted input see UnquoteString.
func Unescape(s string) (string, error) {
	out, _, err := transform.String(strlit.Unescaper{}, s)
	return out, err
}

// FormatTime renders a timestamp given in seconds as "HH:MM:SS", with a
// ".mmm" millisecond suffix when fractions is set.
//
// This is a convenience API for the most common display formats. Package
// timefmt offers format directives for front ends that need more control.
func FormatTime(t float64, fractions bool) string {
	return timefmt.Format(t, fractions)
}
