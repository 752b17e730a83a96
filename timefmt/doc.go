/*
Package timefmt formats playback timestamps with printf-like directives.

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package timefmt

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mediakit'
func tracer() tracing.Trace {
	return tracing.Select("mediakit")
}
