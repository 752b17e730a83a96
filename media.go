/*
Package mediakit is a support kit for building media player front ends.

Front ends keep re-implementing the same small chores: option values and
script input arrive as quoted, escaped string literals; playback positions
have to be displayed as clock-like timestamps; window and video rectangles
get clipped and merged during layout. This module collects those chores in
small, independent packages:

▪︎ Package strlit decodes C-style escaped string literals, one literal at a
time or whole documents at once, with a zero-copy fast path and a streaming
transformer.

▪︎ Package timefmt formats playback timestamps with printf-like directives,
the way players label their OSD and status lines.

▪︎ Package geom provides integer rectangle arithmetic for window placement
and video region clipping.

The root package offers convenience wrappers for the most common calls.
Clients with more specific needs, such as decoding literals without copying
or streaming large scripts, should use the subpackages directly.

# Status

Work in progress.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package mediakit
