/*
Package strlit decodes C-style escaped string literals.
Intended audience for this package are:

▪︎ option and configuration parsers of media players and similar tools, which
receive values like `--osd-msg="line 1\nline 2"` and have to expand the
escapes the way a C string literal would

▪︎ interactive shells and scripting front ends that split command lines into
quoted arguments

▪︎ any application needing C-string escape semantics over byte slices, without
tying itself to the stricter dialects of strconv.Unquote or JSON

The dialect is the classic one: the simple escapes `\" \\ \b \f \n \r \t \e \'`,
two-digit hex bytes (`\x41`), and four-digit Unicode code points (`\u00e9`,
encoded to UTF-8 on output). There are no octal escapes and no `\u{...}`
braces in this dialect. Decoding a literal body stops at the first unescaped
quote or at the end of input; handling of the surrounding quote characters is
left to the caller (see [DecodeQuoted] for a convenience that does both).

The central currency of the package is [Segment], a pointer+length view onto
bytes. Input segments are consumed by replacing them with suffix views, never
by mutating bytes in place. Output segments grow by appending. A nil output
segment is distinct from an empty one: passing a nil destination to
[DecodeLiteralNoAlloc] permits the decoder to return a borrowed view into the
input when no escape occurs, avoiding any allocation. [DecodeLiteral] wraps
the same scan but guarantees an owned copy, which is what most callers want.

Decoding is a single left-to-right pass, O(1) extra work per escape. All
functions are safe for concurrent use on distinct arguments; no package state
is mutated after init.

# Status

The escape dialect is complete and stable. A streaming variant is available
as [Unescaper], a golang.org/x/text/transform.Transformer, for callers that
unescape whole byte streams rather than quoted literals. Document scanning
([ScanLiterals]) collects issues instead of stopping, which turned out to be
the shape every interactive consumer actually wanted.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package strlit

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mediakit.strlit'
func tracer() tracing.Trace {
	return tracing.Select("mediakit.strlit")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(fmt.Sprintf("assertion failed: %s", msg))
	}
}
