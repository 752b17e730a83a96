package strlit

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDecodeLiteralNoAllocPlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mediakit.strlit")
	defer teardown()

	tests := []struct {
		name string
		src  string
		want string
		rest string
	}{
		{"terminated", `hello"world`, "hello", `"world`},
		{"unterminated", "hello", "hello", ""},
		{"empty terminated", `"tail`, "", `"tail`},
		{"empty unterminated", "", "", ""},
		{"quote only remainder", `abc"`, "abc", `"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst Segment
			src := Segment(tt.src)
			if err := DecodeLiteralNoAlloc(&dst, &src); err != nil {
				t.Fatalf("DecodeLiteralNoAlloc(%q): %v", tt.src, err)
			}
			if string(dst) != tt.want {
				t.Errorf("decoded = %q; want %q", dst, tt.want)
			}
			if string(src) != tt.rest {
				t.Errorf("remainder = %q; want %q", src, tt.rest)
			}
		})
	}
}

func TestDecodeLiteralNoAllocEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mediakit.strlit")
	defer teardown()

	tests := []struct {
		name string
		src  string
		want string
		rest string
	}{
		{"newline", `a\nb"`, "a\nb", `"`},
		{"escaped quote", `a\"b"c`, `a"b`, `"c`},
		{"escaped backslash", `a\\n"`, `a\n`, `"`},
		{"hex", `\x41\x42"`, "AB", `"`},
		{"unicode", `smile \u263A!"`, "smile \u263a!", `"`},
		{"adjacent escapes", `\t\t\t"`, "\t\t\t", `"`},
		{"escape at end unterminated", `x\n`, "x\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst Segment
			src := Segment(tt.src)
			if err := DecodeLiteralNoAlloc(&dst, &src); err != nil {
				t.Fatalf("DecodeLiteralNoAlloc(%q): %v", tt.src, err)
			}
			if string(dst) != tt.want {
				t.Errorf("decoded = %q; want %q", dst, tt.want)
			}
			if string(src) != tt.rest {
				t.Errorf("remainder = %q; want %q", src, tt.rest)
			}
		})
	}
}

// TestDecodeLiteralNoAllocBorrows pins down the zero-copy fast path: with a
// nil destination and no escapes in the literal, the decoded segment is a
// view into the input, not a copy.
func TestDecodeLiteralNoAllocBorrows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mediakit.strlit")
	defer teardown()

	doc := Segment(`borrowed"rest`)
	var dst Segment
	src := doc
	if err := DecodeLiteralNoAlloc(&dst, &src); err != nil {
		t.Fatalf("DecodeLiteralNoAlloc: %v", err)
	}
	if string(dst) != "borrowed" {
		t.Fatalf("decoded = %q; want %q", dst, "borrowed")
	}
	if &dst[0] != &doc[0] {
		t.Error("expected the decoded segment to borrow the input storage")
	}

	// A non-nil destination switches to append mode and must not alias.
	dst = Segment("pre:")
	src = doc
	if err := DecodeLiteralNoAlloc(&dst, &src); err != nil {
		t.Fatalf("DecodeLiteralNoAlloc: %v", err)
	}
	if string(dst) != "pre:borrowed" {
		t.Fatalf("decoded = %q; want %q", dst, "pre:borrowed")
	}
	if &dst[len(dst)-1] == &doc[7] {
		t.Error("append mode must copy, not alias the input")
	}
}

func TestDecodeLiteralNoAllocMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mediakit.strlit")
	defer teardown()

	tests := []struct {
		name string
		src  string
		dst  string // decoded progress up to the failure
		rest string // remainder, just after the offending backslash
	}{
		{"unknown escape", `ab\qcd"`, "ab", `qcd"`},
		{"bad hex", `ab\x4g"`, "ab", `x4g"`},
		{"trailing backslash", `ab\`, "ab", ""},
		{"leading escape fails", `\q`, "", "q"},
		{"progress kept", `a\tb\u12"`, "a\tb", `u12"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst Segment
			src := Segment(tt.src)
			err := DecodeLiteralNoAlloc(&dst, &src)
			if !errors.Is(err, ErrMalformedEscape) {
				t.Fatalf("DecodeLiteralNoAlloc(%q) = %v; want ErrMalformedEscape", tt.src, err)
			}
			if string(dst) != tt.dst {
				t.Errorf("partial decode = %q; want %q", dst, tt.dst)
			}
			if string(src) != tt.rest {
				t.Errorf("remainder = %q; want %q", src, tt.rest)
			}
		})
	}
}

// TestDecodeLiteralOwns verifies the guaranteed-copy postcondition: after
// DecodeLiteral, mutating the input document cannot change the result.
func TestDecodeLiteralOwns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mediakit.strlit")
	defer teardown()

	doc := Segment(`payload"rest`)
	var dst Segment
	src := doc
	if err := DecodeLiteral(&dst, &src); err != nil {
		t.Fatalf("DecodeLiteral: %v", err)
	}
	if string(dst) != "payload" {
		t.Fatalf("decoded = %q; want %q", dst, "payload")
	}
	if &dst[0] == &doc[0] {
		t.Error("DecodeLiteral must not return a borrowed view")
	}
	doc[0] = 'X'
	if string(dst) != "payload" {
		t.Errorf("decoded segment changed to %q after input mutation", dst)
	}
}

func TestDecodeLiteralEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mediakit.strlit")
	defer teardown()

	var dst Segment
	src := Segment("")
	if err := DecodeLiteral(&dst, &src); err != nil {
		t.Fatalf("DecodeLiteral: %v", err)
	}
	if dst == nil {
		t.Error("empty decode should produce a non-nil empty segment")
	}
	if len(dst) != 0 || len(src) != 0 {
		t.Errorf("decoded = %q, remainder = %q; want both empty", dst, src)
	}
}

func TestDecodeLiteralAppends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mediakit.strlit")
	defer teardown()

	dst := Segment(nil)
	for _, part := range []string{`one"`, ` two"`, ` three"`} {
		src := Segment(part)
		if err := DecodeLiteral(&dst, &src); err != nil {
			t.Fatalf("DecodeLiteral(%q): %v", part, err)
		}
	}
	if string(dst) != "one two three" {
		t.Errorf("accumulated = %q; want %q", dst, "one two three")
	}
}

func TestDecodeQuoted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mediakit.strlit")
	defer teardown()

	var dst Segment
	src := Segment(`"a\tb" tail`)
	if err := DecodeQuoted(&dst, &src); err != nil {
		t.Fatalf("DecodeQuoted: %v", err)
	}
	if string(dst) != "a\tb" {
		t.Errorf("decoded = %q; want %q", dst, "a\tb")
	}
	if string(src) != " tail" {
		t.Errorf("remainder = %q; want %q", src, " tail")
	}
}

func TestDecodeQuotedMissingQuote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mediakit.strlit")
	defer teardown()

	var dst Segment
	src := Segment(`no quote`)
	err := DecodeQuoted(&dst, &src)
	if !errors.Is(err, ErrMissingQuote) {
		t.Fatalf("DecodeQuoted = %v; want ErrMissingQuote", err)
	}
	if string(src) != "no quote" {
		t.Errorf("DecodeQuoted consumed input, %q left", src)
	}
}

func TestDecodeQuotedUnterminated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mediakit.strlit")
	defer teardown()

	var dst Segment
	src := Segment(`"abc`)
	err := DecodeQuoted(&dst, &src)
	if !errors.Is(err, ErrUnterminatedLiteral) {
		t.Fatalf("DecodeQuoted = %v; want ErrUnterminatedLiteral", err)
	}
	if string(dst) != "abc" {
		t.Errorf("decoded progress = %q; want %q", dst, "abc")
	}
	if len(src) != 0 {
		t.Errorf("remainder = %q; want empty", src)
	}
}
