package strlit

// DecodeLiteralNoAlloc decodes the body of a string literal: it consumes
// *src until the first unescaped '"' or the end of input, expanding escape
// sequences and collecting the decoded bytes in *dst. On success, *src is
// left at the unconsumed remainder, which either starts with '"' or is
// empty; a closing quote is not required. The caller is responsible for
// skipping the quote characters themselves.
//
// If *dst is nil on entry and the literal contains no escape, *dst is set to
// a view borrowing the matched input bytes instead of a copy. Any other
// combination appends copies to *dst. Callers that must own the result
// should use DecodeLiteral.
//
// On failure (the only failure is a malformed escape), ErrMalformedEscape is
// returned; *src then points immediately after the offending backslash, and
// *dst holds everything decoded up to the failure. Callers should treat the
// decode as failed as a whole and not interpret the partial content.
func DecodeLiteralNoAlloc(dst *Segment, src *Segment) error {
	t := *src
	cur := 0
	for {
		switch {
		case cur >= len(t) || t[cur] == '"':
			*src = t.Cut(cur)
			t = t.Splice(0, cur)
			if *dst == nil {
				*dst = t
			} else {
				Append(dst, t)
			}
			return nil
		case t[cur] == '\\':
			Append(dst, t.Splice(0, cur))
			t = t.Cut(cur + 1)
			cur = 0
			if err := DecodeEscape(dst, &t); err != nil {
				*src = t
				tracer().Debugf("literal decode failed at %q", t.Splice(0, 8))
				return err
			}
		default:
			cur++
		}
	}
}

// DecodeLiteral is DecodeLiteralNoAlloc with a guaranteed-copy postcondition:
// on success *dst never aliases the original input, so mutating the input
// bytes afterwards cannot change the decoded content. If the underlying scan
// produced a borrowed view, exactly one copy is made; an empty result is
// always returned as a fresh (non-nil) empty segment.
//
// Failure behavior is that of DecodeLiteralNoAlloc.
func DecodeLiteral(dst *Segment, src *Segment) error {
	entry := *src
	if err := DecodeLiteralNoAlloc(dst, src); err != nil {
		return err
	}
	if borrowed(*dst, entry) {
		owned := make(Segment, len(*dst))
		copy(owned, *dst)
		*dst = owned
	}
	return nil
}

// borrowed reports whether out may be a view into the input segment the scan
// started from, or no buffer at all. Empty outputs count as borrowed: their
// (zero-length) views can still pin the input's backing array.
func borrowed(out, entry Segment) bool {
	if len(out) == 0 {
		return true
	}
	return len(entry) > 0 && &out[0] == &entry[0]
}

// DecodeQuoted decodes a complete quoted string literal at the start of
// *src, consuming both the opening and the closing '"'. On success, *src is
// left just after the closing quote and *dst holds an owned copy of the
// decoded content.
//
// Failure modes: ErrMissingQuote if *src does not start with '"' (nothing is
// consumed); ErrUnterminatedLiteral if input ends before the closing quote;
// ErrMalformedEscape as for DecodeLiteral. In the latter two cases *src and
// *dst reflect the inner decode's progress.
func DecodeQuoted(dst *Segment, src *Segment) error {
	s := *src
	if len(s) == 0 || s[0] != '"' {
		return ErrMissingQuote
	}
	s = s.Cut(1)
	if err := DecodeLiteral(dst, &s); err != nil {
		*src = s
		return err
	}
	if len(s) == 0 {
		*src = s
		return ErrUnterminatedLiteral
	}
	*src = s.Cut(1)
	return nil
}
