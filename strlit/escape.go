package strlit

// The escape dialect. Exactly one decoded form per escape:
//
// | Escape | Bytes appended            | Input consumed |
// |--------|---------------------------|----------------|
// | \" \\  | the escaped byte itself   | 1              |
// | \' \b  | 0x27, 0x08                | 1              |
// | \f \n  | 0x0C, 0x0A                | 1              |
// | \r \t  | 0x0D, 0x09                | 1              |
// | \e     | 0x1B (ESC)                | 1              |
// | \xHH   | one byte, value HH        | 3              |
// | \uHHHH | UTF-8 of code point HHHH  | 5              |
//
// The table rows for \x and \u require the full digit count; there is no
// shorter form in this dialect.

// simpleEscape maps a trigger byte to its decoded byte.
func simpleEscape(c byte) (byte, bool) {
	switch c {
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'e':
		return 0x1b, true
	case '\'':
		return '\'', true
	}
	return 0, false
}

// hexValue parses a leading run of hexadecimal digits in s and returns the
// value together with the unparsed remainder. No sign, no base prefix, no
// whitespace skipping. Callers treat the parse as complete only if the
// remainder is empty.
func hexValue(s Segment) (uint32, Segment) {
	var v uint32
	i := 0
	for ; i < len(s); i++ {
		d := hexDigit(s[i])
		if d < 0 {
			break
		}
		v = v<<4 | uint32(d)
	}
	return v, s.Cut(i)
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// DecodeEscape decodes exactly one escape sequence located at the start of
// *code and appends its decoded form to *dst. *code must begin with the first
// byte after the introducing backslash; the caller has consumed the backslash
// itself. On success, *code is advanced past the escape.
//
// On failure, ErrMalformedEscape is returned and *code and *dst are left
// exactly as they were before the call.
func DecodeEscape(dst *Segment, code *Segment) error {
	c := *code
	if len(c) < 1 {
		return ErrMalformedEscape
	}
	if r, ok := simpleEscape(c[0]); ok {
		AppendByte(dst, r)
		*code = c.Cut(1)
		return nil
	}
	if c[0] == 'x' && len(c) >= 3 {
		v, rest := hexValue(c.Splice(1, 3))
		if len(rest) != 0 {
			return ErrMalformedEscape
		}
		AppendByte(dst, byte(v))
		*code = c.Cut(3)
		return nil
	}
	if c[0] == 'u' && len(c) >= 5 {
		v, rest := hexValue(c.Splice(1, 5))
		if len(rest) != 0 {
			return ErrMalformedEscape
		}
		AppendRune(dst, rune(v))
		*code = c.Cut(5)
		return nil
	}
	return ErrMalformedEscape
}
