package strlit

import "bytes"

// Scanning whole documents (configuration lines, scripts) for string
// literals. Unlike the single-literal decoders, the scanner does not stop at
// the first problem: it records issues and carries on, so that interactive
// callers can report everything at once.

// ScanReport is the result of ScanLiterals: the decoded literals in document
// order, plus every error and warning encountered. Literals that failed to
// decode are not included in Literals.
type ScanReport struct {
	Literals []Segment
	errors   []DecodeError
	warnings []DecodeWarning
}

// Errors returns all errors encountered during the scan. Clients can inspect
// them to decide whether the decoded literals are still usable.
func (r ScanReport) Errors() []DecodeError {
	if r.errors == nil {
		return []DecodeError{}
	}
	return r.errors
}

// Warnings returns all warnings encountered during the scan.
func (r ScanReport) Warnings() []DecodeWarning {
	if r.warnings == nil {
		return []DecodeWarning{}
	}
	return r.warnings
}

// CriticalErrors returns the subset of errors with critical severity.
func (r ScanReport) CriticalErrors() []DecodeError {
	critical := make([]DecodeError, 0)
	for _, err := range r.errors {
		if err.Severity == SeverityCritical {
			critical = append(critical, err)
		}
	}
	return critical
}

// HasCriticalErrors reports whether the scan recorded any critical error.
func (r ScanReport) HasCriticalErrors() bool {
	for _, err := range r.errors {
		if err.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// ScanLiterals walks doc from left to right, decoding every quoted string
// literal it finds. Bytes outside quotes are ignored. Decoded literals are
// owned copies, safe to keep after doc is gone.
//
// A malformed escape inside a literal records a critical error; the literal
// is dropped, and scanning resumes after that literal's terminating quote.
// A document that ends inside a literal records a warning for the
// unterminated literal, whose decoded content (well formed up to the end) is
// kept.
func ScanLiterals(doc Segment) ScanReport {
	ic := &issueCollector{}
	var literals []Segment
	rest := doc
	inx := 0
	for {
		q := indexQuote(rest)
		i, ok := q.Unwrap()
		if !ok {
			break
		}
		litStart := len(doc) - len(rest) + i
		rest = rest.Cut(i + 1)
		var dst Segment
		if err := DecodeLiteral(&dst, &rest); err != nil {
			off := len(doc) - len(rest)
			ic.addError(off, inx, "malformed escape in string literal", SeverityCritical)
			tracer().Debugf("scan: dropping literal #%d after escape error at offset %d", inx, off)
			rest = skipLiteralTail(rest)
			inx++
			continue
		}
		literals = append(literals, dst)
		if len(rest) == 0 {
			ic.addWarning(litStart, inx, "unterminated string literal")
			inx++
			break
		}
		rest = rest.Cut(1) // the closing quote
		inx++
	}
	if ic.hasErrors() {
		tracer().Infof("scan: document contains %d defective literal(s)", len(ic.errors))
	}
	tracer().Debugf("scan: %d literals, %d errors, %d warnings",
		len(literals), len(ic.errors), len(ic.warnings))
	return ScanReport{Literals: literals, errors: ic.errors, warnings: ic.warnings}
}

// indexQuote returns the position of the next '"' in s, if any.
func indexQuote(s Segment) Option[int] {
	if i := bytes.IndexByte(s, '"'); i >= 0 {
		return Some(i)
	}
	return None[int]()
}

// skipLiteralTail advances past the terminating quote of a literal whose
// decoding already failed. Escaped byte pairs are skipped blindly, which is
// enough to not mistake an escaped quote for the terminator.
func skipLiteralTail(s Segment) Segment {
	i := 0
	for i < len(s) {
		switch s[i] {
		case '"':
			return s.Cut(i + 1)
		case '\\':
			i += 2
		default:
			i++
		}
	}
	return s.Cut(len(s))
}
