package strlit

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

// scanDoc is a small configuration snippet with one well-formed literal, one
// literal with a malformed escape, one plain literal and one unterminated
// literal at the end.
const scanDoc = `title = "A\tB" bad = "no\qgood" ok = "x" last = "open`

type ScanTestEnviron struct {
	suite.Suite
	report ScanReport
}

// listen for 'go test' command --> run test methods
func TestScanFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mediakit.strlit")
	defer teardown()
	suite.Run(t, new(ScanTestEnviron))
}

// run once, before test suite methods
func (env *ScanTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	env.report = ScanLiterals(Segment(scanDoc))
}

// --- Tests -----------------------------------------------------------------

func (env *ScanTestEnviron) TestScanLiterals() {
	lits := env.report.Literals
	env.Require().Len(lits, 3, "expected 3 decoded literals, defective one dropped")
	env.Equal("A\tB", lits[0].String(), "expected the tab escape to be decoded")
	env.Equal("x", lits[1].String(), "expected the plain literal to survive")
	env.Equal("open", lits[2].String(), "expected the unterminated literal's content to be kept")
}

func (env *ScanTestEnviron) TestScanErrors() {
	errs := env.report.Errors()
	env.Require().Len(errs, 1, "expected exactly one decoding error")
	env.Equal(SeverityCritical, errs[0].Severity, "malformed escapes are critical")
	env.Equal(1, errs[0].Literal, "the defective literal is the second one")
	env.Equal(strings.Index(scanDoc, `\q`)+1, errs[0].Offset,
		"expected the error offset to point just after the backslash")
}

func (env *ScanTestEnviron) TestScanWarnings() {
	warns := env.report.Warnings()
	env.Require().Len(warns, 1, "expected exactly one warning")
	env.Equal(3, warns[0].Literal, "the unterminated literal is the fourth one")
	env.Equal(strings.LastIndexByte(scanDoc, '"'), warns[0].Offset,
		"expected the warning offset to point at the opening quote")
}

func (env *ScanTestEnviron) TestScanCriticalAccessors() {
	env.True(env.report.HasCriticalErrors(), "report should flag critical errors")
	crit := env.report.CriticalErrors()
	env.Require().Len(crit, 1, "expected one critical error")
	env.Equal(SeverityCritical, crit[0].Severity)
}

func (env *ScanTestEnviron) TestScanCleanDocument() {
	report := ScanLiterals(Segment(`a = "1" b = "2"`))
	env.Len(report.Literals, 2)
	env.Empty(report.Errors(), "clean document must not produce errors")
	env.Empty(report.Warnings(), "clean document must not produce warnings")
	env.False(report.HasCriticalErrors())
}

func (env *ScanTestEnviron) TestScanNoQuotes() {
	report := ScanLiterals(Segment(`nothing quoted here`))
	env.Empty(report.Literals)
	env.Empty(report.Errors())
	env.Empty(report.Warnings())
}

func (env *ScanTestEnviron) TestScanAdjacentLiterals() {
	report := ScanLiterals(Segment(`"a""""b"`))
	env.Require().Len(report.Literals, 3)
	env.Equal("a", report.Literals[0].String())
	env.Equal("", report.Literals[1].String())
	env.NotNil(report.Literals[1], "empty literal should be an empty segment, not nil")
	env.Equal("b", report.Literals[2].String())
}

func (env *ScanTestEnviron) TestScanEscapedQuoteInDefectiveLiteral() {
	// The defective literal contains an escaped quote after the failure
	// point. Recovery must not mistake it for the terminator.
	doc := Segment(`x = "a\q \" still inside" y = "fine"`)
	report := ScanLiterals(doc)
	env.Require().Len(report.Literals, 1, "only the second literal decodes")
	env.Equal("fine", report.Literals[0].String())
	env.Require().Len(report.Errors(), 1)
	env.Equal(0, report.Errors()[0].Literal)
}

func (env *ScanTestEnviron) TestScanResultsAreOwned() {
	doc := Segment(`key = "value"`)
	report := ScanLiterals(doc)
	env.Require().Len(report.Literals, 1)
	doc[7] = 'X' // first byte of the literal body
	env.Equal("value", report.Literals[0].String(),
		"scan results must not alias the document")
}
