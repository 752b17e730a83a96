package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mediakit/geom"
	"github.com/npillmayer/mediakit/strlit"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mediakit'
func tracer() tracing.Trace {
	return tracing.Select("mediakit")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.mediakit":        "Info",
		"trace.mediakit.strlit": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	docname := flag.String("scan", "", "Document to scan for string literals")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)        // will set the correct level later
	pterm.Info.Println("Welcome to the MediaKit CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("mk > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// scan document to work with
	if err := intp.loadDocument(*docname); err != nil { // document provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	level := tracing.LevelError
	switch *tlevel {
	case "Debug":
		level = tracing.LevelDebug
	case "Info":
		level = tracing.LevelInfo
	case "Error":
		level = tracing.LevelError
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().SetTraceLevel(level)
	tracing.Select("mediakit.strlit").SetTraceLevel(level)
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl       *readline.Instance
	report     strlit.ScanReport
	haveReport bool
	rect       geom.Rect
}

func (intp *Intp) String() string {
	if intp == nil {
		return "()"
	}
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("( rect=%s", intp.rect))
	if intp.haveReport {
		sb.WriteString(fmt.Sprintf(" literals=%d errors=%d warnings=%d",
			len(intp.report.Literals), len(intp.report.Errors()), len(intp.report.Warnings())))
	}
	sb.WriteString(" )")
	return sb.String()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(op)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

const NOOP = -1
const (
	// op-codes QUIT and ERRORS will not have arguments
	QUIT int = iota
	ERRORS
	// op-codes below may have arguments
	HELP
	UNQUOTE
	UNESCAPE
	SCAN
	TIME
	RECT
	UNION
	ISECT
	TRACE
)

var opMap = map[string]int{
	"quit":     QUIT,
	"errors":   ERRORS,
	"help":     HELP,
	"unquote":  UNQUOTE,
	"unescape": UNESCAPE,
	"scan":     SCAN,
	"time":     TIME,
	"rect":     RECT,
	"union":    UNION,
	"isect":    ISECT,
	"trace":    TRACE,
}

var opNames = []string{
	"quit",
	"errors",
	"help",
	"unquote",
	"unescape",
	"scan",
	"time",
	"rect",
	"union",
	"isect",
	"trace",
}

// parseCommand splits a line into the command word and the free text
// argument, e.g. "unquote \"a b\" tail" or "time 3661.5 %m min".
func (intp *Intp) parseCommand(line string) (*Op, error) {
	op := &Op{code: NOOP}
	c := strings.SplitN(line, " ", 2)
	code, ok := opMap[strings.ToLower(c[0])]
	if !ok {
		code = HELP
	}
	op.code = code
	if op.code <= ERRORS {
		return op, nil
	}
	op.arg = getOptArg(c, 1)
	if op.arg == "" {
		tracer().Infof("%s", opNames[op.code])
	} else {
		tracer().Infof("%s: working on '%s'", opNames[op.code], op.arg)
	}
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	ERRORS:   errorsOp,
	HELP:     helpOp,
	UNQUOTE:  unquoteOp,
	UNESCAPE: unescapeOp,
	SCAN:     scanOp,
	TIME:     timeOp,
	RECT:     rectOp,
	UNION:    unionOp,
	ISECT:    isectOp,
	TRACE:    traceOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	tracer().Debugf("op = %v", op)
	if op.code == NOOP {
		return nil, false
	}
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	err, stop = f(intp, op)
	if err != nil {
		pterm.Error.Println(err)
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// traceOp changes the trace level at runtime, for both trace keys.
func traceOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("usage: trace Debug|Info|Error"), false
	}
	level := tracing.LevelError
	switch arg {
	case "Debug":
		level = tracing.LevelDebug
	case "Info":
		level = tracing.LevelInfo
	case "Error":
		level = tracing.LevelError
	default:
		return fmt.Errorf("invalid trace level: %s", arg), false
	}
	tracer().SetTraceLevel(level)
	tracing.Select("mediakit.strlit").SetTraceLevel(level)
	pterm.Printf("trace level is %s\n", arg)
	return nil, false
}

// --- Document Loading ---------------------------------------------------

// loadDocument scans a document file for string literals. An empty name is
// not an error: the interpreter starts without a report.
func (intp *Intp) loadDocument(docname string) error {
	if docname == "" {
		return nil
	}
	data, err := os.ReadFile(docname)
	if err != nil {
		tracer().Errorf("cannot load document %s: %s", docname, err)
		return err
	}
	tracer().Infof("loaded document = %s, %d bytes", docname, len(data))
	intp.report = strlit.ScanLiterals(data)
	intp.haveReport = true
	pterm.Printf("document literals: %d\n", len(intp.report.Literals))
	return nil
}

// ----------------------------------------------------------------------

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) noArg() bool {
	if op.arg == "" {
		return true
	}
	return false
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}

// parseRect reads four whitespace-separated integer coordinates.
func parseRect(arg string) (geom.Rect, error) {
	fields := strings.Fields(arg)
	if len(fields) != 4 {
		return geom.Rect{}, fmt.Errorf("expected 4 coordinates, got %d", len(fields))
	}
	var coords [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return geom.Rect{}, fmt.Errorf("coordinate not numeric: %v", f)
		}
		coords[i] = n
	}
	return geom.Rect{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}, nil
}
