package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "escape", "escapes", "unquote", "unescape":
		pterm.Info.Println("String Literals / Escapes")
		pterm.Println(`
	A string literal is enclosed in '"' and may contain escape sequences:
	+--------+--------------------------+
	| \" \\  | the escaped byte itself  |
	| \' \b  | quote, backspace         |
	| \f \n  | formfeed, newline        |
	| \r \t  | return, tab              |
	| \e     | escape character (0x1B)  |
	| \xHH   | byte with hex value HH   |
	| \uHHHH | Unicode code point HHHH  |
	+--------+--------------------------+
	'unquote "<literal>"' decodes one quoted literal and shows the rest.
	'unescape <text>' expands escapes in the whole argument.
	`)
	case "scan", "errors":
		pterm.Info.Println("Scanning Documents")
		pterm.Println(`
	'scan <text>' walks the argument and decodes every quoted literal.
	A malformed escape drops its literal and is reported as an error;
	a document ending inside a literal keeps the content and is reported
	as a warning. 'errors' shows the report of the last scan again.

	Start the CLI with '-scan <file>' to scan a document file.
	`)
	case "time", "times", "timestamp":
		pterm.Info.Println("Timestamps")
		pterm.Println(`
	'time <seconds> [format]' renders a timestamp. Directives:
	+----+------------------------------+
	| %h | hours, unpadded, signed      |
	| %H | hours, two digits, signed    |
	| %m | total minutes, signed        |
	| %M | minutes in hour, two digits  |
	| %s | total seconds, signed        |
	| %S | seconds in minute, 2 digits  |
	| %T | milliseconds, three digits   |
	| %% | a literal '%'                |
	+----+------------------------------+
	Without a format, "%H:%M:%S.%T" is used.
	`)
	case "rect", "rects", "union", "isect":
		pterm.Info.Println("Rectangles")
		pterm.Println(`
	The interpreter keeps a current rectangle, shown in the status line.
	'rect x0 y0 x1 y1'  sets the current rectangle.
	'union x0 y0 x1 y1' grows it to enclose the given one.
	'isect x0 y0 x1 y1' clips it against the given one and tells
	whether any area is left.
	`)
	default:
		pterm.Info.Println("Commands: " + strings.Join(opNames, ", "))
		pterm.Println(`
	Try 'help <topic>' with one of: escapes, scan, time, rect
	`)
	}
}
