package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/mediakit"
	"github.com/npillmayer/mediakit/strlit"
	"github.com/pterm/pterm"
)

var ERR_NO_REPORT = errors.New("no document scanned")

func unquoteOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return errors.New(`usage: unquote "<literal>"`), false
	}
	var dst strlit.Segment
	src := strlit.Segment(arg)
	if err := strlit.DecodeQuoted(&dst, &src); err != nil {
		pterm.Printf("failed %d bytes in, rest: %q\n", len(arg)-len(src), src.String())
		return err, false
	}
	pterm.Printf("content: %q\n", dst.String())
	pterm.Printf("rest:    %q\n", src.String())
	return nil, false
}

func unescapeOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return errors.New("usage: unescape <text>"), false
	}
	out, err := mediakit.Unescape(arg)
	if err != nil {
		return err, false
	}
	pterm.Printf("unescaped: %q\n", out)
	return nil, false
}

func scanOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return errors.New("usage: scan <text>"), false
	}
	intp.report = strlit.ScanLiterals(strlit.Segment(arg))
	intp.haveReport = true
	printReport(intp.report)
	return nil, false
}

func errorsOp(intp *Intp, op *Op) (error, bool) {
	if !intp.haveReport {
		return ERR_NO_REPORT, false
	}
	printIssues(intp.report)
	return nil, false
}

func printReport(report strlit.ScanReport) {
	pterm.Printf("document has %d well-formed literals\n", len(report.Literals))
	if len(report.Literals) > 0 {
		data := [][]string{
			{"#", "Content", "Bytes"},
		}
		for i, lit := range report.Literals {
			data = append(data, []string{
				fmt.Sprintf("%d", i),
				fmt.Sprintf("%q", lit.String()),
				fmt.Sprintf("%d", len(lit)),
			})
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
	printIssues(report)
}

func printIssues(report strlit.ScanReport) {
	for _, e := range report.Errors() {
		pterm.Error.Println(e.Error())
	}
	for _, w := range report.Warnings() {
		pterm.Println(w.String())
	}
	if !report.HasCriticalErrors() && len(report.Warnings()) == 0 {
		pterm.Info.Println("no issues")
	}
}
