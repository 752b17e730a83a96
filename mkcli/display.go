package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/npillmayer/mediakit/timefmt"
	"github.com/pterm/pterm"
)

func timeOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return errors.New("usage: time <seconds> [format]"), false
	}
	fields := strings.SplitN(arg, " ", 2)
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return errors.New("seconds not numeric: " + fields[0]), false
	}
	format := getOptArg(fields, 1)
	if format == "" {
		pterm.Printf("%s\n", timefmt.Format(secs, true))
		return nil, false
	}
	out, err := timefmt.FormatFmt(format, secs)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s\n", out)
	return nil, false
}

func rectOp(intp *Intp, op *Op) (error, bool) {
	if op.noArg() {
		return errors.New("usage: rect x0 y0 x1 y1"), false
	}
	r, err := parseRect(op.arg)
	if err != nil {
		return err, false
	}
	intp.rect = r
	tracer().Infof("setting rect: %v", r)
	return nil, false
}

func unionOp(intp *Intp, op *Op) (error, bool) {
	if op.noArg() {
		return errors.New("usage: union x0 y0 x1 y1"), false
	}
	r, err := parseRect(op.arg)
	if err != nil {
		return err, false
	}
	intp.rect = intp.rect.Union(r)
	pterm.Printf("union: %s\n", intp.rect)
	return nil, false
}

func isectOp(intp *Intp, op *Op) (error, bool) {
	if op.noArg() {
		return errors.New("usage: isect x0 y0 x1 y1"), false
	}
	r, err := parseRect(op.arg)
	if err != nil {
		return err, false
	}
	clipped, ok := intp.rect.Intersect(r)
	intp.rect = clipped
	if !ok {
		pterm.Printf("isect: %s, no area left\n", intp.rect)
	} else {
		pterm.Printf("isect: %s, %dx%d\n", intp.rect, intp.rect.Dx(), intp.rect.Dy())
	}
	return nil, false
}
