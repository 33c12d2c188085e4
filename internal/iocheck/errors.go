package iocheck

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/errcode"
)

func NoInputError() error {
	msg := "No input file given, pass it as an argument " +
		"or set <em>transform.input</em> in the config file"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TransformInputError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: input file path is empty", fn),
	}
}

func EmptyChecklistError(path string) error {
	msg := "Checklist <em>%s</em> has no data rows"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CheckEmptyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: checklist %s is empty",
			fn, path),
	}
}

func ParserError(err error) error {
	msg := "Name verification did not finish"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CheckParserError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot verify names: %w",
			fn, err),
	}
}

func ReportError(path string, err error) error {
	msg := "Cannot write report to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CheckReportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write report %s: %w",
			fn, path, err),
	}
}
