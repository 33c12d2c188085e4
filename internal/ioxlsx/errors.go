package ioxlsx

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/errcode"
)

func FileNotFoundError(path string, err error) error {
	msg := "Cannot find input file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadFileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: input file %s does not exist: %w",
			fn, path, err),
	}
}

func FileOpenError(path string, err error) error {
	msg := "Cannot open <em>%s</em> as a spreadsheet"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadFileOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open workbook: %w",
			fn, err),
	}
}

func SheetNotFoundError(path, sheet string, err error) error {
	msg := "Cannot find sheet <em>%s</em> in %s"
	vars := []any{sheet, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadSheetNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read sheet %s: %w",
			fn, sheet, err),
	}
}

func EmptySheetError(path, sheet string) error {
	msg := "No data rows in sheet <em>%s</em> of %s"
	vars := []any{sheet, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadEmptySheetError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: sheet %s has fewer than 2 rows",
			fn, sheet),
	}
}
