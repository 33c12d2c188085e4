package iocsv

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/errcode"
)

func DirError(dir string, err error) error {
	msg := "Cannot create output directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn, err),
	}
}

func FileError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write file: %w",
			fn, err),
	}
}

func RenameError(path string, err error) error {
	msg := "Cannot move <em>%s</em> into place"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteRenameError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot rename temporary file: %w",
			fn, err),
	}
}
