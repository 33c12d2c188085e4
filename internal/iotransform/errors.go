package iotransform

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

func CanceledError(err error) error {
	msg := "Transformation was canceled"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TransformCanceledError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: context canceled: %w", fn, err),
	}
}
