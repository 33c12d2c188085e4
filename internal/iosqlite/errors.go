package iosqlite

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/errcode"
)

func CreateError(path string, err error) error {
	msg := "Cannot create archive <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveCreateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create archive database: %w",
			fn, err),
	}
}

func SchemaError(table string, err error) error {
	msg := "Cannot create archive table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveSchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create table %s: %w",
			fn, table, err),
	}
}

func InsertError(table string, err error) error {
	msg := "Cannot insert rows into archive table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot insert into %s: %w",
			fn, table, err),
	}
}

func MetadataError(err error) error {
	msg := "Cannot write archive metadata"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveMetadataError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot write metadata: %w",
			fn, err),
	}
}
