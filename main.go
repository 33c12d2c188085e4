/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/

// Package main provides the gndwc CLI application.
// gndwc converts an alien plants checklist spreadsheet into
// Darwin Core Archive tables.
package main

import "github.com/gnames/gndwc/cmd"

func main() {
	cmd.Execute()
}
