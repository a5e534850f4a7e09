package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed, color.Bold)
)

// printSuccess writes a green status line.
func printSuccess(w io.Writer, format string, args ...any) {
	green.Fprintln(w, fmt.Sprintf(format, args...))
}

// printError writes a red "error:" status line.
func printError(w io.Writer, format string, args ...any) {
	red.Fprintln(w, "error: "+fmt.Sprintf(format, args...))
}
