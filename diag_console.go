// diag_console.go - Line-oriented diagnostic output for the Theta Engine

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// DiagConsole is the one-way status channel. Writes that fail are
// dropped; diagnostics must never stall or kill the render loop.
type DiagConsole struct {
	isTTY bool
}

const (
	ansiReset  = "\033[0m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
)

func NewDiagConsole() *DiagConsole {
	return &DiagConsole{
		isTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Printf emits one formatted status line.
func (d *DiagConsole) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// Warnf emits a highlighted status line, colored only on a real TTY.
func (d *DiagConsole) Warnf(format string, args ...any) {
	d.colored(ansiYellow, format, args...)
}

// Fatalf reports a fatal startup condition once. The caller decides to
// exit; the console only reports.
func (d *DiagConsole) Fatalf(format string, args ...any) {
	d.colored(ansiRed, format, args...)
}

func (d *DiagConsole) colored(code, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if d.isTTY {
		_, _ = fmt.Fprintf(os.Stdout, "%s%s%s\n", code, line, ansiReset)
		return
	}
	_, _ = fmt.Fprintln(os.Stdout, line)
}
