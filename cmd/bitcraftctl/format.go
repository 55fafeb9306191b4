package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// stdoutIsTerminal reports whether stdout is an interactive terminal,
// used by main to turn color off when it is not, whatever -color says.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// colorOutput is set once in main from Config.Color && stdoutIsTerminal.
var colorOutput bool

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// label renders a field name, bolded when colorOutput is set.
func label(name string) string {
	if !colorOutput {
		return name + ":"
	}
	return ansiBold + name + ":" + ansiReset
}

// byteSizeString renders a byte count the way history listings and
// decode summaries show it, e.g. "28 B" or "1.2 kB".
func byteSizeString(n int) string {
	return humanize.Bytes(uint64(n))
}

// relativeTimeString renders a past timestamp as "3 minutes ago" style
// text for the history command.
func relativeTimeString(op Operation) string {
	return humanize.Time(op.RanAt)
}

func printField(w io.Writer, name string, value interface{}) {
	fmt.Fprintf(w, "  %s %v\n", label(name), value)
}
