package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _____            _             ", "#34d399"},
		{"|_   _|   _ _ __ (_)_ __   __ _ ", "#2dd4bf"},
		{"  | || | | | '__|| | '_ \\ / _` |", "#22d3ee"},
		{"  | || |_| | |   | | | | | (_| |", "#38bdf8"},
		{"  |_| \\__,_|_|   |_|_| |_|\\__, |", "#60a5fa"},
		{"                          |___/ ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
