package debugger

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

type styles struct {
	cpu      lipgloss.Style
	mem      lipgloss.Style
	video    lipgloss.Style
	err      lipgloss.Style
	conflict lipgloss.Style
	debugger lipgloss.Style
	help     lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)
// 9	Bright Red
// 10	Bright Green
// 11	Bright Yellow
// 12	Bright Blue
// 13	Bright Magenta
// 14	Bright Cyan
// 15	Bright White

// newStyles creates styles for the output. If the output is not a terminal,
// for example if it is being redirected to a file, the styles produce plain
// text
func newStyles(output io.Writer) styles {
	r := lipgloss.NewRenderer(output)
	if f, ok := output.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		cpu:      r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		mem:      r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		video:    r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		err:      r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		conflict: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(0)).Background(lipgloss.ANSIColor(3)),
		debugger: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		help:     r.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}
