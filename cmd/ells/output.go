package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/ells/internal/config"
	"github.com/alexisbeaulieu97/ells/internal/theme"
)

// terminal describes where the listing is written.
type terminal struct {
	isTTY bool
	width int
}

func detectTerminal(w io.Writer) terminal {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return terminal{}
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		width = 0
	}
	return terminal{isTTY: true, width: width}
}

// useColour decides whether a listing is coloured. NO_COLOR only disables
// colour in auto mode; always wins over it.
func useColour(mode config.ColourMode, isTTY bool, getenv func(string) string) bool {
	switch mode {
	case config.ColourAlways:
		return true
	case config.ColourNever:
		return false
	default:
		return isTTY && getenv("NO_COLOR") == ""
	}
}

func selectTheme(s config.Settings, tty terminal, getenv func(string) string, out io.Writer) (theme.Theme, *lipgloss.Renderer) {
	renderer := lipgloss.NewRenderer(out)
	if !useColour(s.Colour, tty.isTTY, getenv) {
		return theme.Plain(), renderer
	}

	if s.Colour == config.ColourAlways {
		renderer.SetColorProfile(termenv.ANSI256)
	}
	return theme.Colourful(s.ColourScale), renderer
}
