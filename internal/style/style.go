// Package style defines the immutable terminal appearance values used by themes.
package style

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// The eight standard terminal colours, addressed by their ANSI index.
const (
	Black  lipgloss.Color = "0"
	Red    lipgloss.Color = "1"
	Green  lipgloss.Color = "2"
	Yellow lipgloss.Color = "3"
	Blue   lipgloss.Color = "4"
	Purple lipgloss.Color = "5"
	Cyan   lipgloss.Color = "6"
	White  lipgloss.Color = "7"
)

// Fixed returns a colour from the 256-colour palette.
func Fixed(n uint8) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(n)))
}

// Style describes how a piece of text appears on a terminal.
//
// Style is a comparable value: two styles are equal when every attribute is
// equal. The zero value is the neutral style and renders text unchanged.
type Style struct {
	Foreground lipgloss.Color
	Background lipgloss.Color

	Bold          bool
	Dimmed        bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Strikethrough bool
}

// Plain is the neutral style.
var Plain = Style{}

// Fg returns a style with only the foreground colour set.
func Fg(c lipgloss.Color) Style {
	return Style{Foreground: c}
}

// On returns a copy of s with the background colour set.
func (s Style) On(c lipgloss.Color) Style {
	s.Background = c
	return s
}

// Bolded returns a bold copy of s.
func (s Style) Bolded() Style {
	s.Bold = true
	return s
}

// Underlined returns an underlined copy of s.
func (s Style) Underlined() Style {
	s.Underline = true
	return s
}

// IsPlain reports whether s is the neutral style.
func (s Style) IsPlain() bool {
	return s == Plain
}

// Lipgloss converts s into a lipgloss style bound to renderer r. A nil
// renderer uses the lipgloss default renderer.
func (s Style) Lipgloss(r *lipgloss.Renderer) lipgloss.Style {
	var out lipgloss.Style
	if r != nil {
		out = r.NewStyle()
	} else {
		out = lipgloss.NewStyle()
	}

	if s.Foreground != "" {
		out = out.Foreground(s.Foreground)
	}
	if s.Background != "" {
		out = out.Background(s.Background)
	}
	if s.Bold {
		out = out.Bold(true)
	}
	if s.Dimmed {
		out = out.Faint(true)
	}
	if s.Italic {
		out = out.Italic(true)
	}
	if s.Underline {
		out = out.Underline(true)
	}
	if s.Blink {
		out = out.Blink(true)
	}
	if s.Reverse {
		out = out.Reverse(true)
	}
	if s.Strikethrough {
		out = out.Strikethrough(true)
	}
	return out
}

// Render paints text with s using renderer r. Neutral styles return text as is.
func (s Style) Render(r *lipgloss.Renderer, text string) string {
	if s.IsPlain() || text == "" {
		return text
	}
	return s.Lipgloss(r).Render(text)
}
