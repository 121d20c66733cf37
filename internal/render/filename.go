package render

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/ells/internal/fields"
	"github.com/alexisbeaulieu97/ells/internal/style"
)

// Name describes what the file name column needs to know about an entry.
type Name struct {
	Name       string
	Kind       fields.Kind
	Executable bool
	Class      fields.Class

	// Target is set for symbolic links.
	Target *LinkTarget
}

// LinkTarget is where a symbolic link points.
type LinkTarget struct {
	Path   string
	Broken bool

	Kind       fields.Kind
	Executable bool
	Class      fields.Class
}

// FileName renders a file name. When showTarget is set, symbolic links are
// followed by an arrow and their target.
func FileName(n Name, showTarget bool, colours FileNameColours) Cell {
	nameStyle := fileStyle(n.Kind, n.Executable, n.Class, colours)
	if n.Target != nil && n.Target.Broken {
		nameStyle = colours.BrokenSymlink()
	}

	cell := Blank()
	escape(&cell, n.Name, nameStyle, colours.Control())

	if !showTarget || n.Target == nil {
		return cell
	}

	cell.Push(style.Plain, " ")
	if n.Target.Broken {
		cell.Push(colours.BrokenSymlink(), "->")
		cell.Push(style.Plain, " ")
		escape(&cell, n.Target.Path, colours.BrokenPath(), colours.Control())
		return cell
	}

	cell.Push(colours.NormalArrow(), "->")
	cell.Push(style.Plain, " ")

	dir, base := path.Split(n.Target.Path)
	if dir != "" {
		escape(&cell, dir, colours.SymlinkTarget(), colours.Control())
	}
	targetStyle := fileStyle(n.Target.Kind, n.Target.Executable, n.Target.Class, colours)
	escape(&cell, base, targetStyle, colours.Control())
	return cell
}

// fileStyle picks the name style: non-regular kinds first, then the
// executable bit, then content classification.
func fileStyle(kind fields.Kind, executable bool, class fields.Class, colours FileNameColours) style.Style {
	if kind != fields.KindFile {
		return KindStyle(kind, colours)
	}
	if executable {
		return colours.Executable()
	}
	if s, ok := ClassStyle(class, colours); ok {
		return s
	}
	return colours.Normal()
}

// ClassStyle returns the style for a content classification. It reports false
// for unclassified files.
func ClassStyle(class fields.Class, colours FileTypeColours) (style.Style, bool) {
	switch class {
	case fields.ClassImage:
		return colours.Image(), true
	case fields.ClassVideo:
		return colours.Video(), true
	case fields.ClassMusic:
		return colours.Music(), true
	case fields.ClassLossless:
		return colours.Lossless(), true
	case fields.ClassCrypto:
		return colours.Crypto(), true
	case fields.ClassDocument:
		return colours.Document(), true
	case fields.ClassCompressed:
		return colours.Compressed(), true
	case fields.ClassTemp:
		return colours.Temp(), true
	case fields.ClassImmediate:
		return colours.Immediate(), true
	case fields.ClassCompiled:
		return colours.Compiled(), true
	default:
		return style.Plain, false
	}
}

// escape pushes text in style good, replacing control characters and bytes
// that are not valid UTF-8 with their escaped form in style bad.
func escape(cell *Cell, text string, good, bad style.Style) {
	if utf8.ValidString(text) && strings.IndexFunc(text, unicode.IsControl) < 0 {
		cell.Push(good, text)
		return
	}

	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		var escaped string
		switch {
		case r == utf8.RuneError && size == 1:
			escaped = fmt.Sprintf(`\x%02x`, text[i])
		case unicode.IsControl(r):
			quoted := strconv.QuoteRune(r)
			escaped = quoted[1 : len(quoted)-1]
		default:
			i += size
			continue
		}

		if start < i {
			cell.Push(good, text[start:i])
		}
		cell.Push(bad, escaped)
		i += size
		start = i
	}
	if start < len(text) {
		cell.Push(good, text[start:])
	}
}
