package render

import (
	"github.com/alexisbeaulieu97/ells/internal/fields"
	"github.com/alexisbeaulieu97/ells/internal/style"
)

// KindChar returns the one-letter code for a kind, as shown at the start of
// the permissions column.
func KindChar(k fields.Kind) string {
	switch k {
	case fields.KindDirectory:
		return "d"
	case fields.KindPipe:
		return "|"
	case fields.KindLink:
		return "l"
	case fields.KindBlockDevice:
		return "b"
	case fields.KindCharDevice:
		return "c"
	case fields.KindSocket:
		return "s"
	case fields.KindSpecial:
		return "?"
	default:
		return "."
	}
}

// KindStyle picks the style for an entry of kind k.
func KindStyle(k fields.Kind, colours FiletypeColours) style.Style {
	switch k {
	case fields.KindDirectory:
		return colours.Directory()
	case fields.KindPipe:
		return colours.Pipe()
	case fields.KindLink:
		return colours.Symlink()
	case fields.KindBlockDevice, fields.KindCharDevice:
		return colours.Device()
	case fields.KindSocket:
		return colours.Socket()
	case fields.KindSpecial:
		return colours.Special()
	default:
		return colours.Normal()
	}
}

// Kind renders the kind letter of an entry.
func Kind(k fields.Kind, colours FiletypeColours) Cell {
	return Paint(KindStyle(k, colours), KindChar(k))
}
