package render

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/alexisbeaulieu97/ells/internal/fields"
)

// SizeFormat selects how byte counts are displayed.
type SizeFormat int

const (
	// DecimalBytes uses SI prefixes: 1.5k is 1500 bytes.
	DecimalBytes SizeFormat = iota
	// BinaryBytes uses IEC prefixes: 1.5Ki is 1536 bytes.
	BinaryBytes
	// JustBytes prints the raw byte count with thousands separators.
	JustBytes
)

// Size renders the size column. The number is styled by magnitude through
// SizeFor and the unit prefix separately.
func Size(s fields.Size, format SizeFormat, colours SizeColours) Cell {
	switch s.Kind {
	case fields.SizeNone:
		return Paint(colours.NoSize(), "-")
	case fields.SizeDevice:
		return deviceIDs(s.Major, s.Minor, colours)
	}

	numberStyle := colours.SizeFor(s.Bytes)

	var humanized string
	switch format {
	case JustBytes:
		return Paint(numberStyle, grouped(s.Bytes))
	case BinaryBytes:
		humanized = humanize.IBytes(s.Bytes)
	default:
		humanized = humanize.Bytes(s.Bytes)
	}

	number, unit, _ := strings.Cut(humanized, " ")
	prefix := strings.TrimSuffix(unit, "B")
	if prefix == "" {
		return Paint(numberStyle, grouped(s.Bytes))
	}

	cell := Paint(numberStyle, number)
	cell.Push(colours.Unit(), prefix)
	return cell
}

func deviceIDs(major, minor uint32, colours SizeColours) Cell {
	cell := Paint(colours.Major(), strconv.FormatUint(uint64(major), 10))
	cell.Push(colours.Comma(), ",")
	cell.Push(colours.Minor(), strconv.FormatUint(uint64(minor), 10))
	return cell
}
