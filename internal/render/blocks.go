package render

import (
	"strconv"

	"github.com/alexisbeaulieu97/ells/internal/fields"
)

// Blocks renders the block count column.
func Blocks(b fields.Blocks, colours BlocksColours) Cell {
	if !b.Known {
		return Paint(colours.NoBlocks(), "-")
	}
	return Paint(colours.BlockCount(), strconv.FormatUint(b.Count, 10))
}
