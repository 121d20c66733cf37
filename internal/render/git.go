package render

import (
	"github.com/alexisbeaulieu97/ells/internal/fields"
)

// Git renders the two-letter status column: staged first, then unstaged.
func Git(g fields.Git, colours GitColours) Cell {
	cell := Blank()
	cell.Append(gitState(g.Staged, colours))
	cell.Append(gitState(g.Unstaged, colours))
	return cell
}

func gitState(state fields.GitState, colours GitColours) Cell {
	switch state {
	case fields.GitNew:
		return Paint(colours.New(), "N")
	case fields.GitModified:
		return Paint(colours.Modified(), "M")
	case fields.GitDeleted:
		return Paint(colours.Deleted(), "D")
	case fields.GitRenamed:
		return Paint(colours.Renamed(), "R")
	case fields.GitTypeChange:
		return Paint(colours.TypeChange(), "T")
	default:
		return Paint(colours.NotModified(), "-")
	}
}
