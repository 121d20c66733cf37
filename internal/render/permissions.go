package render

import (
	"github.com/alexisbeaulieu97/ells/internal/fields"
	"github.com/alexisbeaulieu97/ells/internal/style"
)

// Permissions renders the permissions column: the kind letter, nine bits
// with the special bits folded into the execute positions, and an '@' when
// the entry has extended attributes.
func Permissions(p fields.PermissionsPlus, colours PermissionsColours, kinds FiletypeColours) Cell {
	cell := Kind(p.Kind, kinds)
	for _, bit := range PermissionBits(p.Permissions, p.Kind.IsRegularFile(), colours) {
		cell.Append(bit)
	}
	if p.XAttrs {
		cell.Push(colours.Attribute(), "@")
	}
	return cell
}

// PermissionBits renders the nine rwx positions.
func PermissionBits(p fields.Permissions, isRegularFile bool, colours PermissionsColours) []Cell {
	bit := func(on bool, s style.Style, char string) Cell {
		if on {
			return Paint(s, char)
		}
		return Paint(colours.Dash(), "-")
	}

	return []Cell{
		bit(p.UserRead, colours.UserRead(), "r"),
		bit(p.UserWrite, colours.UserWrite(), "w"),
		userExecuteBit(p, isRegularFile, colours),
		bit(p.GroupRead, colours.GroupRead(), "r"),
		bit(p.GroupWrite, colours.GroupWrite(), "w"),
		groupExecuteBit(p, colours),
		bit(p.OtherRead, colours.OtherRead(), "r"),
		bit(p.OtherWrite, colours.OtherWrite(), "w"),
		otherExecuteBit(p, colours),
	}
}

func userExecuteBit(p fields.Permissions, isRegularFile bool, colours PermissionsColours) Cell {
	switch {
	case !p.UserExecute && !p.SetUID:
		return Paint(colours.Dash(), "-")
	case p.UserExecute && !p.SetUID && isRegularFile:
		return Paint(colours.UserExecuteFile(), "x")
	case p.UserExecute && !p.SetUID:
		return Paint(colours.UserExecuteOther(), "x")
	case !p.UserExecute:
		return Paint(colours.SpecialOther(), "S")
	case isRegularFile:
		return Paint(colours.SpecialUserFile(), "s")
	default:
		return Paint(colours.SpecialOther(), "s")
	}
}

func groupExecuteBit(p fields.Permissions, colours PermissionsColours) Cell {
	switch {
	case !p.GroupExecute && !p.SetGID:
		return Paint(colours.Dash(), "-")
	case p.GroupExecute && !p.SetGID:
		return Paint(colours.GroupExecute(), "x")
	case !p.GroupExecute:
		return Paint(colours.SpecialOther(), "S")
	default:
		return Paint(colours.SpecialOther(), "s")
	}
}

func otherExecuteBit(p fields.Permissions, colours PermissionsColours) Cell {
	switch {
	case !p.OtherExecute && !p.Sticky:
		return Paint(colours.Dash(), "-")
	case p.OtherExecute && !p.Sticky:
		return Paint(colours.OtherExecute(), "x")
	case !p.OtherExecute:
		return Paint(colours.SpecialOther(), "T")
	default:
		return Paint(colours.SpecialOther(), "t")
	}
}
