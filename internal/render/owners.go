package render

import (
	"strconv"

	"github.com/alexisbeaulieu97/ells/internal/fields"
)

// UsersLookup answers the questions the user and group columns ask about
// account ids.
type UsersLookup interface {
	CurrentUID() uint32
	UserName(uid uint32) (string, bool)
	GroupName(gid uint32) (string, bool)

	// InGroup reports whether the current user belongs to gid.
	InGroup(gid uint32) bool
}

// User renders the owner column. Unknown ids are shown numerically.
func User(u fields.User, lookup UsersLookup, colours UserColours) Cell {
	s := colours.SomeoneElse()
	if uint32(u) == lookup.CurrentUID() {
		s = colours.You()
	}

	name, ok := lookup.UserName(uint32(u))
	if !ok {
		name = strconv.FormatUint(uint64(u), 10)
	}
	return Paint(s, name)
}

// Group renders the group column. Unknown ids are shown numerically.
func Group(g fields.Group, lookup UsersLookup, colours GroupColours) Cell {
	s := colours.NotYours()
	if lookup.InGroup(uint32(g)) {
		s = colours.Yours()
	}

	name, ok := lookup.GroupName(uint32(g))
	if !ok {
		name = strconv.FormatUint(uint64(g), 10)
	}
	return Paint(s, name)
}
