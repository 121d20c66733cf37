// Package theme assigns a terminal style to every category a listing can
// display.
//
// A Theme is built once, either as Plain or Colourful, and never changes
// afterwards. Renderers reach it through the narrow interfaces in package
// render rather than through its fields.
package theme

import (
	"github.com/alexisbeaulieu97/ells/internal/style"
)

// Theme is the complete set of styles used by a listing.
type Theme struct {
	// Scale colours sizes by order of magnitude instead of using Size.Numbers.
	Scale bool

	FileKinds FileKinds
	FileTypes FileTypes
	Perms     Permissions
	Size      Size
	Users     Users
	Links     Links
	Git       Git

	Punctuation style.Style
	Date        style.Style
	Inode       style.Style
	Blocks      style.Style
	Header      style.Style

	SymlinkPath    style.Style
	BrokenArrow    style.Style
	BrokenFilename style.Style
	ControlChar    style.Style
}

// FileKinds styles entries by filesystem kind.
type FileKinds struct {
	Normal     style.Style
	Directory  style.Style
	Symlink    style.Style
	Pipe       style.Style
	Device     style.Style
	Socket     style.Style
	Special    style.Style
	Executable style.Style
}

// FileTypes styles files by what their name says they contain.
type FileTypes struct {
	Image      style.Style
	Video      style.Style
	Music      style.Style
	Lossless   style.Style
	Crypto     style.Style
	Document   style.Style
	Compressed style.Style
	Temp       style.Style
	Immediate  style.Style
	Compiled   style.Style
}

// Permissions styles each role a permission bit can play.
type Permissions struct {
	UserRead         style.Style
	UserWrite        style.Style
	UserExecuteFile  style.Style
	UserExecuteOther style.Style

	GroupRead    style.Style
	GroupWrite   style.Style
	GroupExecute style.Style

	OtherRead    style.Style
	OtherWrite   style.Style
	OtherExecute style.Style

	SpecialUserFile style.Style
	SpecialOther    style.Style

	Attribute style.Style
}

// Size styles the size column.
type Size struct {
	Numbers style.Style
	Unit    style.Style

	Major style.Style
	Minor style.Style

	ScaleByte style.Style
	ScaleKilo style.Style
	ScaleMega style.Style
	ScaleGiga style.Style
	ScaleHuge style.Style
}

// Users styles owners relative to the current user.
type Users struct {
	UserYou         style.Style
	UserSomeoneElse style.Style
	GroupYours      style.Style
	GroupNotYours   style.Style
}

// Links styles the hard link count.
type Links struct {
	Normal        style.Style
	MultiLinkFile style.Style
}

// Git styles version control states.
type Git struct {
	New        style.Style
	Modified   style.Style
	Deleted    style.Style
	Renamed    style.Style
	TypeChange style.Style
}

// Plain returns a theme where every field is the neutral style. It is used
// when colour output is off.
func Plain() Theme {
	return Theme{}
}

// Colourful returns the default colour theme. scale turns on magnitude-based
// size colours.
func Colourful(scale bool) Theme {
	return Theme{
		Scale: scale,

		FileKinds: FileKinds{
			Normal:     style.Plain,
			Directory:  style.Fg(style.Blue).Bolded(),
			Symlink:    style.Fg(style.Cyan),
			Pipe:       style.Fg(style.Yellow),
			Device:     style.Fg(style.Yellow).Bolded(),
			Socket:     style.Fg(style.Red).Bolded(),
			Special:    style.Fg(style.Yellow),
			Executable: style.Fg(style.Green).Bolded(),
		},

		FileTypes: FileTypes{
			Image:      style.Fg(style.Fixed(133)),
			Video:      style.Fg(style.Fixed(135)),
			Music:      style.Fg(style.Fixed(92)),
			Lossless:   style.Fg(style.Fixed(93)),
			Crypto:     style.Fg(style.Fixed(109)),
			Document:   style.Fg(style.Fixed(105)),
			Compressed: style.Fg(style.Red),
			Temp:       style.Fg(style.Fixed(244)),
			Immediate:  style.Fg(style.Yellow).Bolded().Underlined(),
			Compiled:   style.Fg(style.Fixed(137)),
		},

		Perms: Permissions{
			UserRead:         style.Fg(style.Yellow).Bolded(),
			UserWrite:        style.Fg(style.Red).Bolded(),
			UserExecuteFile:  style.Fg(style.Green).Bolded().Underlined(),
			UserExecuteOther: style.Fg(style.Green).Bolded(),

			GroupRead:    style.Fg(style.Yellow),
			GroupWrite:   style.Fg(style.Red),
			GroupExecute: style.Fg(style.Green),

			OtherRead:    style.Fg(style.Yellow),
			OtherWrite:   style.Fg(style.Red),
			OtherExecute: style.Fg(style.Green),

			SpecialUserFile: style.Fg(style.Purple),
			SpecialOther:    style.Fg(style.Purple),

			Attribute: style.Plain,
		},

		Size: Size{
			Numbers: style.Fg(style.Green).Bolded(),
			Unit:    style.Fg(style.Green),

			Major: style.Fg(style.Green).Bolded(),
			Minor: style.Fg(style.Green),

			ScaleByte: style.Fg(style.Fixed(118)),
			ScaleKilo: style.Fg(style.Fixed(190)),
			ScaleMega: style.Fg(style.Fixed(226)),
			ScaleGiga: style.Fg(style.Fixed(220)),
			ScaleHuge: style.Fg(style.Fixed(214)),
		},

		Users: Users{
			UserYou:         style.Fg(style.Yellow).Bolded(),
			UserSomeoneElse: style.Plain,
			GroupYours:      style.Fg(style.Yellow).Bolded(),
			GroupNotYours:   style.Plain,
		},

		Links: Links{
			Normal:        style.Fg(style.Red).Bolded(),
			MultiLinkFile: style.Fg(style.Red).On(style.Yellow),
		},

		Git: Git{
			New:        style.Fg(style.Green),
			Modified:   style.Fg(style.Blue),
			Deleted:    style.Fg(style.Red),
			Renamed:    style.Fg(style.Yellow),
			TypeChange: style.Fg(style.Purple),
		},

		Punctuation: style.Fg(style.Fixed(244)),
		Date:        style.Fg(style.Blue),
		Inode:       style.Fg(style.Purple),
		Blocks:      style.Fg(style.Cyan),
		Header:      style.Plain.Underlined(),

		SymlinkPath:    style.Fg(style.Cyan),
		BrokenArrow:    style.Fg(style.Red),
		BrokenFilename: style.Fg(style.Red).Underlined(),
		ControlChar:    style.Fg(style.Red),
	}
}
