package render

import "github.com/alexisbeaulieu97/ells/internal/style"

// Each renderer depends on exactly one of the interfaces below, so it can be
// built against any theme, or against a test double that only supplies the
// handful of styles that renderer needs.

// BlocksColours styles the block count column.
type BlocksColours interface {
	BlockCount() style.Style
	NoBlocks() style.Style
}

// FiletypeColours styles entries by filesystem kind.
type FiletypeColours interface {
	Normal() style.Style
	Directory() style.Style
	Pipe() style.Style
	Symlink() style.Style
	Device() style.Style
	Socket() style.Style
	Special() style.Style
}

// GitColours styles the version control status column.
type GitColours interface {
	NotModified() style.Style
	New() style.Style
	Modified() style.Style
	Deleted() style.Style
	Renamed() style.Style
	TypeChange() style.Style
}

// GroupColours styles the group column.
type GroupColours interface {
	Yours() style.Style
	NotYours() style.Style
}

// LinksColours styles the hard link count column.
type LinksColours interface {
	LinkCount() style.Style
	MultiLinkFile() style.Style
}

// PermissionsColours styles each bit of the permissions column.
type PermissionsColours interface {
	Dash() style.Style

	UserRead() style.Style
	UserWrite() style.Style
	UserExecuteFile() style.Style
	UserExecuteOther() style.Style

	GroupRead() style.Style
	GroupWrite() style.Style
	GroupExecute() style.Style

	OtherRead() style.Style
	OtherWrite() style.Style
	OtherExecute() style.Style

	SpecialUserFile() style.Style
	SpecialOther() style.Style

	Attribute() style.Style
}

// SizeColours styles the size column.
type SizeColours interface {
	// SizeFor returns the style for the number part of a size of the given
	// number of bytes.
	SizeFor(size uint64) style.Style
	Unit() style.Style
	NoSize() style.Style
	Major() style.Style
	Comma() style.Style
	Minor() style.Style
}

// UserColours styles the user column.
type UserColours interface {
	You() style.Style
	SomeoneElse() style.Style
}

// FileTypeColours styles file names by content classification.
type FileTypeColours interface {
	Image() style.Style
	Video() style.Style
	Music() style.Style
	Lossless() style.Style
	Crypto() style.Style
	Document() style.Style
	Compressed() style.Style
	Temp() style.Style
	Immediate() style.Style
	Compiled() style.Style
}

// FileNameColours styles the file name column, including symlink targets.
type FileNameColours interface {
	FiletypeColours
	FileTypeColours

	Executable() style.Style
	NormalArrow() style.Style
	BrokenSymlink() style.Style
	BrokenPath() style.Style
	Control() style.Style
	SymlinkTarget() style.Style
}

// DetailsColours styles the remaining long-view columns.
type DetailsColours interface {
	Timestamp() style.Style
	InodeNumber() style.Style
	ColumnHeader() style.Style
}
