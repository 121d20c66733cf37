// Package fields holds the values shown in the columns of a listing.
//
// The types here carry no styling; renderers pair them with a theme.
package fields

// Kind is the type of a filesystem entry.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindPipe
	KindLink
	KindBlockDevice
	KindCharDevice
	KindSocket
	KindSpecial
)

// IsRegularFile reports whether k is a plain file.
func (k Kind) IsRegularFile() bool {
	return k == KindFile
}

// Permissions are the nine rwx bits plus the setuid, setgid and sticky bits.
type Permissions struct {
	UserRead    bool
	UserWrite   bool
	UserExecute bool

	GroupRead    bool
	GroupWrite   bool
	GroupExecute bool

	OtherRead    bool
	OtherWrite   bool
	OtherExecute bool

	Sticky bool
	SetGID bool
	SetUID bool
}

// PermissionsPlus is the full permissions column: kind, bits and whether the
// entry carries extended attributes.
type PermissionsPlus struct {
	Kind        Kind
	Permissions Permissions
	XAttrs      bool
}

// Links is the hard link count of an entry.
type Links struct {
	Count uint64

	// Multiple is set for regular files with more than one link.
	Multiple bool
}

// Blocks is the number of filesystem blocks an entry occupies. Directories and
// other non-regular entries have no meaningful block count.
type Blocks struct {
	Count uint64
	Known bool
}

// User is a numeric user id.
type User uint32

// Group is a numeric group id.
type Group uint32

// Inode is an inode number.
type Inode uint64

// SizeKind distinguishes the three shapes a size column can take.
type SizeKind int

const (
	// SizeNone marks entries, such as directories, that have no size.
	SizeNone SizeKind = iota
	SizeBytes
	SizeDevice
)

// Size is the size column of an entry.
type Size struct {
	Kind  SizeKind
	Bytes uint64
	Major uint32
	Minor uint32
}

// NoSize returns the size of an entry without one.
func NoSize() Size {
	return Size{Kind: SizeNone}
}

// BytesSize returns a size of n bytes.
func BytesSize(n uint64) Size {
	return Size{Kind: SizeBytes, Bytes: n}
}

// DeviceSize returns the major and minor ids of a device.
func DeviceSize(major, minor uint32) Size {
	return Size{Kind: SizeDevice, Major: major, Minor: minor}
}

// GitState is the status of an entry in one area of a repository.
type GitState int

const (
	GitNotModified GitState = iota
	GitNew
	GitModified
	GitDeleted
	GitRenamed
	GitTypeChange
)

// Git is the two-letter status column: the index then the worktree.
type Git struct {
	Staged   GitState
	Unstaged GitState
}

// Class is a content classification derived from a file name.
type Class int

const (
	ClassNone Class = iota
	ClassImage
	ClassVideo
	ClassMusic
	ClassLossless
	ClassCrypto
	ClassDocument
	ClassCompressed
	ClassTemp
	ClassImmediate
	ClassCompiled
)
