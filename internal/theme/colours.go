package theme

import (
	"github.com/alexisbeaulieu97/ells/internal/render"
	"github.com/alexisbeaulieu97/ells/internal/style"
)

var (
	_ render.BlocksColours      = Theme{}
	_ render.FiletypeColours    = Theme{}
	_ render.GitColours         = Theme{}
	_ render.GroupColours       = Theme{}
	_ render.LinksColours       = Theme{}
	_ render.PermissionsColours = Theme{}
	_ render.SizeColours        = Theme{}
	_ render.UserColours        = Theme{}
	_ render.FileTypeColours    = Theme{}
	_ render.FileNameColours    = Theme{}
	_ render.DetailsColours     = Theme{}
)

// Several accessors below return Punctuation under different names. They
// share the one stored value on purpose.

func (t Theme) BlockCount() style.Style { return t.Blocks }
func (t Theme) NoBlocks() style.Style   { return t.Punctuation }

func (t Theme) Normal() style.Style    { return t.FileKinds.Normal }
func (t Theme) Directory() style.Style { return t.FileKinds.Directory }
func (t Theme) Pipe() style.Style      { return t.FileKinds.Pipe }
func (t Theme) Symlink() style.Style   { return t.FileKinds.Symlink }
func (t Theme) Device() style.Style    { return t.FileKinds.Device }
func (t Theme) Socket() style.Style    { return t.FileKinds.Socket }
func (t Theme) Special() style.Style   { return t.FileKinds.Special }

func (t Theme) NotModified() style.Style { return t.Punctuation }
func (t Theme) New() style.Style         { return t.Git.New }
func (t Theme) Modified() style.Style    { return t.Git.Modified }
func (t Theme) Deleted() style.Style     { return t.Git.Deleted }
func (t Theme) Renamed() style.Style     { return t.Git.Renamed }
func (t Theme) TypeChange() style.Style  { return t.Git.TypeChange }

func (t Theme) Yours() style.Style    { return t.Users.GroupYours }
func (t Theme) NotYours() style.Style { return t.Users.GroupNotYours }

func (t Theme) LinkCount() style.Style     { return t.Links.Normal }
func (t Theme) MultiLinkFile() style.Style { return t.Links.MultiLinkFile }

func (t Theme) Dash() style.Style             { return t.Punctuation }
func (t Theme) UserRead() style.Style         { return t.Perms.UserRead }
func (t Theme) UserWrite() style.Style        { return t.Perms.UserWrite }
func (t Theme) UserExecuteFile() style.Style  { return t.Perms.UserExecuteFile }
func (t Theme) UserExecuteOther() style.Style { return t.Perms.UserExecuteOther }
func (t Theme) GroupRead() style.Style        { return t.Perms.GroupRead }
func (t Theme) GroupWrite() style.Style       { return t.Perms.GroupWrite }
func (t Theme) GroupExecute() style.Style     { return t.Perms.GroupExecute }
func (t Theme) OtherRead() style.Style        { return t.Perms.OtherRead }
func (t Theme) OtherWrite() style.Style       { return t.Perms.OtherWrite }
func (t Theme) OtherExecute() style.Style     { return t.Perms.OtherExecute }
func (t Theme) SpecialUserFile() style.Style  { return t.Perms.SpecialUserFile }
func (t Theme) SpecialOther() style.Style     { return t.Perms.SpecialOther }
func (t Theme) Attribute() style.Style        { return t.Perms.Attribute }

// Binary thresholds for the size scale buckets.
const (
	kibi uint64 = 1 << 10
	mebi uint64 = 1 << 20
	gibi uint64 = 1 << 30
	tebi uint64 = 1 << 40
)

// SizeFor returns Size.Numbers unless Scale is set, in which case the style
// is picked by magnitude. A size exactly on a threshold belongs to the
// bucket above it.
func (t Theme) SizeFor(size uint64) style.Style {
	if !t.Scale {
		return t.Size.Numbers
	}

	switch {
	case size < kibi:
		return t.Size.ScaleByte
	case size < mebi:
		return t.Size.ScaleKilo
	case size < gibi:
		return t.Size.ScaleMega
	case size < tebi:
		return t.Size.ScaleGiga
	default:
		return t.Size.ScaleHuge
	}
}

func (t Theme) Unit() style.Style   { return t.Size.Unit }
func (t Theme) NoSize() style.Style { return t.Punctuation }
func (t Theme) Major() style.Style  { return t.Size.Major }
func (t Theme) Comma() style.Style  { return t.Punctuation }
func (t Theme) Minor() style.Style  { return t.Size.Minor }

func (t Theme) You() style.Style         { return t.Users.UserYou }
func (t Theme) SomeoneElse() style.Style { return t.Users.UserSomeoneElse }

func (t Theme) Image() style.Style      { return t.FileTypes.Image }
func (t Theme) Video() style.Style      { return t.FileTypes.Video }
func (t Theme) Music() style.Style      { return t.FileTypes.Music }
func (t Theme) Lossless() style.Style   { return t.FileTypes.Lossless }
func (t Theme) Crypto() style.Style     { return t.FileTypes.Crypto }
func (t Theme) Document() style.Style   { return t.FileTypes.Document }
func (t Theme) Compressed() style.Style { return t.FileTypes.Compressed }
func (t Theme) Temp() style.Style       { return t.FileTypes.Temp }
func (t Theme) Immediate() style.Style  { return t.FileTypes.Immediate }
func (t Theme) Compiled() style.Style   { return t.FileTypes.Compiled }

func (t Theme) Executable() style.Style    { return t.FileKinds.Executable }
func (t Theme) NormalArrow() style.Style   { return t.Punctuation }
func (t Theme) BrokenSymlink() style.Style { return t.BrokenArrow }
func (t Theme) BrokenPath() style.Style    { return t.BrokenFilename }
func (t Theme) Control() style.Style       { return t.ControlChar }
func (t Theme) SymlinkTarget() style.Style { return t.SymlinkPath }

func (t Theme) Timestamp() style.Style    { return t.Date }
func (t Theme) InodeNumber() style.Style  { return t.Inode }
func (t Theme) ColumnHeader() style.Style { return t.Header }
