package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/ells/internal/style"
)

// tag returns a style that is distinct for every name, so assertions can
// tell which accessor a renderer used.
func tag(name string) style.Style {
	return style.Style{Foreground: lipgloss.Color(name)}
}

type blocksStub struct{}

func (blocksStub) BlockCount() style.Style { return tag("blocks") }
func (blocksStub) NoBlocks() style.Style   { return tag("punct") }

type kindsStub struct{}

func (kindsStub) Normal() style.Style    { return tag("normal") }
func (kindsStub) Directory() style.Style { return tag("dir") }
func (kindsStub) Pipe() style.Style      { return tag("pipe") }
func (kindsStub) Symlink() style.Style   { return tag("link") }
func (kindsStub) Device() style.Style    { return tag("device") }
func (kindsStub) Socket() style.Style    { return tag("socket") }
func (kindsStub) Special() style.Style   { return tag("special") }

type gitStub struct{}

func (gitStub) NotModified() style.Style { return tag("punct") }
func (gitStub) New() style.Style         { return tag("new") }
func (gitStub) Modified() style.Style    { return tag("modified") }
func (gitStub) Deleted() style.Style     { return tag("deleted") }
func (gitStub) Renamed() style.Style     { return tag("renamed") }
func (gitStub) TypeChange() style.Style  { return tag("typechange") }

type ownersStub struct{}

func (ownersStub) You() style.Style         { return tag("you") }
func (ownersStub) SomeoneElse() style.Style { return tag("else") }
func (ownersStub) Yours() style.Style       { return tag("yours") }
func (ownersStub) NotYours() style.Style    { return tag("notyours") }

type linksStub struct{}

func (linksStub) LinkCount() style.Style     { return tag("links") }
func (linksStub) MultiLinkFile() style.Style { return tag("multi") }

type permsStub struct{}

func (permsStub) Dash() style.Style             { return tag("punct") }
func (permsStub) UserRead() style.Style         { return tag("ur") }
func (permsStub) UserWrite() style.Style        { return tag("uw") }
func (permsStub) UserExecuteFile() style.Style  { return tag("uxf") }
func (permsStub) UserExecuteOther() style.Style { return tag("uxo") }
func (permsStub) GroupRead() style.Style        { return tag("gr") }
func (permsStub) GroupWrite() style.Style       { return tag("gw") }
func (permsStub) GroupExecute() style.Style     { return tag("gx") }
func (permsStub) OtherRead() style.Style        { return tag("or") }
func (permsStub) OtherWrite() style.Style       { return tag("ow") }
func (permsStub) OtherExecute() style.Style     { return tag("ox") }
func (permsStub) SpecialUserFile() style.Style  { return tag("suf") }
func (permsStub) SpecialOther() style.Style     { return tag("so") }
func (permsStub) Attribute() style.Style        { return tag("attr") }

type sizeStub struct{}

func (sizeStub) SizeFor(size uint64) style.Style {
	if size >= 1<<20 {
		return tag("big")
	}
	return tag("small")
}
func (sizeStub) Unit() style.Style   { return tag("unit") }
func (sizeStub) NoSize() style.Style { return tag("punct") }
func (sizeStub) Major() style.Style  { return tag("major") }
func (sizeStub) Comma() style.Style  { return tag("punct") }
func (sizeStub) Minor() style.Style  { return tag("minor") }

type namesStub struct {
	kindsStub
}

func (namesStub) Image() style.Style      { return tag("image") }
func (namesStub) Video() style.Style      { return tag("video") }
func (namesStub) Music() style.Style      { return tag("music") }
func (namesStub) Lossless() style.Style   { return tag("lossless") }
func (namesStub) Crypto() style.Style     { return tag("crypto") }
func (namesStub) Document() style.Style   { return tag("document") }
func (namesStub) Compressed() style.Style { return tag("compressed") }
func (namesStub) Temp() style.Style       { return tag("temp") }
func (namesStub) Immediate() style.Style  { return tag("immediate") }
func (namesStub) Compiled() style.Style   { return tag("compiled") }

func (namesStub) Executable() style.Style    { return tag("exec") }
func (namesStub) NormalArrow() style.Style   { return tag("punct") }
func (namesStub) BrokenSymlink() style.Style { return tag("brokenarrow") }
func (namesStub) BrokenPath() style.Style    { return tag("brokenpath") }
func (namesStub) Control() style.Style       { return tag("control") }
func (namesStub) SymlinkTarget() style.Style { return tag("linkpath") }

type detailsStub struct{}

func (detailsStub) Timestamp() style.Style    { return tag("date") }
func (detailsStub) InodeNumber() style.Style  { return tag("inode") }
func (detailsStub) ColumnHeader() style.Style { return tag("header") }

type usersStub struct {
	uid    uint32
	groups map[uint32]bool
	names  map[uint32]string
}

func (u usersStub) CurrentUID() uint32 { return u.uid }

func (u usersStub) UserName(uid uint32) (string, bool) {
	name, ok := u.names[uid]
	return name, ok
}

func (u usersStub) GroupName(gid uint32) (string, bool) {
	name, ok := u.names[gid]
	return name, ok
}

func (u usersStub) InGroup(gid uint32) bool { return u.groups[gid] }
