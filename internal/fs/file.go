// Package fs reads directory entries and extracts the values shown in a
// listing.
package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/ells/internal/fields"
)

// File is one entry of a listing. Its metadata comes from lstat, so
// symbolic links describe themselves rather than their targets.
type File struct {
	Name string
	Path string

	info fs.FileInfo
	stat statData
}

// Target describes where a symbolic link points.
type Target struct {
	Path string

	// Err is set when the target cannot be reached.
	Err error

	Kind       fields.Kind
	Executable bool
	Class      fields.Class
}

// Options controls which entries Read returns.
type Options struct {
	// All includes entries whose names start with a dot.
	All bool
}

// Stat returns the File at path without following a final symbolic link.
func Stat(path string) (*File, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return newFile(filepath.Base(path), path, info), nil
}

// Read lists the entries of the directory at dir, sorted by name ignoring case.
func Read(dir string, opts Options) ([]*File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	files := make([]*File, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !opts.All && strings.HasPrefix(name, ".") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// removed between readdir and stat
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", filepath.Join(dir, name), err)
		}
		files = append(files, newFile(name, filepath.Join(dir, name), info))
	}

	Sort(files)
	return files, nil
}

// Sort orders files by name, ignoring case, with the exact name as the
// tie-breaker.
func Sort(files []*File) {
	sort.SliceStable(files, func(i, j int) bool {
		a, b := strings.ToLower(files[i].Name), strings.ToLower(files[j].Name)
		if a != b {
			return a < b
		}
		return files[i].Name < files[j].Name
	})
}

func newFile(name, path string, info fs.FileInfo) *File {
	return &File{
		Name: name,
		Path: path,
		info: info,
		stat: extractStat(info),
	}
}

// Kind reports the filesystem kind of the entry.
func (f *File) Kind() fields.Kind {
	return kindOf(f.info.Mode())
}

func kindOf(mode fs.FileMode) fields.Kind {
	switch {
	case mode.IsRegular():
		return fields.KindFile
	case mode.IsDir():
		return fields.KindDirectory
	case mode&fs.ModeSymlink != 0:
		return fields.KindLink
	case mode&fs.ModeNamedPipe != 0:
		return fields.KindPipe
	case mode&fs.ModeSocket != 0:
		return fields.KindSocket
	case mode&fs.ModeCharDevice != 0:
		return fields.KindCharDevice
	case mode&fs.ModeDevice != 0:
		return fields.KindBlockDevice
	default:
		return fields.KindSpecial
	}
}

// IsDir reports whether the entry is a directory.
func (f *File) IsDir() bool {
	return f.info.IsDir()
}

// IsExecutable reports whether the entry is a regular file the owner can
// execute.
func (f *File) IsExecutable() bool {
	return f.info.Mode().IsRegular() && f.info.Mode().Perm()&0o100 != 0
}

// Permissions returns the permissions column, including whether the entry
// carries extended attributes.
func (f *File) Permissions() fields.PermissionsPlus {
	mode := f.info.Mode()
	perm := mode.Perm()

	return fields.PermissionsPlus{
		Kind: f.Kind(),
		Permissions: fields.Permissions{
			UserRead:     perm&0o400 != 0,
			UserWrite:    perm&0o200 != 0,
			UserExecute:  perm&0o100 != 0,
			GroupRead:    perm&0o040 != 0,
			GroupWrite:   perm&0o020 != 0,
			GroupExecute: perm&0o010 != 0,
			OtherRead:    perm&0o004 != 0,
			OtherWrite:   perm&0o002 != 0,
			OtherExecute: perm&0o001 != 0,
			Sticky:       mode&fs.ModeSticky != 0,
			SetGID:       mode&fs.ModeSetgid != 0,
			SetUID:       mode&fs.ModeSetuid != 0,
		},
		XAttrs: hasXAttrs(f.Path),
	}
}

// Links returns the hard link count.
func (f *File) Links() fields.Links {
	return fields.Links{
		Count:    f.stat.nlink,
		Multiple: f.info.Mode().IsRegular() && f.stat.nlink > 1,
	}
}

// Blocks returns the allocated block count. Only regular files and links
// report one.
func (f *File) Blocks() fields.Blocks {
	k := f.Kind()
	if !f.stat.ok || (k != fields.KindFile && k != fields.KindLink) {
		return fields.Blocks{}
	}
	return fields.Blocks{Count: f.stat.blocks, Known: true}
}

// User returns the owning user id.
func (f *File) User() fields.User {
	return fields.User(f.stat.uid)
}

// Group returns the owning group id.
func (f *File) Group() fields.Group {
	return fields.Group(f.stat.gid)
}

// Inode returns the inode number.
func (f *File) Inode() fields.Inode {
	return fields.Inode(f.stat.inode)
}

// Size returns the size column: nothing for directories, the device ids
// for devices, and the byte count otherwise.
func (f *File) Size() fields.Size {
	switch f.Kind() {
	case fields.KindDirectory:
		return fields.NoSize()
	case fields.KindBlockDevice, fields.KindCharDevice:
		return fields.DeviceSize(f.stat.major, f.stat.minor)
	default:
		return fields.BytesSize(uint64(f.info.Size()))
	}
}

// Modified returns the modification time.
func (f *File) Modified() time.Time {
	return f.info.ModTime()
}

// Class returns the content classification of the entry's name.
func (f *File) Class() fields.Class {
	return Classify(f.Name)
}

// LinkTarget resolves a symbolic link. It returns nil for other kinds.
func (f *File) LinkTarget() *Target {
	if f.Kind() != fields.KindLink {
		return nil
	}

	dest, err := os.Readlink(f.Path)
	if err != nil {
		return &Target{Err: err}
	}

	resolved := dest
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(f.Path), dest)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return &Target{Path: dest, Err: err}
	}

	return &Target{
		Path:       dest,
		Kind:       kindOf(info.Mode()),
		Executable: info.Mode().IsRegular() && info.Mode().Perm()&0o100 != 0,
		Class:      Classify(filepath.Base(dest)),
	}
}
