//go:build unix

package fs

import (
	"io/fs"
	"syscall"

	"golang.org/x/sys/unix"
)

type statData struct {
	ok     bool
	uid    uint32
	gid    uint32
	nlink  uint64
	blocks uint64
	inode  uint64
	major  uint32
	minor  uint32
}

func extractStat(info fs.FileInfo) statData {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return statData{nlink: 1}
	}

	dev := uint64(st.Rdev)
	return statData{
		ok:     true,
		uid:    st.Uid,
		gid:    st.Gid,
		nlink:  uint64(st.Nlink),
		blocks: uint64(st.Blocks),
		inode:  uint64(st.Ino),
		major:  unix.Major(dev),
		minor:  unix.Minor(dev),
	}
}
