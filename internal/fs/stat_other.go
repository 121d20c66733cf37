//go:build !unix

package fs

import "io/fs"

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

func extractStat(fs.FileInfo) statData {
	return statData{nlink: 1}
}
