package render

import (
	"strconv"
	"time"

	"github.com/alexisbeaulieu97/ells/internal/fields"
)

// sixMonths matches the cutoff ls uses between showing a time and a year.
const sixMonths = 183 * 24 * time.Hour

// Inode renders an inode number.
func Inode(i fields.Inode, colours DetailsColours) Cell {
	return Paint(colours.InodeNumber(), strconv.FormatUint(uint64(i), 10))
}

// Date renders a modification time relative to now. Recent times show the
// hour and minute, older or future ones show the year.
func Date(t, now time.Time, colours DetailsColours) Cell {
	layout := "_2 Jan 15:04"
	if age := now.Sub(t); age > sixMonths || age < 0 {
		layout = "_2 Jan  2006"
	}
	return Paint(colours.Timestamp(), t.Format(layout))
}

// Header renders a column heading.
func Header(title string, colours DetailsColours) Cell {
	return Paint(colours.ColumnHeader(), title)
}
