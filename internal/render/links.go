package render

import (
	"math"
	"math/big"

	"github.com/dustin/go-humanize"

	"github.com/alexisbeaulieu97/ells/internal/fields"
)

// Links renders the hard link count with thousands separators.
func Links(l fields.Links, colours LinksColours) Cell {
	s := colours.LinkCount()
	if l.Multiple {
		s = colours.MultiLinkFile()
	}
	return Paint(s, grouped(l.Count))
}

// grouped formats n with thousands separators over the whole uint64 range.
func grouped(n uint64) string {
	if n <= math.MaxInt64 {
		return humanize.Comma(int64(n))
	}
	return humanize.BigComma(new(big.Int).SetUint64(n))
}
