package listing

import (
	"fmt"

	"github.com/alexisbeaulieu97/ells/internal/fs"
)

func (l *Lister) renderLines(files []*fs.File) error {
	for _, f := range files {
		if _, err := fmt.Fprintln(l.out, l.nameCell(f, false).Render(l.renderer)); err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
	}
	return nil
}
