package listing

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/alexisbeaulieu97/ells/internal/fields"
	"github.com/alexisbeaulieu97/ells/internal/fs"
	"github.com/alexisbeaulieu97/ells/internal/render"
)

// column is one column of the long view.
type column struct {
	title string
	align text.Align
	cell  func(f *fs.File) render.Cell
}

func (l *Lister) columns() []column {
	var cols []column

	if l.opts.Inode {
		cols = append(cols, column{"Inode", text.AlignRight, func(f *fs.File) render.Cell {
			return render.Inode(f.Inode(), l.colours)
		}})
	}

	cols = append(cols, column{"Permissions", text.AlignLeft, func(f *fs.File) render.Cell {
		return render.Permissions(f.Permissions(), l.colours, l.colours)
	}})

	if l.opts.Blocks {
		cols = append(cols, column{"Blocks", text.AlignRight, func(f *fs.File) render.Cell {
			return render.Blocks(f.Blocks(), l.colours)
		}})
	}

	cols = append(cols,
		column{"Links", text.AlignRight, func(f *fs.File) render.Cell {
			return render.Links(f.Links(), l.colours)
		}},
		column{"Size", text.AlignRight, func(f *fs.File) render.Cell {
			return render.Size(f.Size(), l.opts.SizeFormat, l.colours)
		}},
		column{"User", text.AlignLeft, func(f *fs.File) render.Cell {
			return render.User(f.User(), l.users, l.colours)
		}},
		column{"Group", text.AlignLeft, func(f *fs.File) render.Cell {
			return render.Group(f.Group(), l.users, l.colours)
		}},
		column{"Date Modified", text.AlignLeft, func(f *fs.File) render.Cell {
			return render.Date(f.Modified(), l.now(), l.colours)
		}},
	)

	if l.opts.Git {
		cols = append(cols, column{"Git", text.AlignLeft, func(f *fs.File) render.Cell {
			return render.Git(l.gitStatus(f), l.colours)
		}})
	}

	cols = append(cols, column{"Name", text.AlignLeft, func(f *fs.File) render.Cell {
		return l.nameCell(f, true)
	}})

	return cols
}

func (l *Lister) gitStatus(f *fs.File) fields.Git {
	path, err := filepath.Abs(f.Path)
	if err != nil {
		return fields.Git{}
	}
	return l.git.Get(filepath.Dir(path)).StatusFor(path, f.IsDir())
}

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	st := tw.Style()
	st.Options = table.OptionsNoBordersAndSeparators
	st.Options.SeparateColumns = true
	st.Box.MiddleVertical = " "
	st.Box.PaddingLeft = ""
	st.Box.PaddingRight = ""
	st.Format.Header = text.FormatDefault

	return tw
}

func (l *Lister) renderLong(files []*fs.File) error {
	cols := l.columns()

	tw := newTable()
	configs := make([]table.ColumnConfig, 0, len(cols))
	for i, c := range cols {
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: c.align, AlignHeader: c.align})
	}
	tw.SetColumnConfigs(configs)

	if l.opts.Header {
		header := make(table.Row, len(cols))
		for i, c := range cols {
			header[i] = render.Header(c.title, l.colours).Render(l.renderer)
		}
		tw.AppendHeader(header)
	}

	for _, f := range files {
		row := make(table.Row, len(cols))
		for i, c := range cols {
			row[i] = c.cell(f).Render(l.renderer)
		}
		tw.AppendRow(row)
	}

	if _, err := fmt.Fprintln(l.out, tw.Render()); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	return nil
}
