// Package listing prints files in the lines, grid and long views.
package listing

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/ells/internal/fields"
	"github.com/alexisbeaulieu97/ells/internal/fs"
	"github.com/alexisbeaulieu97/ells/internal/git"
	"github.com/alexisbeaulieu97/ells/internal/logger"
	"github.com/alexisbeaulieu97/ells/internal/render"
	ellserrors "github.com/alexisbeaulieu97/ells/pkg/errors"
)

// Colours is every capability a listing needs from a theme. The views only
// hand each renderer the narrow interface it asks for.
type Colours interface {
	render.BlocksColours
	render.FileNameColours
	render.GitColours
	render.GroupColours
	render.LinksColours
	render.PermissionsColours
	render.SizeColours
	render.UserColours
	render.DetailsColours
}

// View selects the output layout.
type View int

const (
	ViewLines View = iota
	ViewGrid
	ViewLong
)

// Options controls what is listed and how.
type Options struct {
	View View
	All  bool

	// Long view columns.
	Header     bool
	Inode      bool
	Blocks     bool
	Git        bool
	SizeFormat render.SizeFormat

	// Width is the terminal width used by the grid view. Zero or less falls
	// back to one name per line.
	Width int
}

// Config wires a Lister to its collaborators.
type Config struct {
	Out      io.Writer
	Renderer *lipgloss.Renderer
	Colours  Colours
	Users    render.UsersLookup
	Logger   *logger.Logger
	Options  Options

	// Git is consulted only when Options.Git is set. A nil cache is created
	// on demand.
	Git *git.Cache

	// Now is the reference time for the date column. Defaults to time.Now.
	Now func() time.Time
}

// Lister prints listings.
type Lister struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	colours  Colours
	users    render.UsersLookup
	log      *logger.Logger
	git      *git.Cache
	opts     Options
	now      func() time.Time
}

// New builds a Lister from cfg.
func New(cfg Config) *Lister {
	l := &Lister{
		out:      cfg.Out,
		renderer: cfg.Renderer,
		colours:  cfg.Colours,
		users:    cfg.Users,
		log:      cfg.Logger,
		git:      cfg.Git,
		opts:     cfg.Options,
		now:      cfg.Now,
	}
	if l.now == nil {
		l.now = time.Now
	}
	if l.opts.Git && l.git == nil {
		l.git = git.NewCache(cfg.Logger)
	}
	return l
}

// List prints every path. Files named directly are printed first as one
// group, then each directory's contents. When more than one path is given,
// each directory gets a heading. Paths that cannot be read are skipped and
// reported together in the returned error.
func (l *Lister) List(paths []string) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var (
		errs  []error
		files []*fs.File
		dirs  []*fs.File
	)
	for _, p := range paths {
		f, err := fs.Stat(p)
		if err != nil {
			l.log.WithFields(map[string]any{"path": p, "error": err.Error()}).Debug("cannot access path")
			errs = append(errs, ellserrors.NewListError(p, err))
			continue
		}
		f.Name = p
		if f.IsDir() || linksToDir(f) {
			dirs = append(dirs, f)
		} else {
			files = append(files, f)
		}
	}

	printed := false
	if len(files) > 0 {
		if err := l.Render(files); err != nil {
			return err
		}
		printed = true
	}

	headings := len(paths) > 1
	for _, dir := range dirs {
		entries, err := fs.Read(dir.Path, fs.Options{All: l.opts.All})
		if err != nil {
			l.log.WithFields(map[string]any{"path": dir.Path, "error": err.Error()}).Debug("cannot read directory")
			errs = append(errs, ellserrors.NewListError(dir.Path, err))
			continue
		}

		if headings {
			if err := l.heading(dir.Path, printed); err != nil {
				return err
			}
		}
		if err := l.Render(entries); err != nil {
			return err
		}
		printed = true
	}

	return errors.Join(errs...)
}

// linksToDir reports whether f is a symbolic link to a directory. Such
// arguments are listed like the directory itself.
func linksToDir(f *fs.File) bool {
	target := f.LinkTarget()
	return target != nil && target.Err == nil && target.Kind == fields.KindDirectory
}

func (l *Lister) heading(path string, separate bool) error {
	if separate {
		if _, err := fmt.Fprintln(l.out); err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
	}
	if _, err := fmt.Fprintf(l.out, "%s:\n", path); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	return nil
}

// Render prints files in the configured view.
func (l *Lister) Render(files []*fs.File) error {
	if len(files) == 0 {
		return nil
	}

	switch l.opts.View {
	case ViewLong:
		return l.renderLong(files)
	case ViewGrid:
		return l.renderGrid(files)
	default:
		return l.renderLines(files)
	}
}

func (l *Lister) nameCell(f *fs.File, showTarget bool) render.Cell {
	n := render.Name{
		Name:       f.Name,
		Kind:       f.Kind(),
		Executable: f.IsExecutable(),
		Class:      f.Class(),
	}

	if target := f.LinkTarget(); target != nil {
		n.Target = &render.LinkTarget{
			Path:       target.Path,
			Broken:     target.Err != nil,
			Kind:       target.Kind,
			Executable: target.Executable,
			Class:      target.Class,
		}
		if target.Err != nil {
			l.log.WithFields(map[string]any{"path": f.Path}).Debug("broken symbolic link")
		}
	}

	return render.FileName(n, showTarget, l.colours)
}
