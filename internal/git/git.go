// Package git reports version control status for listed files.
package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	gogit "github.com/go-git/go-git/v5"

	"github.com/alexisbeaulieu97/ells/internal/fields"
	"github.com/alexisbeaulieu97/ells/internal/logger"
)

// Repo holds the status of every changed path in one work tree. The zero
// value, and a Repo for a directory outside any repository, reports every
// path as not modified.
type Repo struct {
	root     string
	statuses map[string]fields.Git
}

// Open finds the repository containing dir and computes its status once.
// A directory outside any repository is not an error.
func Open(dir string) (*Repo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return &Repo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if errors.Is(err, gogit.ErrIsBareRepository) {
		return &Repo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open worktree at %s: %w", dir, err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("read status at %s: %w", dir, err)
	}

	statuses := make(map[string]fields.Git, len(status))
	for path, st := range status {
		g := fields.Git{
			Staged:   stateFor(st.Staging, false),
			Unstaged: stateFor(st.Worktree, true),
		}
		if g == (fields.Git{}) {
			continue
		}
		statuses[path] = g
	}

	return &Repo{root: canonical(wt.Filesystem.Root()), statuses: statuses}, nil
}

// stateFor maps a go-git status code to a column state. Untracked files
// appear as new in the work tree and unchanged in the index.
func stateFor(code gogit.StatusCode, worktree bool) fields.GitState {
	switch code {
	case gogit.Untracked:
		if worktree {
			return fields.GitNew
		}
		return fields.GitNotModified
	case gogit.Added, gogit.Copied:
		return fields.GitNew
	case gogit.Modified, gogit.UpdatedButUnmerged:
		return fields.GitModified
	case gogit.Deleted:
		return fields.GitDeleted
	case gogit.Renamed:
		return fields.GitRenamed
	default:
		return fields.GitNotModified
	}
}

// Root returns the top of the work tree, or "" outside a repository.
func (r *Repo) Root() string {
	if r == nil {
		return ""
	}
	return r.root
}

// StatusFor returns the status of path. A directory reports the status
// its changed children agree on, or modified when they disagree.
func (r *Repo) StatusFor(path string, isDir bool) fields.Git {
	if r == nil || r.root == "" {
		return fields.Git{}
	}

	rel, ok := r.relative(path)
	if !ok {
		return fields.Git{}
	}

	if !isDir {
		return r.statuses[rel]
	}

	prefix := rel + "/"
	if rel == "." {
		prefix = ""
	}

	var staged, unstaged []fields.GitState
	for p, st := range r.statuses {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		staged = append(staged, st.Staged)
		unstaged = append(unstaged, st.Unstaged)
	}
	return fields.Git{Staged: reduce(staged), Unstaged: reduce(unstaged)}
}

func reduce(states []fields.GitState) fields.GitState {
	result := fields.GitNotModified
	for _, s := range states {
		if s == fields.GitNotModified {
			continue
		}
		if result == fields.GitNotModified {
			result = s
			continue
		}
		if result != s {
			return fields.GitModified
		}
	}
	return result
}

func (r *Repo) relative(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	// resolve the parent only, so a symlink entry keeps its own name
	abs = filepath.Join(canonical(filepath.Dir(abs)), filepath.Base(abs))

	rel, err := filepath.Rel(r.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// Cache opens each repository once, however many of its directories are
// listed. It is safe for concurrent use.
type Cache struct {
	log *logger.Logger

	mu    sync.Mutex
	byDir map[string]*Repo
	roots map[string]*Repo
}

// NewCache returns an empty cache. log may be nil.
func NewCache(log *logger.Logger) *Cache {
	return &Cache{
		log:   log,
		byDir: make(map[string]*Repo),
		roots: make(map[string]*Repo),
	}
}

// Get returns the repository containing dir. Failures are logged and
// reported as an empty repository so a listing can continue without status.
func (c *Cache) Get(dir string) *Repo {
	key := canonical(dir)

	c.mu.Lock()
	defer c.mu.Unlock()

	if repo, ok := c.byDir[key]; ok {
		return repo
	}
	for root, repo := range c.roots {
		if key == root || strings.HasPrefix(key, root+string(filepath.Separator)) {
			c.byDir[key] = repo
			return repo
		}
	}

	repo, err := Open(key)
	if err != nil {
		c.log.WithFields(map[string]any{"dir": dir}).Error(err, "git status unavailable")
		repo = &Repo{}
	} else if repo.Root() == "" {
		c.log.WithFields(map[string]any{"dir": dir}).Debug("not inside a git repository")
	} else {
		c.roots[repo.Root()] = repo
	}

	c.byDir[key] = repo
	return repo
}
