package listing

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ells/internal/render"
	"github.com/alexisbeaulieu97/ells/internal/theme"
	"github.com/alexisbeaulieu97/ells/internal/users"
	ellserrors "github.com/alexisbeaulieu97/ells/pkg/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chmod(path, 0o644))
}

// sampleDir holds A.md, b.txt, dir/ and .hidden.
func sampleDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A.md"), "# title\n")
	writeFile(t, filepath.Join(dir, "b.txt"), "hello")
	writeFile(t, filepath.Join(dir, ".hidden"), "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir"), 0o755))
	return dir
}

func newLister(out *bytes.Buffer, opts Options) *Lister {
	uid := uint32(os.Getuid())
	gid := uint32(os.Getgid())
	return New(Config{
		Out:     out,
		Colours: theme.Plain(),
		Users: users.NewStatic(uid, []uint32{gid},
			map[uint32]string{uid: "alice"},
			map[uint32]string{gid: "staff"}),
		Options: opts,
		Now:     func() time.Time { return time.Now().Add(time.Minute) },
	})
}

func TestThemeSatisfiesColours(t *testing.T) {
	var _ Colours = theme.Plain()
	var _ Colours = theme.Colourful(true)
}

func TestLinesView(t *testing.T) {
	dir := sampleDir(t)

	var out bytes.Buffer
	require.NoError(t, newLister(&out, Options{}).List([]string{dir}))
	assert.Equal(t, "A.md\nb.txt\ndir\n", out.String())
}

func TestLinesViewIncludesDotfilesWithAll(t *testing.T) {
	dir := sampleDir(t)

	var out bytes.Buffer
	require.NoError(t, newLister(&out, Options{All: true}).List([]string{dir}))
	assert.Equal(t, ".hidden\nA.md\nb.txt\ndir\n", out.String())
}

func TestGridViewSingleRow(t *testing.T) {
	dir := sampleDir(t)

	var out bytes.Buffer
	require.NoError(t, newLister(&out, Options{View: ViewGrid, Width: 80}).List([]string{dir}))
	assert.Equal(t, "A.md  b.txt  dir\n", out.String())
}

func TestGridViewWrapsColumnMajor(t *testing.T) {
	dir := sampleDir(t)

	var out bytes.Buffer
	require.NoError(t, newLister(&out, Options{View: ViewGrid, Width: 10}).List([]string{dir}))
	assert.Equal(t, "A.md   dir\nb.txt\n", out.String())
}

func TestGridViewWithoutWidthFallsBackToLines(t *testing.T) {
	dir := sampleDir(t)

	var out bytes.Buffer
	require.NoError(t, newLister(&out, Options{View: ViewGrid}).List([]string{dir}))
	assert.Equal(t, "A.md\nb.txt\ndir\n", out.String())
}

func TestFitGrid(t *testing.T) {
	cells := []render.Cell{
		render.Paint(theme.Plain().Normal(), "aaaa"),
		render.Paint(theme.Plain().Normal(), "bb"),
		render.Paint(theme.Plain().Normal(), "cccccc"),
	}

	tests := []struct {
		name   string
		width  int
		rows   int
		widths []int
	}{
		{"everything on one row", 20, 1, []int{4, 2, 6}},
		{"two rows", 12, 2, []int{4, 6}},
		{"too narrow for any grid", 3, 3, []int{6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitGrid(cells, tt.width)
			assert.Equal(t, tt.rows, got.rows)
			assert.Equal(t, tt.widths, got.widths)
		})
	}
}

func TestLongView(t *testing.T) {
	dir := sampleDir(t)

	var out bytes.Buffer
	lister := newLister(&out, Options{View: ViewLong, Header: true})
	require.NoError(t, lister.List([]string{dir}))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t,
		[]string{"Permissions", "Links", "Size", "User", "Group", "Date", "Modified", "Name"},
		strings.Fields(lines[0]))

	file := strings.Fields(lines[2])
	assert.True(t, strings.HasPrefix(file[0], ".rw-r--r--"), file[0])
	assert.Equal(t, "1", file[1])
	assert.Equal(t, "5", file[2])
	assert.Equal(t, "alice", file[3])
	assert.Equal(t, "staff", file[4])
	assert.Equal(t, "b.txt", file[len(file)-1])

	directory := strings.Fields(lines[3])
	assert.True(t, strings.HasPrefix(directory[0], "d"))
	assert.Equal(t, "-", directory[2])
	assert.Equal(t, "dir", directory[len(directory)-1])
}

func TestLongViewOptionalColumns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes"), "hello")

	var out bytes.Buffer
	lister := newLister(&out, Options{View: ViewLong, Header: true, Inode: true, Blocks: true, Git: true})
	require.NoError(t, lister.List([]string{dir}))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		[]string{"Inode", "Permissions", "Blocks", "Links", "Size", "User", "Group", "Date", "Modified", "Git", "Name"},
		strings.Fields(lines[0]))

	row := strings.Fields(lines[1])
	assert.Equal(t, "--", row[len(row)-2], "files outside a repository have no status")
	assert.Equal(t, "notes", row[len(row)-1])
}

func TestLongViewShowsSymlinkTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "target.txt"), "x")
	require.NoError(t, os.Symlink("target.txt", filepath.Join(dir, "link")))
	require.NoError(t, os.Symlink("missing", filepath.Join(dir, "broken")))

	var out bytes.Buffer
	require.NoError(t, newLister(&out, Options{View: ViewLong}).List([]string{dir}))

	assert.Contains(t, out.String(), "broken -> missing")
	assert.Contains(t, out.String(), "link -> target.txt")
}

func TestListFilesBeforeDirectoriesWithHeadings(t *testing.T) {
	dir := sampleDir(t)
	file := filepath.Join(dir, "b.txt")
	sub := filepath.Join(dir, "dir")
	writeFile(t, filepath.Join(sub, "inner"), "")

	var out bytes.Buffer
	require.NoError(t, newLister(&out, Options{}).List([]string{sub, file}))
	assert.Equal(t, file+"\n\n"+sub+":\ninner\n", out.String())
}

func TestListReportsMissingPathsAndContinues(t *testing.T) {
	dir := sampleDir(t)
	missing := filepath.Join(dir, "nope")

	var out bytes.Buffer
	err := newLister(&out, Options{}).List([]string{missing, filepath.Join(dir, "dir")})
	require.Error(t, err)

	var listErr *ellserrors.ListError
	require.True(t, errors.As(err, &listErr))
	assert.Equal(t, missing, listErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Contains(t, out.String(), filepath.Join(dir, "dir")+":")
}

func TestRenderNothing(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newLister(&out, Options{View: ViewLong}).Render(nil))
	assert.Empty(t, out.String())
}

func TestListFollowsSymlinkedDirectoryArguments(t *testing.T) {
	dir := sampleDir(t)
	link := filepath.Join(t.TempDir(), "alias")
	require.NoError(t, os.Symlink(dir, link))

	var out bytes.Buffer
	require.NoError(t, newLister(&out, Options{}).List([]string{link}))
	assert.Equal(t, "A.md\nb.txt\ndir\n", out.String())
}

func TestListKeepsSymlinksToFilesAsFiles(t *testing.T) {
	dir := sampleDir(t)
	link := filepath.Join(dir, "readme")
	require.NoError(t, os.Symlink("A.md", link))

	var out bytes.Buffer
	require.NoError(t, newLister(&out, Options{}).List([]string{link}))
	assert.Equal(t, link+"\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestListReportsWriteFailures(t *testing.T) {
	dir := sampleDir(t)

	lister := New(Config{Out: failingWriter{}, Colours: theme.Plain(), Users: users.NewStatic(0, nil, nil, nil)})
	err := lister.List([]string{dir, filepath.Join(dir, "dir")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write listing")
}

// bruteForceRows is the smallest fitting row count found by trying them all.
func bruteForceRows(widths []int, width int) int {
	n := len(widths)
	for rows := 1; rows < n; rows++ {
		cols := (n + rows - 1) / rows
		maxes := make([]int, cols)
		for i, w := range widths {
			if w > maxes[i/rows] {
				maxes[i/rows] = w
			}
		}
		used := gridSpacing * (cols - 1)
		for _, m := range maxes {
			used += m
		}
		if used <= width {
			return rows
		}
	}
	return n
}

func TestFitGridMatchesExhaustiveSearch(t *testing.T) {
	widths := make([]int, 200)
	cells := make([]render.Cell, len(widths))
	for i := range widths {
		widths[i] = 1 + (i*7)%23
		cells[i] = render.Paint(theme.Plain().Normal(), strings.Repeat("x", widths[i]))
	}

	for _, width := range []int{10, 24, 40, 80, 132, 400, 10000} {
		assert.Equal(t, bruteForceRows(widths, width), fitGrid(cells, width).rows, "width %d", width)
	}
}
