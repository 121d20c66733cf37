package users

import (
	"os"
	"os/user"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCache(t *testing.T) {
	c := NewStatic(1000, []uint32{100, 1000}, map[uint32]string{1000: "alice"}, map[uint32]string{100: "users"})

	assert.Equal(t, uint32(1000), c.CurrentUID())
	assert.True(t, c.InGroup(100))
	assert.False(t, c.InGroup(0))

	name, ok := c.UserName(1000)
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	name, ok = c.GroupName(100)
	assert.True(t, ok)
	assert.Equal(t, "users", name)
}

func TestCurrentUserResolves(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("numeric ids are unix only")
	}

	current, err := user.Current()
	if err != nil {
		t.Skipf("no account database: %v", err)
	}

	c := NewCache()
	assert.Equal(t, uint32(os.Getuid()), c.CurrentUID())
	assert.True(t, c.InGroup(uint32(os.Getgid())))

	name, ok := c.UserName(c.CurrentUID())
	require.True(t, ok)
	assert.Equal(t, current.Username, name)

	// second lookup is served from the cache
	again, ok := c.UserName(c.CurrentUID())
	assert.True(t, ok)
	assert.Equal(t, name, again)
}

func TestUnknownIDsMiss(t *testing.T) {
	c := NewCache()
	unknown := uint32(4_000_000_000)

	_, ok := c.UserName(unknown)
	assert.False(t, ok, "uid %s should not resolve", strconv.FormatUint(uint64(unknown), 10))

	_, ok = c.GroupName(unknown)
	assert.False(t, ok)
}
