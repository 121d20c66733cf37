// Package users resolves account ids to names and relates them to the
// current user.
package users

import (
	"os"
	"os/user"
	"strconv"
	"sync"
)

// Cache memoises user and group lookups. It is safe for concurrent use.
type Cache struct {
	uid    uint32
	groups map[uint32]bool

	mu         sync.Mutex
	userNames  map[uint32]lookupResult
	groupNames map[uint32]lookupResult
}

type lookupResult struct {
	name string
	ok   bool
}

// NewCache builds a cache for the user running the process.
func NewCache() *Cache {
	c := &Cache{
		uid:        uint32(os.Getuid()),
		groups:     make(map[uint32]bool),
		userNames:  make(map[uint32]lookupResult),
		groupNames: make(map[uint32]lookupResult),
	}

	if gid := os.Getgid(); gid >= 0 {
		c.groups[uint32(gid)] = true
	}
	if gids, err := os.Getgroups(); err == nil {
		for _, gid := range gids {
			c.groups[uint32(gid)] = true
		}
	}
	return c
}

// NewStatic builds a cache with fixed answers, for callers that must not
// depend on the host's account database.
func NewStatic(uid uint32, groups []uint32, userNames, groupNames map[uint32]string) *Cache {
	c := &Cache{
		uid:        uid,
		groups:     make(map[uint32]bool, len(groups)),
		userNames:  make(map[uint32]lookupResult),
		groupNames: make(map[uint32]lookupResult),
	}
	for _, gid := range groups {
		c.groups[gid] = true
	}
	for id, name := range userNames {
		c.userNames[id] = lookupResult{name: name, ok: true}
	}
	for id, name := range groupNames {
		c.groupNames[id] = lookupResult{name: name, ok: true}
	}
	return c
}

// CurrentUID returns the uid of the current user.
func (c *Cache) CurrentUID() uint32 {
	return c.uid
}

// InGroup reports whether the current user belongs to gid.
func (c *Cache) InGroup(gid uint32) bool {
	return c.groups[gid]
}

// UserName returns the login name for uid.
func (c *Cache) UserName(uid uint32) (string, bool) {
	return c.lookup(c.userNames, uid, func(id string) (string, error) {
		u, err := user.LookupId(id)
		if err != nil {
			return "", err
		}
		return u.Username, nil
	})
}

// GroupName returns the name of group gid.
func (c *Cache) GroupName(gid uint32) (string, bool) {
	return c.lookup(c.groupNames, gid, func(id string) (string, error) {
		g, err := user.LookupGroupId(id)
		if err != nil {
			return "", err
		}
		return g.Name, nil
	})
}

func (c *Cache) lookup(cache map[uint32]lookupResult, id uint32, resolve func(string) (string, error)) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := cache[id]; ok {
		return res.name, res.ok
	}

	name, err := resolve(strconv.FormatUint(uint64(id), 10))
	res := lookupResult{name: name, ok: err == nil && name != ""}
	cache[id] = res
	return res.name, res.ok
}
