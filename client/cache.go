package client

import (
	"fmt"
	"strings"
	"sync"
)

// Cache is a keyed mirror of server state. It is explicit about its
// invalidation rules: a project mutation drops the projects list, that
// project's entry and its stats; a task mutation drops every cached task
// list plus the owning project's stats.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

func projectsKey() string {
	return "projects"
}

func projectKey(id int64) string {
	return fmt.Sprintf("projects/%d", id)
}

func statsKey(id int64) string {
	return fmt.Sprintf("projects/%d/stats", id)
}

func tasksKey(query TaskQuery) string {
	return "tasks?" + query.values().Encode()
}

func (c *Cache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok
}

func (c *Cache) set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *Cache) invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
}

func (c *Cache) invalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// InvalidateProject drops entries affected by a mutation of the given
// project. Its tasks can disappear with it, so task lists go too.
func (c *Cache) InvalidateProject(id int64) {
	c.invalidate(projectsKey(), projectKey(id), statsKey(id))
	c.invalidatePrefix("tasks?")
}

// InvalidateTasks drops every cached task list and the owning project's
// stats after a task mutation.
func (c *Cache) InvalidateTasks(projectID int64) {
	c.invalidatePrefix("tasks?")
	c.invalidate(statsKey(projectID))
}
