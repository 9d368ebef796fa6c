package internal

import (
	"crypto/md5"
	"fmt"
	"sync"
	"time"

	"github.com/alani-lang/alani/ast"
)

// CacheEntry holds one compiled file keyed by its content hash.
type CacheEntry struct {
	Hash         string
	AST          *ast.AST
	Err          error
	CreatedAt    time.Time
	LastAccessed time.Time
}

// Cache is an in-memory compile-result cache. It lets the watch loop and
// repeated ProcessPaths runs skip files whose content has not changed.
type Cache struct {
	entries map[string]CacheEntry
	mutex   sync.RWMutex
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]CacheEntry),
	}
}

// Get returns the cached entry for filename when the content still
// hashes the same.
func (c *Cache) Get(filename string, content []byte) (CacheEntry, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[filename]
	if !exists || entry.Hash != contentHash(content) {
		delete(c.entries, filename)
		return CacheEntry{}, false
	}

	entry.LastAccessed = time.Now()
	c.entries[filename] = entry
	return entry, true
}

// Put stores a compile result under the content's hash.
func (c *Cache) Put(filename string, content []byte, tree *ast.AST, err error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[filename] = CacheEntry{
		Hash:         contentHash(content),
		AST:          tree,
		Err:          err,
		CreatedAt:    time.Now(),
		LastAccessed: time.Now(),
	}
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

func contentHash(content []byte) string {
	return fmt.Sprintf("%x", md5.Sum(content))
}
