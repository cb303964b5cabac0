package assistant

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/vibeos/vibesh/internal/domain"
)

// cacheEntry is one stored translation.
type cacheEntry struct {
	Key       string    `json:"key"`
	Command   string    `json:"command"`
	CreatedAt time.Time `json:"created_at"`
}

// ResponseCache stores assistant translations as JSON blobs addressed by
// hash key, so repeated requests skip the CLI round-trip.
type ResponseCache struct {
	dir        string
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
}

// NewResponseCache returns a cache rooted at dir with the given TTL.
func NewResponseCache(dir string, ttl time.Duration) *ResponseCache {
	if ttl < domain.MinCacheTTL {
		ttl = domain.MinCacheTTL
	}
	if ttl > domain.MaxCacheTTL {
		ttl = domain.MaxCacheTTL
	}
	return &ResponseCache{
		dir:        dir,
		maxEntries: 100,
		ttl:        ttl,
	}
}

// CacheKey derives a stable key from the request and the directory it was
// made in; the same words in a different project must not share a command.
func CacheKey(input string, workdir string) string {
	sum := sha256.Sum256([]byte(input + "\x00" + workdir))
	return hex.EncodeToString(sum[:16])
}

// Get retrieves a cached command. Expired entries are removed on read.
func (c *ResponseCache) Get(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	path := c.pathFor(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return "", false
	}
	if c.ttl > 0 && time.Since(entry.CreatedAt) > c.ttl {
		_ = os.Remove(path)
		return "", false
	}
	return entry.Command, true
}

// Set stores a translation.
func (c *ResponseCache) Set(key string, command string) error {
	if key == "" || command == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(c.dir, domain.DirectoryPermissions); err != nil {
		return err
	}
	data, err := json.Marshal(cacheEntry{Key: key, Command: command, CreatedAt: time.Now()})
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.pathFor(key), data, domain.StateFilePermissions); err != nil {
		return err
	}
	return c.evictIfNeeded()
}

// Clear removes all cached entries.
func (c *ResponseCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// Dir exposes the cache directory path.
func (c *ResponseCache) Dir() string {
	return c.dir
}

func (c *ResponseCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *ResponseCache) evictIfNeeded() error {
	if c.maxEntries <= 0 {
		return nil
	}
	files, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(files) <= c.maxEntries {
		return nil
	}
	type fileInfo struct {
		name string
		mod  time.Time
	}
	var infos []fileInfo
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		infos = append(infos, fileInfo{name: f.Name(), mod: info.ModTime()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].mod.Before(infos[j].mod) })
	for len(infos) > c.maxEntries {
		old := infos[0]
		_ = os.Remove(filepath.Join(c.dir, old.name))
		infos = infos[1:]
	}
	return nil
}
