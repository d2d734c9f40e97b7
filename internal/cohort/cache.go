package cohort

import (
	"fmt"
	"os"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/yourusername/fairway-edge/internal/metrics"
	"github.com/yourusername/fairway-edge/internal/models"
)

// CachedLoader keeps parsed cohort files in memory. Entries are keyed by path,
// modification time and size, so an edited file is always re-read.
type CachedLoader struct {
	cache     *cache.Cache
	ttl       time.Duration
	mu        sync.Mutex
	hitCount  uint64
	missCount uint64
}

// NewCachedLoader creates a loader whose entries live for ttl
func NewCachedLoader(ttl time.Duration) *CachedLoader {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedLoader{
		cache: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

// Load returns the cohort at path. The returned players are copies the caller
// may keep.
func (cl *CachedLoader) Load(path string) (*File, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to stat cohort file: %w", err)
	}
	key := fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size())

	if cached, found := cl.cache.Get(key); found {
		if file, ok := cached.(*File); ok {
			cl.record(true)
			return clone(file), true, nil
		}
	}

	file, err := Load(path)
	if err != nil {
		return nil, false, err
	}
	cl.record(false)

	// Older versions of the same file are dead weight.
	for k := range cl.cache.Items() {
		if k != key && len(k) > len(path) && k[:len(path)+1] == path+"|" {
			cl.cache.Delete(k)
		}
	}
	cl.cache.Set(key, file, cl.ttl)

	return clone(file), false, nil
}

// Clear flushes the cache
func (cl *CachedLoader) Clear() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.cache.Flush()
	cl.hitCount = 0
	cl.missCount = 0
}

// Stats returns cache statistics
func (cl *CachedLoader) Stats() (hits, misses uint64, ratio float64) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.statsLocked()
}

// ItemCount returns the number of cached files
func (cl *CachedLoader) ItemCount() int {
	return cl.cache.ItemCount()
}

func (cl *CachedLoader) record(hit bool) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if hit {
		cl.hitCount++
	} else {
		cl.missCount++
	}
	_, _, ratio := cl.statsLocked()
	if hit {
		metrics.RecordCohortCacheHit(ratio)
	} else {
		metrics.RecordCohortCacheMiss(ratio)
	}
}

func (cl *CachedLoader) statsLocked() (hits, misses uint64, ratio float64) {
	hits, misses = cl.hitCount, cl.missCount
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

func clone(file *File) *File {
	out := &File{Event: file.Event, Players: make([]*models.Player, len(file.Players))}
	for i, p := range file.Players {
		cp := *p
		out.Players[i] = &cp
	}
	return out
}
