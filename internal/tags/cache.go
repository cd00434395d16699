package tags

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const defaultCacheSize = 256

type entry struct {
	meta     Metadata
	duration int
}

// Cache memoizes metadata and durations per path so the frame loop can ask
// for them every frame without touching the disk.
type Cache struct {
	entries *lru.Cache[string, entry]
	log     *zap.Logger

	readMeta     func(string) (Metadata, error)
	readDuration func(string) (time.Duration, error)
}

// NewCache creates a cache holding up to size tracks.
func NewCache(size int, log *zap.Logger) *Cache {
	if size <= 0 {
		size = defaultCacheSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	entries, _ := lru.New[string, entry](size) // only fails for size <= 0
	return &Cache{
		entries:      entries,
		log:          log,
		readMeta:     Read,
		readDuration: ReadDuration,
	}
}

// Metadata returns the display metadata of path with fallbacks applied.
func (c *Cache) Metadata(path string) Metadata {
	return c.load(path).meta
}

// Duration returns the whole-second length of path, 0 when unknown.
func (c *Cache) Duration(path string) int {
	return c.load(path).duration
}

func (c *Cache) load(path string) entry {
	if e, ok := c.entries.Get(path); ok {
		return e
	}

	meta, err := c.readMeta(path)
	if err != nil {
		c.log.Debug("read tags", zap.String("path", path), zap.Error(err))
	}

	var seconds int
	d, err := c.readDuration(path)
	if err != nil {
		c.log.Debug("read duration", zap.String("path", path), zap.Error(err))
	} else {
		seconds = int(d / time.Second)
	}

	e := entry{meta: meta.withFallbacks(path), duration: seconds}
	c.entries.Add(path, e)
	return e
}
