package tags

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newCountingCache(t *testing.T, meta Metadata, metaErr error, d time.Duration, dErr error) (*Cache, *int) {
	t.Helper()
	reads := 0
	c := NewCache(4, nil)
	c.readMeta = func(string) (Metadata, error) {
		reads++
		return meta, metaErr
	}
	c.readDuration = func(string) (time.Duration, error) {
		return d, dErr
	}
	return c, &reads
}

func TestCache_ReadsOncePerPath(t *testing.T) {
	c, reads := newCountingCache(t, Metadata{Title: "T", Artist: "A", Album: "B"}, nil, 95*time.Second+900*time.Millisecond, nil)

	for range 5 {
		assert.Equal(t, "T", c.Metadata("/m/a.mp3").Title)
		assert.Equal(t, 95, c.Duration("/m/a.mp3"))
	}
	assert.Equal(t, 1, *reads)

	c.Metadata("/m/b.mp3")
	assert.Equal(t, 2, *reads)
}

func TestCache_FallbacksOnError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c, _ := newCountingCache(t, Metadata{}, errors.New("corrupt frame"), 0, errors.New("no stream"))
	c.log = zap.New(core)

	got := c.Metadata("/m/broken.ogg")
	assert.Equal(t, Fallback("/m/broken.ogg"), got)
	assert.Equal(t, 0, c.Duration("/m/broken.ogg"))
	assert.Equal(t, 1, logs.FilterMessage("read tags").Len())
	assert.Equal(t, 1, logs.FilterMessage("read duration").Len())
}

func TestCache_Eviction(t *testing.T) {
	c, reads := newCountingCache(t, Metadata{Title: "T"}, nil, time.Second, nil)

	for _, p := range []string{"/1", "/2", "/3", "/4", "/5"} {
		c.Metadata(p)
	}
	assert.Equal(t, 5, *reads)

	// "/1" was the least recently used entry of a 4-slot cache.
	c.Metadata("/1")
	assert.Equal(t, 6, *reads)
}

func TestNewCache_DefaultSize(t *testing.T) {
	c := NewCache(0, nil)
	assert.NotNil(t, c.entries)
	assert.NotNil(t, c.log)
}
