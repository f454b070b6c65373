package speech

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Cache is the utterance cache janitor. Synthesized WAVs pile up in the
// output directory; the janitor wakes periodically and deletes the oldest
// files while the cache exceeds its size threshold. The in-flight utterance
// is never removed.
type Cache struct {
	dir       string
	threshold int64 // bytes
	interval  time.Duration
	logger    *zap.Logger
	inUse     func() string

	done chan struct{}
}

// NewCache creates a janitor for dir. thresholdMB is the size above which
// old utterances are deleted; inUse reports the WAV path that must survive
// a sweep (may return "").
func NewCache(dir string, thresholdMB int, interval time.Duration, inUse func() string, logger *zap.Logger) *Cache {
	return &Cache{
		dir:       dir,
		threshold: int64(thresholdMB) * 1024 * 1024,
		interval:  interval,
		logger:    logger,
		inUse:     inUse,
		done:      make(chan struct{}),
	}
}

// Start runs the janitor loop in the background until Stop is called.
func (c *Cache) Start() {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				removed, freed, err := c.sweep()
				if err != nil {
					c.logger.Warn("utterance cache sweep failed", zap.Error(err))
					continue
				}
				if removed > 0 {
					c.logger.Info("utterance cache swept",
						zap.Int("removed", removed),
						zap.String("freed", humanize.Bytes(uint64(freed))))
				}
			case <-c.done:
				return
			}
		}
	}()
}

// Stop terminates the janitor loop.
func (c *Cache) Stop() {
	close(c.done)
}

type cacheEntry struct {
	path    string
	size    int64
	modTime time.Time
}

// sweep deletes the oldest cached WAVs while the cache exceeds the
// threshold. Returns the number of files removed and the bytes freed.
func (c *Cache) sweep() (int, int64, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, 0, err
	}

	var files []cacheEntry
	var total int64
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".wav" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, cacheEntry{
			path:    filepath.Join(c.dir, entry.Name()),
			size:    info.Size(),
			modTime: info.ModTime(),
		})
		total += info.Size()
	}

	if total <= c.threshold {
		return 0, 0, nil
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.Before(files[j].modTime)
	})

	protected := ""
	if c.inUse != nil {
		protected = c.inUse()
	}

	removed := 0
	var freed int64
	for _, f := range files {
		if total <= c.threshold {
			break
		}
		if f.path == protected {
			continue
		}
		if err := os.Remove(f.path); err != nil {
			continue
		}
		total -= f.size
		freed += f.size
		removed++
	}
	return removed, freed, nil
}
