package calendar

import (
	"sync"
	"time"

	"github.com/alpacahq/bizday/metrics"
	"github.com/alpacahq/bizday/utils/log"
)

type cacheMetrics struct {
	hits, misses metrics.Incrementer
	buildSeconds metrics.Observer
	years        metrics.Setter
}

var defaultCacheMetrics = cacheMetrics{
	hits:         metrics.HolidayCacheHitsTotal,
	misses:       metrics.HolidayCacheMissesTotal,
	buildSeconds: metrics.HolidayBuildDuration,
	years:        metrics.HolidayCachedYears,
}

// Cache memoizes one HolidaySet per year for the life of the process.
// Entries are never evicted or rebuilt, so the set returned for a year
// is always the same pointer. Cache is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	years   map[int]*HolidaySet
	build   func(year int) *HolidaySet
	metrics cacheMetrics
}

// NewCache creates an empty cache backed by Build.
func NewCache() *Cache {
	return newCache(Build, defaultCacheMetrics)
}

func newCache(build func(int) *HolidaySet, m cacheMetrics) *Cache {
	return &Cache{
		years:   map[int]*HolidaySet{},
		build:   build,
		metrics: m,
	}
}

// Get returns the holiday set of year, building and storing it on first
// access. Concurrent first accesses for the same year build it once; the
// losers wait on the lock and read the winner's entry.
func (c *Cache) Get(year int) *HolidaySet {
	c.mu.RLock()
	set, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		c.metrics.hits.Inc()
		return set
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if set, ok = c.years[year]; ok {
		c.metrics.hits.Inc()
		return set
	}

	c.metrics.misses.Inc()
	start := time.Now()
	set = c.build(year)
	c.metrics.buildSeconds.Observe(time.Since(start).Seconds())

	c.years[year] = set
	c.metrics.years.Set(float64(len(c.years)))
	log.Debug("built holiday set for %d with %d holidays", year, set.Len())
	return set
}

// Len returns the number of cached years.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.years)
}
