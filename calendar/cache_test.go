package calendar

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockCounter struct{ n int64 }

func (m *mockCounter) Inc() { atomic.AddInt64(&m.n, 1) }

type mockObserver struct{ n int64 }

func (m *mockObserver) Observe(float64) { atomic.AddInt64(&m.n, 1) }

type mockSetter struct {
	mu    sync.Mutex
	value float64
}

func (m *mockSetter) Set(v float64) {
	m.mu.Lock()
	m.value = v
	m.mu.Unlock()
}

func noopMetrics() cacheMetrics {
	return cacheMetrics{
		hits:         &mockCounter{},
		misses:       &mockCounter{},
		buildSeconds: &mockObserver{},
		years:        &mockSetter{},
	}
}

func TestCacheBuildsOncePerYear(t *testing.T) {
	t.Parallel()
	m := noopMetrics()
	var builds int64
	c := newCache(func(year int) *HolidaySet {
		atomic.AddInt64(&builds, 1)
		return Build(year)
	}, m)

	first := c.Get(2024)
	assert.True(t, first == c.Get(2024))
	c.Get(2025)

	assert.Equal(t, int64(2), atomic.LoadInt64(&builds))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, int64(1), m.hits.(*mockCounter).n)
	assert.Equal(t, int64(2), m.misses.(*mockCounter).n)
	assert.Equal(t, int64(2), m.buildSeconds.(*mockObserver).n)
	assert.Equal(t, float64(2), m.years.(*mockSetter).value)
}

func TestCacheConcurrentFirstAccess(t *testing.T) {
	t.Parallel()
	var builds int64
	c := newCache(func(year int) *HolidaySet {
		atomic.AddInt64(&builds, 1)
		return Build(year)
	}, noopMetrics())

	const goroutines = 64
	sets := make([]*HolidaySet, goroutines)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			sets[i] = c.Get(2030)
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&builds))
	for i := range sets {
		assert.True(t, sets[0] == sets[i])
	}
}

func TestDefaultServiceUsesPackageMetrics(t *testing.T) {
	t.Parallel()
	c := NewCache()
	set := c.Get(1999)
	assert.Equal(t, 1999, set.Year())
	assert.Equal(t, 1, c.Len())
}
