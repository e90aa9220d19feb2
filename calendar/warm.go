package calendar

import (
	"github.com/alpacahq/bizday/utils/log"
	"github.com/alpacahq/bizday/utils/pool"
)

// Warm builds the holiday sets of every year in [from, to] using up to
// workers goroutines. Years already cached are left untouched.
func (s *Service) Warm(from, to, workers int) {
	if to < from {
		return
	}
	p := pool.NewPool(workers, func(input interface{}) {
		year, ok := input.(int)
		if !ok {
			log.Error("failed to cast a warm-up message to a year: %v", input)
			return
		}
		s.cache.Get(year)
	})

	years := make(chan interface{})
	go func() {
		defer close(years)
		for y := from; y <= to; y++ {
			years <- y
		}
	}()
	p.Work(years)
	p.Wait()
	log.Info("holiday cache warmed for %d-%d (%d years cached)", from, to, s.cache.Len())
}
