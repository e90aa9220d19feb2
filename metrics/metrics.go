package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var namespace = "alpaca"
var subsystem = "bizday"

// Setter is an interface for prometheus gauges to improve unit-testability.
type Setter interface {
	Set(m float64)
}

// Incrementer is an interface for prometheus counters to improve unit-testability.
type Incrementer interface {
	Inc()
}

// Observer is an interface for prometheus histograms to improve unit-testability.
type Observer interface {
	Observe(v float64)
}

var (
	// HolidayCacheHitsTotal stores the number of holiday set lookups
	// answered from the yearly cache
	HolidayCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "holiday_cache_hits_total",
		Help:      "Number of holiday set lookups answered from the yearly cache",
	})

	// HolidayCacheMissesTotal stores the number of holiday set lookups
	// that had to build the year
	HolidayCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "holiday_cache_misses_total",
		Help:      "Number of holiday set lookups that built a new year",
	})

	// HolidayBuildDuration stores the time taken to build one year
	HolidayBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "holiday_build_duration_seconds",
		Help:      "Time taken to build the holiday set of one year",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	})

	// HolidayCachedYears stores the number of years held by the cache
	HolidayCachedYears = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "holiday_cached_years",
			Help:      "Number of years whose holiday set is cached",
		},
	)

	// LeaveValidationsTotal stores the number of leave request validations
	// partitioned by outcome
	LeaveValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "leave_validations_total",
		Help:      "Number of leave request validations partitioned by outcome",
	}, []string{"outcome"})
)
