package cache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Response cache metrics, labelled by the Group of each cache instance.
var (
	// HitsTotal counts lookups answered from the cache.
	HitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subtitle_cache_hits_total",
			Help: "Total number of response cache hits.",
		},
		[]string{"cache"},
	)

	// MissesTotal counts lookups that had to go to the backend.
	MissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subtitle_cache_misses_total",
			Help: "Total number of response cache misses.",
		},
		[]string{"cache"},
	)

	// EvictionsTotal counts entries dropped for capacity, expiry or deletion.
	EvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subtitle_cache_evictions_total",
			Help: "Total number of entries evicted from the response cache.",
		},
		[]string{"cache"},
	)

	// ServedBytesTotal sums the size of responses answered from the cache.
	ServedBytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subtitle_cache_served_bytes_total",
			Help: "Total size of responses served from the response cache.",
		},
		[]string{"cache"},
	)
)

func init() {
	prometheus.MustRegister(
		HitsTotal,
		MissesTotal,
		EvictionsTotal,
		ServedBytesTotal,
	)
}

// cacheEntriesCollector reports the entry count of one group by calling lenFunc at scrape time.
type cacheEntriesCollector struct {
	desc    *prometheus.Desc
	lenFunc func() int
}

func (c *cacheEntriesCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *cacheEntriesCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(c.lenFunc()))
}

var (
	entriesCollectorMu sync.Mutex
	entriesCollectors  = make(map[string]*cacheEntriesCollector)
	// entriesReg is swapped for an isolated registry in tests.
	entriesReg prometheus.Registerer = prometheus.DefaultRegisterer
)

// registerEntriesCollector registers the collector for group, replacing a previous one.
func registerEntriesCollector(group string, lenFunc func() int) *cacheEntriesCollector {
	desc := prometheus.NewDesc(
		"subtitle_cache_entries",
		"Current number of entries in the response cache.",
		nil,
		prometheus.Labels{"cache": group},
	)
	c := &cacheEntriesCollector{desc: desc, lenFunc: lenFunc}

	entriesCollectorMu.Lock()
	defer entriesCollectorMu.Unlock()

	if old, ok := entriesCollectors[group]; ok {
		entriesReg.Unregister(old)
	}
	entriesCollectors[group] = c
	_ = entriesReg.Register(c)
	return c
}

func unregisterEntriesCollector(group string) {
	entriesCollectorMu.Lock()
	defer entriesCollectorMu.Unlock()

	if c, ok := entriesCollectors[group]; ok {
		entriesReg.Unregister(c)
		delete(entriesCollectors, group)
	}
}
