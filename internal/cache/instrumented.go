package cache

// instrumentedCache wraps a response cache with the subtitle_cache_* metrics of one
// group (the client uses "responses").
type instrumentedCache struct {
	inner Cache
	group string
}

// newInstrumentedCache also registers the subtitle_cache_entries collector for group.
// It calls inner.Len() at scrape time so entries expired by Redis are not over-counted.
func newInstrumentedCache(inner Cache, group string) *instrumentedCache {
	registerEntriesCollector(group, inner.Len)
	return &instrumentedCache{inner: inner, group: group}
}

// Get counts a hit with the size of the served response, or a miss
func (c *instrumentedCache) Get(key string) ([]byte, bool) {
	response, ok := c.inner.Get(key)
	if !ok {
		MissesTotal.WithLabelValues(c.group).Inc()
		return nil, false
	}
	HitsTotal.WithLabelValues(c.group).Inc()
	ServedBytesTotal.WithLabelValues(c.group).Add(float64(len(response)))
	return response, true
}

func (c *instrumentedCache) Set(key string, response []byte) {
	c.inner.Set(key, response)
}

func (c *instrumentedCache) Delete(key string) {
	c.inner.Delete(key)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

// Close drops the group's entries gauge before closing the provider
func (c *instrumentedCache) Close() error {
	unregisterEntriesCollector(c.group)
	return c.inner.Close()
}
