package cache

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getCounterVecValue(cv *prometheus.CounterVec, label string) float64 {
	c, err := cv.GetMetricWithLabelValues(label)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func newInstrumentedTestCache(t *testing.T, group string) Cache {
	t.Helper()
	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour, Group: group})
	if err != nil {
		t.Fatalf("New instrumented cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestInstrumentedCache_HitsAndMisses(t *testing.T) {
	c := newInstrumentedTestCache(t, "test-hits-misses")

	hitsBefore := getCounterVecValue(HitsTotal, "test-hits-misses")
	missesBefore := getCounterVecValue(MissesTotal, "test-hits-misses")

	c.Set("k", []byte("v"))
	_, _ = c.Get("k")
	_, _ = c.Get("absent")

	if diff := getCounterVecValue(HitsTotal, "test-hits-misses") - hitsBefore; diff != 1 {
		t.Errorf("Expected hits to increment by 1, got diff %.0f", diff)
	}
	if diff := getCounterVecValue(MissesTotal, "test-hits-misses") - missesBefore; diff != 1 {
		t.Errorf("Expected misses to increment by 1, got diff %.0f", diff)
	}
}

func TestInstrumentedCache_ServedBytes(t *testing.T) {
	c := newInstrumentedTestCache(t, "test-served-bytes")

	before := getCounterVecValue(ServedBytesTotal, "test-served-bytes")

	c.Set("abc123|auto|txt", []byte("0123456789"))
	_, _ = c.Get("abc123|auto|txt")
	_, _ = c.Get("absent")

	if diff := getCounterVecValue(ServedBytesTotal, "test-served-bytes") - before; diff != 10 {
		t.Errorf("Expected served bytes to grow by 10, got diff %.0f", diff)
	}
}

func TestInstrumentedCache_Evictions(t *testing.T) {
	evicted := make([]string, 0)
	c, err := New("memory", ProviderConfig{
		Size:    2,
		TTL:     time.Hour,
		Group:   "test-evict",
		OnEvict: func(key string, _ []byte) { evicted = append(evicted, key) },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	before := getCounterVecValue(EvictionsTotal, "test-evict")

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Set("c", []byte("3")) // evicts "a"

	if diff := getCounterVecValue(EvictionsTotal, "test-evict") - before; diff != 1 {
		t.Errorf("Expected evictions to increment by 1, got diff %.0f", diff)
	}
	if len(evicted) != 1 || evicted[0] != "a" {
		t.Errorf("Expected original OnEvict to fire for key 'a', got %v", evicted)
	}
}

func TestInstrumentedCache_EntriesLazy(t *testing.T) {
	reg := prometheus.NewRegistry()
	origReg := entriesReg
	entriesReg = reg
	t.Cleanup(func() { entriesReg = origReg })

	c := newInstrumentedTestCache(t, "test-entries")

	gatherEntries := func() float64 {
		mfs, _ := reg.Gather()
		for _, mf := range mfs {
			if mf.GetName() != "subtitle_cache_entries" {
				continue
			}
			for _, m := range mf.GetMetric() {
				for _, lp := range m.GetLabel() {
					if lp.GetName() == "cache" && lp.GetValue() == "test-entries" {
						return m.GetGauge().GetValue()
					}
				}
			}
		}
		return -1
	}

	if v := gatherEntries(); v != 0 {
		t.Fatalf("Expected 0 entries before Set, got %.0f", v)
	}

	c.Set("x", []byte("1"))
	c.Set("y", []byte("2"))
	if v := gatherEntries(); v != 2 {
		t.Errorf("Expected 2 entries after two Sets, got %.0f", v)
	}
}

func TestInstrumentedCache_Close_UnregistersEntries(t *testing.T) {
	reg := prometheus.NewRegistry()
	origReg := entriesReg
	entriesReg = reg
	t.Cleanup(func() { entriesReg = origReg })

	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour, Group: "test-close"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	entriesCollectorMu.Lock()
	_, registered := entriesCollectors["test-close"]
	entriesCollectorMu.Unlock()
	if !registered {
		t.Fatal("Expected entries collector to be registered after New()")
	}

	_ = c.Close()

	entriesCollectorMu.Lock()
	_, registered = entriesCollectors["test-close"]
	entriesCollectorMu.Unlock()
	if registered {
		t.Fatal("Expected entries collector to be unregistered after Close()")
	}
}
