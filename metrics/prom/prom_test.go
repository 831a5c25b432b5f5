package prom

import (
	"testing"

	"github.com/evictcache/evictcache/metrics"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestAdapter_HitMissEvictSize(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := New(reg, "evictcache", "test", nil)

	a.Hit()
	a.Hit()
	a.Miss()
	a.Evict(metrics.EvictPolicy)
	a.Evict(metrics.EvictRejected)
	a.Size(42)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	values := map[string]float64{}
	labeled := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			switch mf.GetName() {
			case "evictcache_test_hits_total":
				values["hits"] = counterOrGauge(m)
			case "evictcache_test_misses_total":
				values["misses"] = counterOrGauge(m)
			case "evictcache_test_size_entries":
				values["size"] = counterOrGauge(m)
			case "evictcache_test_evictions_total":
				labeled[labelValue(m, "reason")] = counterOrGauge(m)
			}
		}
	}

	if values["hits"] != 2 {
		t.Fatalf("hits_total = %v, want 2", values["hits"])
	}
	if values["misses"] != 1 {
		t.Fatalf("misses_total = %v, want 1", values["misses"])
	}
	if values["size"] != 42 {
		t.Fatalf("size_entries = %v, want 42", values["size"])
	}
	if labeled["policy"] != 1 {
		t.Fatalf("evictions_total{reason=policy} = %v, want 1", labeled["policy"])
	}
	if labeled["rejected"] != 1 {
		t.Fatalf("evictions_total{reason=rejected} = %v, want 1", labeled["rejected"])
	}
}

func counterOrGauge(m *dto.Metric) float64 {
	if c := m.GetCounter(); c != nil {
		return c.GetValue()
	}
	return m.GetGauge().GetValue()
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
