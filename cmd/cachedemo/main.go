// Command cachedemo replays a traffic log (spec §6) through one of the five
// eviction engines, or its sharded wrapper, and reports a hit/miss/eviction
// summary — grounded on the teacher's cmd/bench/main.go workload-and-report
// structure, adapted from a synthetic Zipf generator to a recorded log.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/evictcache/evictcache/config"
	"github.com/evictcache/evictcache/gdsf"
	"github.com/evictcache/evictcache/lfu"
	"github.com/evictcache/evictcache/lfuda"
	"github.com/evictcache/evictcache/lru"
	"github.com/evictcache/evictcache/metrics"
	"github.com/evictcache/evictcache/slru"
	"github.com/evictcache/evictcache/trafficlog"
)

func main() {
	var (
		policy    = flag.String("policy", "lru", "eviction policy: lru | slru | lfu | lfuda | gdsf")
		capacity  = flag.Int("cap", 10_000, "cache capacity (entries)")
		protected = flag.Int("protected-cap", 0, "SLRU protected-segment capacity (0 = cap/5)")
		maxSize   = flag.Uint64("max-size", 0, "GDSF max resident content size in bytes (0 = unbounded)")
		segments  = flag.Int("segments", 0, "shard count for --sharded (0 = auto)")
		sharded   = flag.Bool("sharded", false, "use the concurrent sharded wrapper (slru, lfu, gdsf only)")
		traffic   = flag.String("traffic", "", "path to a traffic-log file (required, see spec §6)")
	)
	flag.Parse()

	if *traffic == "" {
		log.Fatal("cachedemo: -traffic is required")
	}
	f, err := os.Open(*traffic)
	if err != nil {
		log.Fatalf("cachedemo: %v", err)
	}
	defer f.Close()

	records, err := trafficlog.ReadRecords(f)
	if err != nil {
		log.Fatalf("cachedemo: reading traffic log: %v", err)
	}

	hooks := &countingHooks{}
	start := time.Now()

	if err := run(*policy, *capacity, *protected, *maxSize, *segments, *sharded, records, hooks); err != nil {
		log.Fatalf("cachedemo: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("policy=%s cap=%d sharded=%v segments=%d records=%d dur=%v\n",
		*policy, *capacity, *sharded, *segments, len(records), elapsed)
	fmt.Printf("hits=%d misses=%d evictions=%d hit-rate=%.2f%%\n",
		hooks.hits, hooks.misses, hooks.evictions, hitRate(hooks.hits, hooks.misses))
}

func hitRate(hits, misses uint64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}

// countingHooks implements metrics.Hooks by tallying totals for the
// end-of-run summary; it does not distinguish per-shard counts (the sharded
// wrappers' own Stats/ShardStats methods cover that case).
type countingHooks struct {
	hits, misses, evictions uint64
}

func (h *countingHooks) Hit()                      { h.hits++ }
func (h *countingHooks) Miss()                     { h.misses++ }
func (h *countingHooks) Evict(metrics.EvictReason) { h.evictions++ }
func (h *countingHooks) Size(int)                  {}

func run(policy string, capacity, protectedCap int, maxSize uint64, segments int, useSharded bool, records []trafficlog.Record, hooks *countingHooks) error {
	switch policy {
	case "lru":
		if useSharded {
			return fmt.Errorf("lru has no sharded wrapper (spec §4.1)")
		}
		e := lru.New[string, string](config.NewLRU(capacity))
		replay(records, func(key string) (ok bool) {
			if _, ok = e.Get(key); !ok {
				e.Put(key, key)
			}
			return ok
		}, hooks)

	case "slru":
		pc := protectedCap
		if pc == 0 {
			pc = capacity / 5
		}
		if useSharded {
			cfg := config.NewConcurrentSLRU(capacity, pc)
			if segments > 0 {
				cfg = cfg.WithSegments(segments)
			}
			s := slru.NewSharded[string, string](cfg, hooks)
			replay(records, func(key string) bool {
				v, ok, err := s.Get(key)
				must(err)
				if !ok {
					_, _, err := s.Put(key, key)
					must(err)
				}
				_ = v
				return ok
			}, nil)
		} else {
			e := slru.New[string, string](config.NewSLRU(capacity, pc))
			replay(records, func(key string) (ok bool) {
				if _, ok = e.Get(key); !ok {
					e.Put(key, key)
				}
				return ok
			}, hooks)
		}

	case "lfu":
		if useSharded {
			cfg := config.NewConcurrentLFU(capacity)
			if segments > 0 {
				cfg = cfg.WithSegments(segments)
			}
			s := lfu.NewSharded[string, string](cfg, hooks)
			replay(records, func(key string) bool {
				v, ok, err := s.Get(key)
				must(err)
				if !ok {
					_, _, err := s.Put(key, key)
					must(err)
				}
				_ = v
				return ok
			}, nil)
		} else {
			e := lfu.New[string, string](config.NewLFU(capacity))
			replay(records, func(key string) (ok bool) {
				if _, ok = e.Get(key); !ok {
					e.Put(key, key)
				}
				return ok
			}, hooks)
		}

	case "lfuda":
		if useSharded {
			return fmt.Errorf("lfuda has no sharded wrapper (spec §4.4)")
		}
		e := lfuda.New[string, string](config.NewLFUDA(capacity))
		replay(records, func(key string) (ok bool) {
			if _, ok = e.Get(key); !ok {
				e.Put(key, key)
			}
			return ok
		}, hooks)

	case "gdsf":
		if useSharded {
			cfg := config.NewConcurrentGDSF(capacity).WithMaxSize(orUnbounded(maxSize))
			if segments > 0 {
				cfg = cfg.WithSegments(segments)
			}
			s := gdsf.NewSharded[string, string](cfg, hooks)
			replayGDSF(records, func(key string, size uint64) bool {
				v, ok, err := s.Get(key)
				must(err)
				if !ok {
					_, _, err := s.Put(key, key, size)
					must(err)
				}
				_ = v
				return ok
			})
		} else {
			gcfg := config.NewGDSF(capacity).WithMaxSize(orUnbounded(maxSize))
			e := gdsf.New[string, string](gcfg)
			replayGDSF(records, func(key string, size uint64) bool {
				if _, ok := e.Get(key); ok {
					hooks.Hit()
					return true
				}
				hooks.Miss()
				evicted, _ := e.Put(key, key, size)
				hooks.evictions += uint64(len(evicted))
				return false
			})
		}

	default:
		return fmt.Errorf("unknown policy %q (use lru, slru, lfu, lfuda, or gdsf)", policy)
	}
	return nil
}

func orUnbounded(v uint64) uint64 {
	if v == 0 {
		return math.MaxUint64
	}
	return v
}

// replay feeds every record's object ID through access, which returns
// whether it was already resident. hooks, when non-nil, is filled in
// directly (unsharded engines don't run their own Hooks callbacks today);
// sharded wrappers already drive hooks themselves via their own hit/miss
// calls, so replay's caller passes nil hooks in that branch.
func replay(records []trafficlog.Record, access func(key string) bool, hooks *countingHooks) {
	for _, r := range records {
		key := strconv.FormatInt(r.ObjectID, 10)
		hit := access(key)
		if hooks != nil {
			if hit {
				hooks.hits++
			} else {
				hooks.misses++
			}
		}
	}
}

func replayGDSF(records []trafficlog.Record, access func(key string, size uint64) bool) {
	for _, r := range records {
		key := strconv.FormatInt(r.ObjectID, 10)
		size := uint64(r.SizeBytes)
		access(key, size)
	}
}

func must(err error) {
	if err != nil {
		log.Fatalf("cachedemo: %v", err)
	}
}
