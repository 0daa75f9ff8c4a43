package tetra

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

// CacheConfig configures a Cache. The teacher never reaches for a
// functional-options pattern anywhere in its own tree, so this stays
// a plain struct passed by value, matching its minimalism.
type CacheConfig struct {
	// Shards is the number of independent shards the cache is split
	// into, each with its own lock and singleflight group.
	Shards int
	// CapacityPerShard bounds the number of entries kept per shard;
	// once exceeded, an arbitrary existing entry is evicted to make
	// room. Eviction is always safe: every cached value is derivable
	// on demand from the tet it was computed for.
	CapacityPerShard int
	// Registerer receives the cache's hit/miss/eviction counters. A
	// nil Registerer disables metrics registration.
	Registerer prometheus.Registerer
}

// DefaultCacheConfig returns a reasonably sized configuration for a
// single process's working set.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Shards: 16, CapacityPerShard: 4096}
}

type tetIdent struct {
	x, y, z int64
	level   int
	typ     int
}

func identOf(t Tet) tetIdent { return tetIdent{t.x, t.y, t.z, t.level, t.typ} }

type cacheEntry struct {
	mu sync.Mutex

	haveKey bool
	key     Key

	haveParent bool
	parent     Tet
	parentErr  error

	haveChain bool
	chain     []int // types from this tet up to root, index 0 = root

	computeType map[int]int
}

type cacheShard struct {
	mu        sync.RWMutex
	entries   map[tetIdent]*cacheEntry
	capacity  int
	evictions prometheus.Counter
}

func (s *cacheShard) get(id tetIdent) *cacheEntry {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok {
		return e
	}
	if len(s.entries) >= s.capacity {
		for k := range s.entries {
			delete(s.entries, k)
			s.evictions.Inc()
			break
		}
	}
	e = &cacheEntry{}
	s.entries[id] = e
	return e
}

// Cache memoizes per-tet derived data: TM-keys, parent tets, parent
// types, parent chains, and compute_type(level) answers, plus the
// level implied by a previously-seen raw consecutive index. It is
// safe for concurrent use: reads and inserts may race freely, entries
// are write-once per key (a racing insert of the same value is
// harmless), and any entry may be evicted at any time because every
// value it holds is cheaply recomputed from its tet.
type Cache struct {
	shards  []*cacheShard
	group   singleflight.Group
	metrics *cacheMetrics

	indexMu     sync.RWMutex
	indexLevels map[uint64]int
}

type cacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
}

func newCacheMetrics(reg prometheus.Registerer) *cacheMetrics {
	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tetra_cache_hits_total",
			Help: "Level cache lookups served from an existing entry.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tetra_cache_misses_total",
			Help: "Level cache lookups that computed and stored a new entry.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tetra_cache_evictions_total",
			Help: "Level cache entries evicted to stay within shard capacity.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.hits, m.misses, m.evictions)
	}
	return m
}

// NewCache constructs a Cache from cfg.
func NewCache(cfg CacheConfig) *Cache {
	if cfg.Shards <= 0 {
		cfg.Shards = 1
	}
	if cfg.CapacityPerShard <= 0 {
		cfg.CapacityPerShard = 1024
	}
	c := &Cache{
		shards:      make([]*cacheShard, cfg.Shards),
		metrics:     newCacheMetrics(cfg.Registerer),
		indexLevels: make(map[uint64]int),
	}
	for i := range c.shards {
		c.shards[i] = &cacheShard{
			entries:   make(map[tetIdent]*cacheEntry),
			capacity:  cfg.CapacityPerShard,
			evictions: c.metrics.evictions,
		}
	}
	return c
}

func (c *Cache) shardFor(id tetIdent) *cacheShard {
	h := uint64(id.x)*1000003 + uint64(id.y)*9176 + uint64(id.z)*31 + uint64(id.level)*7 + uint64(id.typ)
	return c.shards[h%uint64(len(c.shards))]
}

// Key returns t.ToKey(), computing and caching it on first request.
func (c *Cache) Key(t Tet) Key {
	id := identOf(t)
	e := c.shardFor(id).get(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.haveKey {
		c.metrics.hits.Inc()
		return e.key
	}
	c.metrics.misses.Inc()
	e.key = t.ToKey()
	e.haveKey = true
	return e.key
}

// Parent returns t.Parent(), computing and caching it (including the
// NoParent error for the root) on first request.
func (c *Cache) Parent(t Tet) (Tet, error) {
	id := identOf(t)
	e := c.shardFor(id).get(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.haveParent {
		c.metrics.hits.Inc()
		return e.parent, e.parentErr
	}
	c.metrics.misses.Inc()
	e.parent, e.parentErr = t.Parent()
	e.haveParent = true
	return e.parent, e.parentErr
}

// ParentType returns the type of t's parent, or t's own type at the root.
func (c *Cache) ParentType(t Tet) int {
	p, err := c.Parent(t)
	if err != nil {
		return t.typ
	}
	return p.typ
}

// ParentChain returns the types from the root (index 0) down to t
// (index t.Level()), computing it via singleflight so concurrent
// misses for the same tet collapse into one walk.
func (c *Cache) ParentChain(t Tet) []int {
	id := identOf(t)
	e := c.shardFor(id).get(id)

	e.mu.Lock()
	if e.haveChain {
		e.mu.Unlock()
		c.metrics.hits.Inc()
		return e.chain
	}
	e.mu.Unlock()
	c.metrics.misses.Inc()

	key := chainKey(id)
	v, _, _ := c.group.Do(key, func() (any, error) {
		chain := typesAlongPath(t.x, t.y, t.z, t.level)
		e.mu.Lock()
		e.chain = chain
		e.haveChain = true
		e.mu.Unlock()
		return chain, nil
	})
	return v.([]int)
}

// ComputeType returns t.ComputeType(level), caching per (t, level).
func (c *Cache) ComputeType(t Tet, level int) int {
	id := identOf(t)
	e := c.shardFor(id).get(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.computeType == nil {
		e.computeType = make(map[int]int)
	}
	if v, ok := e.computeType[level]; ok {
		c.metrics.hits.Inc()
		return v
	}
	c.metrics.misses.Inc()
	v := t.ComputeType(level)
	e.computeType[level] = v
	return v
}

// RegisterIndexLevel associates a raw consecutive-index value with the
// level it was produced at, so a later LevelFromIndex can recover it.
// The consecutive index does not carry its own level (unlike the
// TM-key), so this association must be learned rather than derived.
func (c *Cache) RegisterIndexLevel(index uint64, level int) {
	c.indexMu.Lock()
	c.indexLevels[index] = level
	c.indexMu.Unlock()
}

// LevelFromIndex returns the level previously registered for index,
// if any.
func (c *Cache) LevelFromIndex(index uint64) (int, bool) {
	c.indexMu.RLock()
	defer c.indexMu.RUnlock()
	level, ok := c.indexLevels[index]
	return level, ok
}

func chainKey(id tetIdent) string {
	var b [40]byte
	n := 0
	n += putInt(b[n:], id.x)
	b[n] = ','
	n++
	n += putInt(b[n:], id.y)
	b[n] = ','
	n++
	n += putInt(b[n:], id.z)
	b[n] = ','
	n++
	n += putInt(b[n:], int64(id.level))
	return string(b[:n])
}

func putInt(b []byte, v int64) int {
	if v == 0 {
		b[0] = '0'
		return 1
	}
	n := 0
	neg := v < 0
	if neg {
		v = -v
	}
	start := n
	for v > 0 {
		b[n] = byte('0' + v%10)
		v /= 10
		n++
	}
	if neg {
		b[n] = '-'
		n++
	}
	for i, j := start, n-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return n
}
