package optimizer

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/growth-optimizer/internal/metrics"
	"github.com/yourusername/growth-optimizer/internal/models"
)

// EvaluationCache provides TTL-based in-memory caching of candidate
// evaluations, so scheduled re-runs and overlapping locator grids skip
// repeat simulations. A cached value is the first estimate computed for the
// candidate under the simulator's random stream.
type EvaluationCache struct {
	cache     *cache.Cache
	ttl       time.Duration
	mu        sync.RWMutex
	hitCount  uint64
	missCount uint64
}

// NewEvaluationCache creates an evaluation cache with the given TTL.
func NewEvaluationCache(ttl time.Duration) *EvaluationCache {
	return &EvaluationCache{
		cache: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

// evaluationKey builds a stable key from everything that determines an
// evaluation: bet parameters, simulation settings and the simulator seed.
func evaluationKey(params models.BetParameters, cfg models.SimulationConfig, seed int64) string {
	raw := fmt.Sprintf("%v:%v:%v:%v:%d:%d:%d",
		params.Odds, params.WinProbability, params.BetFraction,
		cfg.InitialCapital, cfg.Periods, cfg.Trials, seed)
	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", hash)
}

// Get retrieves a cached evaluation.
func (c *EvaluationCache) Get(params models.BetParameters, cfg models.SimulationConfig, seed int64) (Evaluation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, found := c.cache.Get(evaluationKey(params, cfg, seed)); found {
		if eval, ok := cached.(Evaluation); ok {
			c.hitCount++
			metrics.RecordCacheHit()
			return eval, true
		}
	}
	c.missCount++
	metrics.RecordCacheMiss()
	return Evaluation{}, false
}

// Set stores an evaluation.
func (c *EvaluationCache) Set(params models.BetParameters, cfg models.SimulationConfig, seed int64, eval Evaluation) {
	c.cache.Set(evaluationKey(params, cfg, seed), eval, c.ttl)
}

// Stats returns hit and miss counts.
func (c *EvaluationCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hitCount, c.missCount
}

// Clear empties the cache.
func (c *EvaluationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Flush()
	c.hitCount = 0
	c.missCount = 0
}
