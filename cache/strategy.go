package cache

import (
	"math"
	"sort"

	"github.com/gkindel/nano-cache/errors"
)

// ranker computes the eviction priority metric for one entry under a given
// strategy. Higher metrics survive longer; the engine always removes the
// lowest-ranked entry first.
type ranker interface {
	metric(e *entry, now int64) float64
}

// rankerFor maps a Strategy tag to its ranker. Strategies are a closed set;
// Config.Validate guarantees the tag is known before a cache is built.
func rankerFor(s Strategy) (ranker, error) {
	switch s {
	case StrategyOldestAccess:
		return oldestAccessRanker{}, nil
	case StrategyLowestRate:
		return lowestRateRanker{}, nil
	case StrategyWeighted:
		return weightedRanker{}, nil
	default:
		return nil, errors.WrapInvalid(errors.ErrUnknownStrategy, "Cache", "rankerFor", string(s))
	}
}

// hitRate is hits per millisecond since the entry was written. Deliberately
// not reset on access: the denominator is age since write, so the rate
// drifts toward zero for long-lived entries regardless of recent bursts.
// A zero age yields +Inf, which outranks every finite rate.
func hitRate(e *entry, now int64) float64 {
	age := now - e.updatedAt
	if age <= 0 {
		return math.Inf(1)
	}
	return float64(e.hits) / float64(age)
}

// oldestAccessRanker ranks by last read time: least-recently-read entries
// are evicted first.
type oldestAccessRanker struct{}

func (oldestAccessRanker) metric(e *entry, _ int64) float64 {
	return float64(e.accessedAt)
}

// lowestRateRanker ranks by raw hit rate.
type lowestRateRanker struct{}

func (lowestRateRanker) metric(e *entry, now int64) float64 {
	return hitRate(e, now)
}

// weightedRanker ranks by cost-weighted hit rate.
type weightedRanker struct{}

func (weightedRanker) metric(e *entry, now int64) float64 {
	return hitRate(e, now) * e.cost
}

// candidate pairs an entry with its protection score and strategy metric
// for one eviction pass.
type candidate struct {
	key        string
	bytes      int64
	protection float64
	metric     float64
}

// rankCandidates orders all entries by descending protection, then
// descending strategy metric. The last element is always the next eviction
// victim. Ties are broken arbitrarily.
func (c *Cache) rankCandidates(now int64) []candidate {
	protectionMs := c.cfg.Protection.Milliseconds()

	ranked := make([]candidate, 0, len(c.items))
	for _, e := range c.items {
		cand := candidate{
			key:    e.key,
			bytes:  e.bytes,
			metric: c.ranker.metric(e, now),
		}
		if protectionMs > 0 {
			// Positive only while the entry is younger than the window,
			// decaying to 0 once it is at least that old.
			if p := float64(protectionMs - (now - e.updatedAt) + 1); p > 0 {
				cand.protection = p
			}
		}
		ranked = append(ranked, cand)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].protection != ranked[j].protection {
			return ranked[i].protection > ranked[j].protection
		}
		return ranked[i].metric > ranked[j].metric
	})

	return ranked
}

// enforceBudgetLocked evicts the lowest-priority entries until the byte
// total is within budget. Expired entries are purged first so eviction never
// considers stale candidates. Protection is soft: if removing every
// unprotected entry is not enough, protected entries go too, least-protected
// first.
func (c *Cache) enforceBudgetLocked(now int64) {
	c.purgeExpiredLocked(now)

	if c.cfg.MaxBytes <= 0 || c.bytes <= c.cfg.MaxBytes {
		return
	}

	ranked := c.rankCandidates(now)
	for i := len(ranked) - 1; i >= 0 && c.bytes > c.cfg.MaxBytes; i-- {
		c.removeLocked(ranked[i].key, removeEvicted)
	}
}
