package challengeservice

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cocosforest/internal/domain"
)

const filterCacheSize = 256

type stringSet map[string]struct{}

func (s stringSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

// Filter is the compiled form of a challenge's filter_conditions: an AND of
// set-membership predicates. An empty set places no constraint on its axis.
type Filter struct {
	includeCategories stringSet
	excludeCategories stringSet
	includeMerchants  stringSet
	excludeMerchants  stringSet
}

func (f *Filter) Match(tx domain.CardTransaction) bool {
	if len(f.includeCategories) > 0 && !f.includeCategories.has(tx.Category) {
		return false
	}
	if len(f.excludeCategories) > 0 && f.excludeCategories.has(tx.Category) {
		return false
	}
	if len(f.includeMerchants) == 0 && len(f.excludeMerchants) == 0 {
		return true
	}

	// any merchant filter drops transactions without a merchant name
	name := strings.TrimSpace(tx.Merchant)
	if name == "" {
		return false
	}
	if len(f.includeMerchants) > 0 && !f.includeMerchants.has(name) {
		return false
	}
	return !f.excludeMerchants.has(name)
}

func (f *Filter) Empty() bool {
	return len(f.includeCategories)+len(f.excludeCategories)+len(f.includeMerchants)+len(f.excludeMerchants) == 0
}

// FilterCache compiles each distinct filter document once.
type FilterCache struct {
	cache *lru.Cache[string, *Filter]
}

func NewFilterCache(size int) *FilterCache {
	cache, err := lru.New[string, *Filter](size)
	if err != nil {
		// lru.New only fails for a non-positive size
		panic(err)
	}
	return &FilterCache{cache: cache}
}

func (c *FilterCache) Compile(raw string) *Filter {
	if f, ok := c.cache.Get(raw); ok {
		return f
	}
	f := parseFilter(raw)
	c.cache.Add(raw, f)
	return f
}

func parseFilter(raw string) *Filter {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return &Filter{}
	}
	if !gjson.Valid(raw) {
		zap.L().Warn("invalid challenge filter conditions, ignoring", zap.String("filter", raw))
		return &Filter{}
	}

	doc := gjson.Parse(raw)
	return &Filter{
		includeCategories: collect(doc, "includeCategories"),
		excludeCategories: collect(doc, "excludeCategories"),
		includeMerchants:  collect(doc, "include_merchants", "merchant_whitelist"),
		excludeMerchants:  collect(doc, "exclude_merchants"),
	}
}

func collect(doc gjson.Result, keys ...string) stringSet {
	set := stringSet{}
	for _, key := range keys {
		for _, v := range doc.Get(key).Array() {
			if s := strings.TrimSpace(v.String()); s != "" {
				set[s] = struct{}{}
			}
		}
	}
	return set
}
