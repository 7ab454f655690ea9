package challengeservice

import (
	"testing"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		tx       domain.CardTransaction
		expected bool
	}{
		{
			name:     "Empty filter matches everything",
			raw:      "",
			tx:       domain.CardTransaction{Category: "CAFE"},
			expected: true,
		},
		{
			name:     "Included category",
			raw:      `{"includeCategories": ["CAFE", "BAKERY"]}`,
			tx:       domain.CardTransaction{Category: "BAKERY"},
			expected: true,
		},
		{
			name:     "Category outside include set",
			raw:      `{"includeCategories": ["CAFE"]}`,
			tx:       domain.CardTransaction{Category: "TAXI"},
			expected: false,
		},
		{
			name:     "Excluded category",
			raw:      `{"excludeCategories": ["TAXI"]}`,
			tx:       domain.CardTransaction{Category: "TAXI"},
			expected: false,
		},
		{
			name:     "Whitelist merges with include_merchants",
			raw:      `{"include_merchants": ["Starbucks"], "merchant_whitelist": ["Ediya"]}`,
			tx:       domain.CardTransaction{Category: "CAFE", Merchant: "Ediya"},
			expected: true,
		},
		{
			name:     "Merchant filter drops unnamed merchant",
			raw:      `{"exclude_merchants": ["Starbucks"]}`,
			tx:       domain.CardTransaction{Category: "CAFE"},
			expected: false,
		},
		{
			name:     "Excluded merchant",
			raw:      `{"exclude_merchants": ["Starbucks"]}`,
			tx:       domain.CardTransaction{Merchant: "Starbucks"},
			expected: false,
		},
		{
			name:     "All axes combined with AND",
			raw:      `{"includeCategories": ["CAFE"], "include_merchants": ["Ediya"]}`,
			tx:       domain.CardTransaction{Category: "BAKERY", Merchant: "Ediya"},
			expected: false,
		},
		{
			name:     "Invalid JSON is treated as no filter",
			raw:      `{"includeCategories": [`,
			tx:       domain.CardTransaction{Category: "TAXI"},
			expected: true,
		},
	}

	cache := NewFilterCache(8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cache.Compile(tt.raw).Match(tt.tx))
		})
	}
}

func TestFilterCache_CompilesOnce(t *testing.T) {
	cache := NewFilterCache(2)
	raw := `{"includeCategories": ["CAFE"]}`

	first := cache.Compile(raw)
	second := cache.Compile(raw)

	assert.Same(t, first, second)
	assert.False(t, first.Empty())
	assert.True(t, cache.Compile("null").Empty())
}
