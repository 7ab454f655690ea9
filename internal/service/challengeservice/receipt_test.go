package challengeservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeReceipt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"Business number", "스타벅스 강남점 123-45-67890", true},
		{"Markers with amount", "영수증\n카드 승인\n합계 4,500원", true},
		{"Markers with plain amount", "매출전표 부가세 12000", true},
		{"Single marker", "영수증 4,500원", false},
		{"Markers without amount", "영수증 카드 승인", false},
		{"Blank", "   ", false},
		{"Random text", "hello world", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LooksLikeReceipt(tt.text))
		})
	}
}

func TestContainsReusableCup(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"Tumbler", "아메리카노 텀블러 할인", true},
		{"Spaced keyword", "개인 컵 사용", true},
		{"Split over lines", "개인\n컵", true},
		{"Store mug", "매장컵", true},
		{"Disposable", "일회용컵", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsReusableCup(tt.text))
		})
	}
}
