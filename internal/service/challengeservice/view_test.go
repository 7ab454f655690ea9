package challengeservice

import (
	"testing"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRule(t *testing.T) {
	tests := []struct {
		name      string
		challenge domain.Challenge
		expected  string
	}{
		{
			name:      "Amount budget",
			challenge: domain.Challenge{MetricType: domain.MetricAmount, Comparator: domain.AtMost, Threshold: decimal.NewFromInt(5000)},
			expected:  "Goal: AMOUNT ≤ 5,000 KRW",
		},
		{
			name:      "Step target",
			challenge: domain.Challenge{MetricType: domain.MetricSteps, Comparator: domain.AtLeast, Threshold: decimal.NewFromInt(10000)},
			expected:  "Goal: STEPS ≥ 10,000 steps",
		},
		{
			name:      "Fractional emission",
			challenge: domain.Challenge{MetricType: domain.MetricEmission, Comparator: domain.AtMost, Threshold: decimal.RequireFromString("7.5")},
			expected:  "Goal: EMISSION ≤ 7.50 kg",
		},
		{
			name:      "Attendance",
			challenge: domain.Challenge{MetricType: domain.MetricAttendance},
			expected:  "Goal: check in today",
		},
		{
			name:      "Misconfigured",
			challenge: domain.Challenge{MetricType: domain.MetricAmount},
			expected:  "Goal: not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Rule(&tt.challenge))
		})
	}
}

func TestMessage(t *testing.T) {
	budget := &domain.Challenge{MetricType: domain.MetricAmount, Comparator: domain.AtMost, Threshold: decimal.NewFromInt(5000)}
	walk := &domain.Challenge{MetricType: domain.MetricSteps, Comparator: domain.AtLeast, Threshold: decimal.NewFromInt(5000)}

	assert.Equal(t, msgAchieved, Message(budget, domain.StatusDone, decimal.NewFromInt(3000)))
	assert.Equal(t, "Almost there! 2,000 KRW left", Message(budget, domain.StatusPending, decimal.NewFromInt(3000)))
	assert.Equal(t, msgTryIt, Message(budget, domain.StatusPending, decimal.NewFromInt(6000)))
	assert.Equal(t, "1,000 steps to go", Message(walk, domain.StatusPending, decimal.NewFromInt(4000)))
	assert.Equal(t, msgFailed, Message(walk, domain.StatusFail, decimal.NewFromInt(4000)))
}
