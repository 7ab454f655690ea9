package challengeservice

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/GlebRadaev/cocosforest/internal/domain"
)

const (
	msgAchieved = "Goal achieved today!"
	msgTryIt    = "Give it a try"
	msgFailed   = "Better luck tomorrow"
)

var printer = message.NewPrinter(language.English)

var units = map[domain.MetricType]string{
	domain.MetricAmount:   " KRW",
	domain.MetricSteps:    " steps",
	domain.MetricEmission: " kg",
}

// Rule renders the goal of a challenge, e.g. "Goal: AMOUNT ≤ 5,000 KRW".
func Rule(c *domain.Challenge) string {
	switch {
	case c.Verification == domain.VerificationReceipt:
		return "Goal: upload a matching receipt"
	case c.MetricType == domain.MetricAttendance:
		return "Goal: check in today"
	case c.Misconfigured():
		return "Goal: not configured"
	}
	return fmt.Sprintf("Goal: %s %s %s%s", c.MetricType, c.Comparator.Symbol(), formatNumber(c.Threshold), units[c.MetricType])
}

// Message gives progress guidance for the current status.
func Message(c *domain.Challenge, status domain.ChallengeStatus, value decimal.Decimal) string {
	switch status {
	case domain.StatusDone:
		return msgAchieved
	case domain.StatusFail:
		return msgFailed
	}

	remaining := c.Threshold.Sub(value)
	switch {
	case c.MetricType == domain.MetricAmount && c.Comparator == domain.AtMost && remaining.IsPositive():
		return printer.Sprintf("Almost there! %d KRW left", remaining.IntPart())
	case c.MetricType == domain.MetricSteps && c.Comparator == domain.AtLeast && remaining.IsPositive():
		return printer.Sprintf("%d steps to go", remaining.IntPart())
	}
	return msgTryIt
}

func formatNumber(d decimal.Decimal) string {
	if d.IsInteger() {
		return printer.Sprintf("%d", d.IntPart())
	}
	return printer.Sprintf("%.2f", d.InexactFloat64())
}
