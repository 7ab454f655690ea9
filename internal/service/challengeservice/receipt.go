package challengeservice

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	businessNumberRe = regexp.MustCompile(`\b\d{3}-\d{2}-\d{5}\b`)
	amountRe         = regexp.MustCompile(`\b(\d{1,3}(,\d{3})+|\d{4,})\s*(원)?`)

	receiptMarkers = []string{
		"영수증", "매출전표", "고객용", "가맹점", "사업자",
		"승인", "승인번호", "카드", "금액", "부가세",
	}

	reusableCupKeywords = []string{"개인컵", "텀블러", "머그컵", "매장컵"}
)

// LooksLikeReceipt accepts OCR text that carries a business registration
// number, or at least two receipt markers together with an amount.
func LooksLikeReceipt(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if businessNumberRe.MatchString(text) {
		return true
	}

	markers := 0
	for _, m := range receiptMarkers {
		if strings.Contains(text, m) {
			markers++
		}
	}
	return markers >= 2 && amountRe.MatchString(text)
}

// ContainsReusableCup matches the cup keywords ignoring case and whitespace,
// so "개인 컵" and "개인컵" are the same.
func ContainsReusableCup(text string) bool {
	normalized := normalize(text)
	for _, kw := range reusableCupKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

func normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, text)
}
