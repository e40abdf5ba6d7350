package entity

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var amountRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Budget is the normalized form of a budget entity value.
type Budget struct {
	Amount   decimal.Decimal
	Currency string // "USD" or "LKR"; empty for qualitative values
}

// ParseBudget normalizes a budget entity value such as "$50", "2000 rupees"
// or "under 100" into an amount and currency. Qualitative values ("cheap",
// "luxury") carry no amount and return false.
func ParseBudget(value string) (Budget, bool) {
	raw := amountRe.FindString(value)
	if raw == "" {
		return Budget{}, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Budget{}, false
	}

	currency := "USD"
	if strings.Contains(value, "rupees") || strings.Contains(value, "lkr") {
		currency = "LKR"
	}
	return Budget{Amount: amount, Currency: currency}, true
}

// IsLowBudget reports whether the value signals a budget-conscious traveller,
// either qualitatively or by amount (under 50 USD / 15,000 LKR per night).
func IsLowBudget(value string) bool {
	switch {
	case strings.Contains(value, "cheap"), strings.Contains(value, "budget"),
		strings.Contains(value, "affordable"):
		return true
	}
	b, ok := ParseBudget(value)
	if !ok {
		return false
	}
	limit := decimal.NewFromInt(50)
	if b.Currency == "LKR" {
		limit = decimal.NewFromInt(15000)
	}
	return b.Amount.LessThanOrEqual(limit)
}
