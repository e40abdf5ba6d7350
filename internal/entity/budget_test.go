package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		value    string
		amount   string
		currency string
		ok       bool
	}{
		{"$50", "50", "USD", true},
		{"100 dollars", "100", "USD", true},
		{"2000 rupees", "2000", "LKR", true},
		{"under 75.50", "75.5", "USD", true},
		{"cheap", "", "", false},
		{"luxury", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			b, ok := ParseBudget(tt.value)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			want, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			assert.True(t, b.Amount.Equal(want), "got %s", b.Amount)
			assert.Equal(t, tt.currency, b.Currency)
		})
	}
}

func TestIsLowBudget(t *testing.T) {
	assert.True(t, IsLowBudget("cheap"))
	assert.True(t, IsLowBudget("budget friendly"))
	assert.True(t, IsLowBudget("$30"))
	assert.True(t, IsLowBudget("10000 rupees"))

	assert.False(t, IsLowBudget("$200"))
	assert.False(t, IsLowBudget("20000 rupees"))
	assert.False(t, IsLowBudget("luxury"))
}
