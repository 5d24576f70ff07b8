package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1265793.04, "$1,265,793.04"},
		{1500, "$1,500"},
		{0, "$0"},
		{12.5, "$12.5"},
		{1.999, "$2"},
		{-12.5, "-$12.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in), "%v", tt.in)
	}
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "$1.3M", CompactCurrency(1265793.04))
	assert.Equal(t, "$64.9K", CompactCurrency(64942.69))
	assert.Equal(t, "$950", CompactCurrency(950))
	assert.Equal(t, "2.5M", CompactNumber(2_500_000))
	assert.Equal(t, "830", CompactNumber(830))
	assert.Equal(t, "-1.5M", CompactNumber(-1_500_000))
	assert.Equal(t, "-$5.0K", CompactCurrency(-5000))
	assert.Equal(t, "-$950", CompactCurrency(-950))
	assert.Equal(t, "0", CompactNumber(-0.4))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", Number(1234567))
	assert.Equal(t, "92.2", Number(92.2))
	assert.Equal(t, "0.125", Number(0.125))
}

func TestPercentAndDecimal(t *testing.T) {
	assert.Equal(t, "75.0%", Percent(75, 1))
	assert.Equal(t, "8.49", Decimal(8.49, 2))
	assert.Equal(t, "8", Decimal(8.2, 0))
}
