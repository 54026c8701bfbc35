package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "zero", in: 0, want: "0"},
		{name: "nan", in: math.NaN(), want: "0"},
		{name: "infinity", in: math.Inf(1), want: "0"},
		{name: "small integer", in: 999, want: "999"},
		{name: "small fraction", in: 12.345678, want: "12.35"},
		{name: "one thousand", in: 1000, want: "1K"},
		{name: "thousands with decimals", in: 1234, want: "1.23K"},
		{name: "thousands trailing zero", in: 1500, want: "1.5K"},
		{name: "just below lakh", in: 99999, want: "100K"},
		{name: "one lakh", in: 100000, want: "1 Lakh"},
		{name: "lakhs", in: 250000, want: "2.5 Lakh"},
		{name: "one crore", in: 10000000, want: "1 Cr"},
		{name: "crores", in: 123456789, want: "12.35 Cr"},
		{name: "negative thousand", in: -1000, want: "-1K"},
		{name: "negative lakh", in: -150000, want: "-1.5 Lakh"},
		{name: "negative small", in: -42, want: "-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompactNumber(tt.in))
		})
	}
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "₹1K", Currency(1000))
	assert.Equal(t, "₹0", Currency(0))
	assert.Equal(t, "₹-2 Lakh", Currency(-200000))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.3%", Percent(12.345, 1))
	assert.Equal(t, "-5.0%", Percent(-5, 1))
	assert.Equal(t, "50%", Percent(49.6, 0))
	assert.Equal(t, "0%", Percent(math.NaN(), -1))
}
