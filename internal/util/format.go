package util //nolint:revive // package name util hosts shared formatting helpers used across HTTP templates

import (
	"math"
	"strconv"
)

// Indian-numbering thresholds used by CompactNumber.
const (
	crore    = 1e7
	lakh     = 1e5
	thousand = 1e3
)

// CompactNumber renders v with a K / Lakh / Cr suffix, at most two decimals and
// no trailing zeros. Zero, NaN and infinities render as "0".
//
//	CompactNumber(1000)     == "1K"
//	CompactNumber(150000)   == "1.5 Lakh"
//	CompactNumber(-2.5e7)   == "-2.5 Cr"
func CompactNumber(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(v)

	var scaled float64
	var suffix string
	switch {
	case abs >= crore:
		scaled, suffix = abs/crore, " Cr"
	case abs >= lakh:
		scaled, suffix = abs/lakh, " Lakh"
	case abs >= thousand:
		scaled, suffix = abs/thousand, "K"
	default:
		scaled = abs
	}

	return sign + trimFloat(scaled, 2) + suffix
}

// Currency prefixes CompactNumber with the rupee sign.
func Currency(v float64) string {
	return "₹" + CompactNumber(v)
}

// Percent formats v with a fixed number of decimals followed by "%".
func Percent(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64) + "%"
}

// trimFloat rounds to the given number of decimals and drops trailing zeros.
func trimFloat(v float64, decimals int) string {
	fixed := strconv.FormatFloat(v, 'f', decimals, 64)
	rounded, err := strconv.ParseFloat(fixed, 64)
	if err != nil {
		return fixed
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
