// Package format renders analytics figures for display.
package format

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Currency formats v as US dollars with thousands separators and at most two
// fraction digits: 1265793.04 -> "$1,265,793.04", 1500 -> "$1,500".
func Currency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + humanize.CommafWithDigits(round(v, 2), 2)
}

// CompactCurrency abbreviates large amounts: "$1.3M", "$64.9K", "$950",
// "-$5.0K".
func CompactCurrency(v float64) string {
	sign, body := compact(v)
	return sign + "$" + body
}

// Number formats v with thousands separators and at most three fraction digits.
func Number(v float64) string {
	return humanize.CommafWithDigits(round(v, 3), 3)
}

// CompactNumber abbreviates with K and M suffixes.
func CompactNumber(v float64) string {
	sign, body := compact(v)
	return sign + body
}

// compact abbreviates |v| and returns the sign separately. Values that round
// to zero carry no sign.
func compact(v float64) (string, string) {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	var body string
	switch {
	case v >= 1_000_000:
		body = strconv.FormatFloat(v/1_000_000, 'f', 1, 64) + "M"
	case v >= 1_000:
		body = strconv.FormatFloat(v/1_000, 'f', 1, 64) + "K"
	default:
		body = strconv.FormatFloat(v, 'f', 0, 64)
	}
	if body == "0" {
		sign = ""
	}
	return sign, body
}

func Percent(v float64, decimals int) string {
	return Decimal(v, decimals) + "%"
}

func Decimal(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
