package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var reNonPrice = regexp.MustCompile(`[^\d.]`)

// maxQuantity keeps absurd stock cells from overflowing int conversion.
const maxQuantity = math.MaxInt32

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ParsePrice turns a cell like "12 500,00 руб." into 12500. Anything that
// cannot be read as a number is 0.
func ParsePrice(s string) float64 {
	s = strings.ReplaceAll(stripSpaces(s), ",", ".")
	s = reNonPrice.ReplaceAllString(s, "")
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// ParseQuantity reads a stock cell, truncating fractions and clamping
// negatives to 0.
func ParseQuantity(s string) int {
	s = strings.ReplaceAll(stripSpaces(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	if v > maxQuantity {
		return maxQuantity
	}
	return int(v)
}

func NormalizeCode(s string) string {
	return strings.TrimSpace(s)
}
