// Package enrich derives display attributes of a boiler from its model name.
// Every rule list is ordered and the first match wins.
package enrich

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"catalogbuilder/internal/model"
)

type powerPattern struct {
	re    *regexp.Regexp
	group int
}

// Patterns run against the upper-cased model name.
var powerPatterns = []powerPattern{
	{regexp.MustCompile(`(?:^|[^\p{L}\p{N}])(T2|M6|M30|B20|B30|C30|C11|Q3)\D*(\d+)`), 2}, // METEOR T2 45 H
	{regexp.MustCompile(`(\d+)\s*(C|H|С|Х|Н|КВТ|KW)`), 1},                                 // 24 C, 28 H, 24 кВт
	{regexp.MustCompile(`ГАЗ\s*6000\s*(\d+)`), 1},                                         // LaggarTT ГАЗ 6000 24 С
	{regexp.MustCompile(`MK\s*(\d+)`), 1},                                                 // MK 250
	{regexp.MustCompile(`LL1GBQ(\d+)`), 1},                                                // Devotion LL1GBQ30
	{regexp.MustCompile(`LN1GBQ(\d+)`), 1},                                                // Devotion LN1GBQ60
}

var reAnyPower = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(\d{2,3})(?:$|[^\p{L}\p{N}_])`)

var reTokenSplit = regexp.MustCompile(`[^\p{L}\p{N}]+`)

var (
	doubleMarkers = []string{"C", "С"}
	singleMarkers = []string{"H", "Н"}
	wallKeywords  = []string{"НАСТЕННЫЙ", "WALL-MOUNTED", "WALL MOUNTED"}
	wifiSpellings = []string{"WI-FI", "WIFI", "WI FI", "ВАЙ-ФАЙ", "ВАЙФАЙ"}
)

const (
	defaultImage  = "images/default.jpg"
	tierLowMax    = 20
	tierMediumMax = 30
)

type imageRule struct {
	markers []string
	path    string
}

var imageRules = []imageRule{
	{[]string{"METEOR T2"}, "images/meteor-t2.jpg"},
	{[]string{"METEOR C30"}, "images/meteor-c30.jpg"},
	{[]string{"METEOR B30"}, "images/meteor-b30.jpg"},
	{[]string{"METEOR B20"}, "images/meteor-b20.jpg"},
	{[]string{"METEOR C11"}, "images/meteor-c11.jpg"},
	{[]string{"METEOR Q3"}, "images/meteor-q3.jpg"},
	{[]string{"METEOR M30"}, "images/meteor-m30.jpg"},
	{[]string{"METEOR M6"}, "images/meteor-m6.jpg"},
	{[]string{"LAGGARTT", "ГАЗ 6000"}, "images/laggartt.jpg"},
	{[]string{"DEVOTION"}, "images/devotion.jpg"},
	{[]string{"MK"}, "images/mk.jpg"},
}

type categoryRule struct {
	markers  []string
	category model.Category
}

// Category markers are matched against the lower-cased model name.
var categoryRules = []categoryRule{
	{[]string{"meteor"}, model.CategoryMeteor},
	{[]string{"laggartt", "газ"}, model.CategoryLaggartt},
	{[]string{"devotion"}, model.CategoryDevotion},
	{[]string{"mk"}, model.CategoryMK},
}

// Attributes is everything derived from a model name alone.
type Attributes struct {
	Power     string
	Circuits  model.Circuits
	WiFi      bool
	ImagePath string
	Category  model.Category
	PowerTier model.PowerTier
}

func Derive(modelName string) Attributes {
	power := Power(modelName)
	return Attributes{
		Power:     power,
		Circuits:  Circuits(modelName),
		WiFi:      WiFi(modelName),
		ImagePath: ImagePath(modelName),
		Category:  CategoryOf(modelName),
		PowerTier: Tier(power),
	}
}

// Power extracts the rated power in kW as written in the name.
func Power(modelName string) string {
	upper := strings.ToUpper(modelName)
	for _, p := range powerPatterns {
		if m := p.re.FindStringSubmatch(upper); m != nil {
			return m[p.group]
		}
	}
	if m := reAnyPower.FindStringSubmatch(upper); m != nil {
		return m[1]
	}
	return model.PowerNotSpecified
}

func Circuits(modelName string) model.Circuits {
	upper := strings.ToUpper(modelName)
	tokens := reTokenSplit.Split(upper, -1)
	if hasToken(tokens, doubleMarkers) {
		return model.DoubleCircuit
	}
	if hasToken(tokens, singleMarkers) {
		return model.SingleCircuit
	}
	if containsAny(upper, wallKeywords) {
		return model.DoubleCircuit
	}
	return model.SingleCircuit
}

func WiFi(modelName string) bool {
	return containsAny(strings.ToUpper(modelName), wifiSpellings)
}

func ImagePath(modelName string) string {
	upper := strings.ToUpper(modelName)
	for _, r := range imageRules {
		if containsAny(upper, r.markers) {
			return r.path
		}
	}
	return defaultImage
}

func CategoryOf(modelName string) model.Category {
	lower := strings.ToLower(modelName)
	for _, r := range categoryRules {
		if containsAny(lower, r.markers) {
			return r.category
		}
	}
	return model.CategoryOther
}

// Tier buckets a numeric power of any width; anything else is unknown.
func Tier(power string) model.PowerTier {
	v, err := decimal.NewFromString(power)
	if err != nil || !v.IsInteger() {
		return model.PowerUnknown
	}
	switch {
	case v.LessThanOrEqual(decimal.NewFromInt(tierLowMax)):
		return model.PowerLow
	case v.LessThanOrEqual(decimal.NewFromInt(tierMediumMax)):
		return model.PowerMedium
	default:
		return model.PowerHigh
	}
}

func Status(quantity int) model.Status {
	if quantity > 0 {
		return model.InStock
	}
	return model.OutOfStock
}

func hasToken(tokens, markers []string) bool {
	for _, t := range tokens {
		for _, m := range markers {
			if t == m {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
