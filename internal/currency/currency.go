// Package currency converts and renders USD amounts in the resolved
// display currency. Pure functions of (override, locale tag, rate table).
package currency

import (
	"fmt"
	"math"
	"strings"

	"workwise/internal/locale"
)

type Code string

const (
	USD Code = "USD"
	INR Code = "INR"
	EUR Code = "EUR"
	JPY Code = "JPY"
	KRW Code = "KRW"
	GBP Code = "GBP"
)

// Auto is the override sentinel meaning "detect from locale".
const Auto = "AUTO"

// DefaultRates is the canonical table. Unknown codes fall back to rate 1.
var DefaultRates = map[Code]float64{
	USD: 1,
	INR: 83,
	EUR: 0.92,
	JPY: 150,
	KRW: 1350,
	GBP: 0.79,
}

var symbols = map[Code]string{
	USD: "$",
	INR: "₹",
	EUR: "€",
	JPY: "¥",
	KRW: "₩",
	GBP: "£",
}

// zeroDecimal currencies render without a fractional part.
var zeroDecimal = map[Code]bool{
	JPY: true,
	KRW: true,
}

// detectRule is one ordered substring rule over the uppercased locale tag.
type detectRule struct {
	substr string
	code   Code
}

var detectRules = []detectRule{
	{"IN", INR},
	{"JP", JPY},
	{"JA", JPY},
	{"KO", KRW},
	{"KR", KRW},
	{"DE", EUR},
	{"FR", EUR},
	{"ES", EUR},
	{"GB", GBP},
	{"UK", GBP},
}

// Detect classifies a locale tag against the ordered rules, first match
// wins, USD otherwise.
func Detect(tag string) Code {
	up := strings.ToUpper(tag)
	for _, r := range detectRules {
		if strings.Contains(up, r.substr) {
			return r.code
		}
	}
	return USD
}

// Resolve applies override-then-detection precedence. An empty or "AUTO"
// override defers to the locale source.
func Resolve(override string, src locale.Source) Code {
	o := strings.ToUpper(strings.TrimSpace(override))
	if o != "" && o != Auto {
		return Code(o)
	}
	if src == nil {
		return USD
	}
	return Detect(src.Tag())
}

// Formatter renders USD amounts in one resolved currency.
type Formatter struct {
	code  Code
	rates map[Code]float64
}

// NewFormatter builds a formatter for code. A nil rates map uses the
// canonical table.
func NewFormatter(code Code, rates map[Code]float64) *Formatter {
	if rates == nil {
		rates = DefaultRates
	}
	return &Formatter{code: code, rates: rates}
}

func (f *Formatter) Code() Code { return f.code }

func (f *Formatter) rate() float64 {
	if r, ok := f.rates[f.code]; ok && r > 0 {
		return r
	}
	return 1
}

// Convert scales a USD amount into the resolved currency, rounded to the
// currency's displayed precision.
func (f *Formatter) Convert(amountUSD float64) float64 {
	v := amountUSD * f.rate()
	if zeroDecimal[f.code] {
		return math.Round(v)
	}
	return math.Round(v*100) / 100
}

// Format renders as <symbol-or-code><value>. Unknown codes keep the code
// itself as the prefix.
func (f *Formatter) Format(amountUSD float64) string {
	prefix, ok := symbols[f.code]
	if !ok {
		prefix = string(f.code)
	}
	v := f.Convert(amountUSD)
	if zeroDecimal[f.code] {
		return fmt.Sprintf("%s%.0f", prefix, v)
	}
	return fmt.Sprintf("%s%.2f", prefix, v)
}
