// Package extraction recovers monetary amounts, quantities and unit prices
// from free-text tax questions ("2 cartons of milk at ₦3,500 per carton").
//
// Extraction runs an ordered cascade of shape patterns; the first match
// wins. When no shape matches it falls back to harvesting every number in
// the text and disambiguating quantity vs price heuristically. The function
// never fails: unparseable input yields an empty result with a zero base
// amount.
package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Result is the outcome of extracting a monetary figure from one utterance.
type Result struct {
	// RawValues holds every numeric value found, in first-seen order,
	// deduplicated by value.
	RawValues []decimal.Decimal

	// Quantity and UnitPrice are set together or not at all. When both are
	// present, BaseAmount == Round2(Quantity * UnitPrice).
	Quantity  *decimal.Decimal
	UnitPrice *decimal.Decimal

	// BaseAmount is the resolved VAT-exclusive amount; zero when nothing
	// was found.
	BaseAmount decimal.Decimal

	// Unit is the canonical unit label ("kg", "carton"), empty when no
	// unit was detected.
	Unit string
}

var (
	unitWordRe    = regexp.MustCompile(`(?i)\b` + UnitPattern + `\b`)
	packageWordRe = regexp.MustCompile(`(?i)\b(?:package|carton|box|container)`)

	ten        = decimal.NewFromInt(10)
	oneHundred = decimal.NewFromInt(100)
)

// Extract pulls a (quantity, unit, unit price, base amount) tuple out of
// free text. It never returns an error; see Result for the empty-result
// conventions.
func Extract(text string) *Result {
	res := &Result{BaseAmount: decimal.Zero}
	if strings.TrimSpace(text) == "" {
		return res
	}

	// A leading minus on a currency-tagged amount suppresses extraction:
	// negative base amounts would produce negative VAT downstream.
	if negativeAmountRe.MatchString(text) {
		return res
	}

	res.RawValues = harvestNumbers(text)

	for i := range cascade {
		if applyPattern(text, &cascade[i], res) {
			return res
		}
	}

	fallbackResolve(text, res)
	return res
}

// applyPattern matches one cascade entry against the text and, on success,
// fills the result. It reports false when the pattern does not match or its
// captured numbers are unusable, letting the cascade continue.
func applyPattern(text string, p *pricePattern, res *Result) bool {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return false
	}

	qty, ok := ParseAmount(m[p.qty])
	if !ok || qty.IsZero() {
		return false
	}
	price, ok := ParseAmount(m[p.price])
	if !ok || price.IsZero() {
		return false
	}

	var unitPrice decimal.Decimal
	switch p.role {
	case qtyThenUnitPrice, priceThenQty:
		unitPrice = Round2(price)
	case qtyThenTotal, totalThenQty:
		unitPrice = Round2(price.Div(qty))
	}

	// Unit price is rounded first; the base amount is recomputed from it so
	// that BaseAmount == Round2(Quantity * UnitPrice) holds exactly.
	res.Quantity = &qty
	res.UnitPrice = &unitPrice
	res.BaseAmount = Round2(qty.Mul(unitPrice))
	if p.unit > 0 && m[p.unit] != "" {
		res.Unit = CanonicalUnit(m[p.unit])
	}
	return true
}

// fallbackResolve applies the generic-harvest tie-break policy when no
// cascade pattern matched.
func fallbackResolve(text string, res *Result) {
	values := res.RawValues
	switch len(values) {
	case 0:
		return
	case 1:
		res.BaseAmount = Round2(values[0])
		return
	}

	// Unit-word adjacency is the stronger signal: a small count (<=10)
	// alongside a large amount (>100) reads as quantity x unit price.
	if loc := unitWordRe.FindString(text); loc != "" {
		small, smallOK := smallestAtMost(values, ten)
		large, largeOK := largestAbove(values, oneHundred)
		if smallOK && largeOK && !small.Equal(large) {
			unitPrice := Round2(large)
			res.Quantity = &small
			res.UnitPrice = &unitPrice
			res.BaseAmount = Round2(small.Mul(unitPrice))
			res.Unit = CanonicalUnit(loc)
			return
		}
	}

	// Package framing: a per-package count (1..100 exclusive) plus a larger
	// value reads as pieces per package priced as a whole.
	if packageWordRe.MatchString(text) {
		count, countOK := packageCount(values)
		max := largestOf(values)
		if countOK && max.GreaterThan(count) {
			unitPrice := Round2(max.Div(count))
			res.Quantity = &count
			res.UnitPrice = &unitPrice
			res.BaseAmount = Round2(count.Mul(unitPrice))
			return
		}
	}

	// Magnitude-only last resort: the largest value is the base amount.
	res.BaseAmount = Round2(largestOf(values))
}

func smallestAtMost(values []decimal.Decimal, limit decimal.Decimal) (decimal.Decimal, bool) {
	var best decimal.Decimal
	found := false
	for _, v := range values {
		if v.IsPositive() && v.LessThanOrEqual(limit) {
			if !found || v.LessThan(best) {
				best = v
				found = true
			}
		}
	}
	return best, found
}

func largestAbove(values []decimal.Decimal, floor decimal.Decimal) (decimal.Decimal, bool) {
	var best decimal.Decimal
	found := false
	for _, v := range values {
		if v.GreaterThan(floor) {
			if !found || v.GreaterThan(best) {
				best = v
				found = true
			}
		}
	}
	return best, found
}

func largestOf(values []decimal.Decimal) decimal.Decimal {
	best := values[0]
	for _, v := range values[1:] {
		if v.GreaterThan(best) {
			best = v
		}
	}
	return best
}

// packageCount finds a value that plausibly is a per-package piece count:
// strictly between 1 and 100.
func packageCount(values []decimal.Decimal) (decimal.Decimal, bool) {
	var best decimal.Decimal
	found := false
	one := decimal.NewFromInt(1)
	for _, v := range values {
		if v.GreaterThan(one) && v.LessThan(oneHundred) {
			if !found || v.LessThan(best) {
				best = v
				found = true
			}
		}
	}
	return best, found
}
