package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberPattern matches a decimal number with optional thousands commas and
// up to two decimal digits ("1,234", "3,500.00", "199,99").
const NumberPattern = `\d+(?:,\d{3})*(?:[.,]\d{1,2})?`

// CurrencyPattern matches the naira markers accepted in front of an amount.
const CurrencyPattern = `(?:₦|NGN|naira|N)`

var (
	currencyPrefixRe = regexp.MustCompile(`(?i)^(?:₦|ngn|naira|n)\s*`)
	decimalCommaRe   = regexp.MustCompile(`^\d+,\d{2}$`)
	numberRe         = regexp.MustCompile(NumberPattern)

	// A minus sign in front of a currency-tagged number. Negative monetary
	// amounts are meaningless for VAT, so extraction bails out entirely.
	// The minus must not follow a word character: a hyphen inside a word
	// ("non-N95") is not a sign.
	negativeAmountRe = regexp.MustCompile(`(?i)(?:^|[^a-z0-9])-\s*(?:₦|ngn|naira|n)\s*\d`)
)

// ParseAmount converts a raw numeric token (optionally currency-prefixed)
// into a decimal. A single comma followed by exactly two digits and no
// period is treated as a decimal comma ("199,99" -> 199.99); any other
// commas are thousands separators. Malformed tokens report ok=false.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = currencyPrefixRe.ReplaceAllString(s, "")
	if s == "" {
		return decimal.Zero, false
	}

	if decimalCommaRe.MatchString(s) {
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Round2 rounds a currency value to 2 decimal places, half up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// harvestNumbers returns every numeric value in the text in first-seen
// order, deduplicated by value.
func harvestNumbers(text string) []decimal.Decimal {
	var values []decimal.Decimal
	for _, tok := range numberRe.FindAllString(text, -1) {
		d, ok := ParseAmount(tok)
		if !ok {
			continue
		}
		dup := false
		for _, v := range values {
			if v.Equal(d) {
				dup = true
				break
			}
		}
		if !dup {
			values = append(values, d)
		}
	}
	return values
}
