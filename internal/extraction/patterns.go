package extraction

import "regexp"

// captureRole says how a pattern's numeric capture groups map onto the
// quantity/price pair.
type captureRole int

const (
	// qtyThenUnitPrice: price group is a per-unit price.
	qtyThenUnitPrice captureRole = iota
	// qtyThenTotal: price group is a total; unit price is derived.
	qtyThenTotal
	// priceThenQty: per-unit price appears before the quantity.
	priceThenQty
	// totalThenQty: total appears before the quantity; unit price derived.
	totalThenQty
)

// pricePattern is one entry of the ordered cascade. Group indexes refer to
// capture groups of re; 0 means the pattern has no such group.
type pricePattern struct {
	name  string
	re    *regexp.Regexp
	role  captureRole
	qty   int
	price int
	unit  int
}

// Regex building blocks. gap lets nouns sit between the unit and the buying
// verb ("2 cartons of milk at ..."). All fragments are RE2-safe: no nested
// unbounded quantifiers over the same class.
const (
	numGrp   = `(` + NumberPattern + `)`
	curOpt   = `(?:` + CurrencyPattern + `\s*)?`
	unitGrp  = `(` + UnitPattern + `)`
	wordGap  = `(?:\s+(?:of\s+)?[a-zA-Z]+)*?`
	buyVerb  = `(?:at|for|of|with|costing|worth|valued\s+at|priced\s+at)`
	totalCue = `(?:in\s+total|in\s+all|total|altogether|combined)`
	eachCue  = `(?:each|apiece|a\s+piece)`
	multOp   = `(?:\*|x|×|times|multiplied\s+by)`
)

// cascade is the ordered pattern table; the first match wins. Total-marked
// and currency-anchored shapes precede the general shapes they overlap with,
// otherwise the general shape would shadow them.
var cascade = []pricePattern{
	{
		// "5 kg rice for ₦2,000 in total"
		name: "qty-unit-total",
		re: regexp.MustCompile(`(?i)\b` + numGrp + `\s*` + unitGrp + `\b` + wordGap +
			`\s+(?:for|at|costing|worth)\s+(?:a\s+total\s+of\s+)?` + curOpt + numGrp + `\s+` + totalCue + `\b`),
		role: qtyThenTotal, qty: 1, unit: 2, price: 3,
	},
	{
		// "a carton of 12 bottles for ₦6,000" — the trailing amount prices
		// the whole container.
		name: "container-of-qty",
		re: regexp.MustCompile(`(?i)\b(?:a\s+|one\s+)?(?:package|carton|box|container|pack|case)\s+of\s+` +
			numGrp + `\s+([a-zA-Z]+)\s+(?:for|at|costs?|costing)\s+` + curOpt + numGrp),
		role: qtyThenTotal, qty: 1, unit: 2, price: 3,
	},
	{
		// "5 kg rice at ₦400 per kg", "2 cartons of milk at ₦3,500 each"
		name: "qty-unit-price",
		re: regexp.MustCompile(`(?i)\b` + numGrp + `\s*` + unitGrp + `\b` + wordGap +
			`\s+` + buyVerb + `\s+` + curOpt + numGrp + `\b(?:\s*(?:` + eachCue + `|per\s+` + UnitPattern + `))?`),
		role: qtyThenUnitPrice, qty: 1, unit: 2, price: 3,
	},
	{
		// "total of ₦6,000 for 4 cartons"
		name: "total-for-qty",
		re: regexp.MustCompile(`(?i)\btotal\s+(?:of\s+)?` + curOpt + numGrp +
			`\s+for\s+` + numGrp + `(?:\s*` + unitGrp + `)?`),
		role: totalThenQty, price: 1, qty: 2, unit: 3,
	},
	{
		// "₦400 for 5 kg", "₦1,200 to purchase 3 bottles"
		name: "price-for-qty",
		re: regexp.MustCompile(`(?i)` + curOpt + numGrp + `\s+(?:for|per|to\s+purchase)\s+` +
			numGrp + `\s*` + unitGrp),
		role: priceThenQty, price: 1, qty: 2, unit: 3,
	},
	{
		// "₦400 each for the 5 items"
		name: "price-each-qty",
		re: regexp.MustCompile(`(?i)` + curOpt + numGrp + `\s*` + eachCue + `\b\D*?` +
			numGrp + `(?:\s*` + unitGrp + `)?`),
		role: priceThenQty, price: 1, qty: 2, unit: 3,
	},
	{
		// "₦400 per kg when buying 5"
		name: "price-per-unit-qty",
		re: regexp.MustCompile(`(?i)` + curOpt + numGrp + `\s+per\s+` + unitGrp + `\b\D*?` +
			numGrp + `(?:\s*(?:` + UnitPattern + `))?`),
		role: priceThenQty, price: 1, unit: 2, qty: 3,
	},
	{
		// "₦500 x 3" — currency tags the first operand as the price.
		name: "price-x-qty",
		re:   regexp.MustCompile(`(?i)` + CurrencyPattern + `\s*` + numGrp + `\s*` + multOp + `\s*` + numGrp),
		role: priceThenQty, price: 1, qty: 2,
	},
	{
		// "3 x ₦500", "3 times 500"
		name: "qty-x-price",
		re:   regexp.MustCompile(`(?i)\b` + numGrp + `\s*` + multOp + `\s*` + curOpt + numGrp),
		role: qtyThenUnitPrice, qty: 1, price: 2,
	},
	{
		// "on 5 units at ₦1,000", "for 10 packs at ₦250 each"
		name: "on-qty-unit-at",
		re: regexp.MustCompile(`(?i)\b(?:on|for)\s+` + numGrp + `\s*` + unitGrp + `\s+at\s+` + curOpt + numGrp +
			`\b(?:\s*(?:` + eachCue + `|per\s+(?:` + UnitPattern + `)))?`),
		role: qtyThenUnitPrice, qty: 1, unit: 2, price: 3,
	},
	{
		// "5 cartons @ ₦3,500"
		name: "qty-unit-at-sign",
		re:   regexp.MustCompile(`(?i)\b` + numGrp + `\s*` + unitGrp + `\s*[@:]\s*` + curOpt + numGrp),
		role: qtyThenUnitPrice, qty: 1, unit: 2, price: 3,
	},
	{
		// "bought 3 bags of cement ₦4,500"
		name: "buy-qty-unit-price",
		re: regexp.MustCompile(`(?i)\b(?:buy|buying|bought|purchased?|purchasing|ordered?|ordering)\s+` +
			numGrp + `\s*` + unitGrp + `\b` + wordGap + `\s+` + curOpt + numGrp + `\b`),
		role: qtyThenUnitPrice, qty: 1, unit: 2, price: 3,
	},
	{
		// "5 bottles of juice cost ₦300 each", "2 packs sell for ₦150"
		name: "qty-unit-costs",
		re: regexp.MustCompile(`(?i)\b` + numGrp + `\s*` + unitGrp + `\b` + wordGap +
			`\s+(?:costs?|sells?\s+(?:at|for)|selling\s+(?:at|for))\s+` + curOpt + numGrp +
			`\b(?:\s*` + eachCue + `)?`),
		role: qtyThenUnitPrice, qty: 1, unit: 2, price: 3,
	},
}
