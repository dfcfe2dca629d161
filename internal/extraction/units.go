package extraction

import "strings"

// UnitPattern is the regex alternation of every measurement and container
// word the extractor recognises, including plural forms. Longer word forms
// are listed before their abbreviations so the alternation never stops at a
// prefix ("kilograms" before "kg", "inches" before "in", bare "m" last).
const UnitPattern = `(?:kilograms?|kgs?|grams?|tonnes?|tons?|pounds?|lbs?|ounces?|oz|` +
	`litres?|liters?|millilitres?|milliliters?|ml|gallons?|gal|l|` +
	`centimetres?|centimeters?|cm|kilometres?|kilometers?|km|` +
	`square\s+met(?:er|re)s?|sq\.?\s*m|m2|m²|hectares?|ha|acres?|` +
	`metres?|meters?|inches|inch|in|feet|foot|ft|yards?|yd|` +
	`hours?|hrs?|minutes?|mins?|seconds?|secs?|` +
	`gigabytes?|gb|megabytes?|mb|terabytes?|tb|` +
	`boxes|box|packages?|packs?|cartons?|bundles?|sets?|pairs?|dozens?|cases?|` +
	`bottles?|cans?|bags?|items?|units?|pieces?|products?|goods|m)`

// canonicalUnits maps singular unit words to their canonical labels for the
// generic lookup pass.
var canonicalUnits = map[string]string{
	"ton": "ton", "tonne": "ton",
	"pound": "lb", "lb": "lb",
	"ounce": "oz", "oz": "oz",
	"milliliter": "ml", "millilitre": "ml", "ml": "ml",
	"gallon": "gal", "gal": "gal",
	"centimeter": "cm", "centimetre": "cm", "cm": "cm",
	"kilometer": "km", "kilometre": "km", "km": "km",
	"inch": "in", "in": "in",
	"foot": "ft", "feet": "ft", "ft": "ft",
	"yard": "yd", "yd": "yd",
	"square meter": "m²", "square metre": "m²", "sq m": "m²", "sq. m": "m²", "m2": "m²", "m²": "m²",
	"hectare": "ha", "ha": "ha",
	"acre": "acre",
	"minute": "min", "min": "min",
	"second": "sec", "sec": "sec",
	"gigabyte": "GB", "gb": "GB",
	"megabyte": "MB", "mb": "MB",
	"terabyte": "TB", "tb": "TB",
	"box": "box", "boxes": "box",
	"bundle": "bundle",
	"set": "set",
	"case": "case",
	"can": "can",
	"bag": "bag",
	"unit": "unit",
	"piece": "piece",
	"product": "product",
	"goods": "item",
}

// CanonicalUnit normalises a raw matched unit token to its canonical label.
// The explicit prefix checks run before the generic table lookup; ordering
// matters because several raw forms overlap ("kg" contains "g", "package"
// starts like "pack").
func CanonicalUnit(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	u = strings.Join(strings.Fields(u), " ")
	if u == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(u, "kg"), strings.HasPrefix(u, "kilogram"):
		return "kg"
	case strings.HasPrefix(u, "gram"):
		return "g"
	case strings.HasPrefix(u, "bottle"):
		return "bottle"
	case strings.HasPrefix(u, "carton"):
		return "carton"
	case strings.HasPrefix(u, "item"):
		return "item"
	case strings.HasPrefix(u, "meter"), strings.HasPrefix(u, "metre"), u == "m":
		return "m"
	case strings.HasPrefix(u, "hour"), strings.HasPrefix(u, "hr"):
		return "hr"
	case strings.HasPrefix(u, "liter"), strings.HasPrefix(u, "litre"), u == "l":
		return "l"
	case strings.HasPrefix(u, "pack"): // pack, packs, package, packages
		return "pack"
	}

	if c, ok := canonicalUnits[u]; ok {
		return c
	}
	// Naive singular before giving up.
	if s := strings.TrimSuffix(u, "es"); s != u {
		if c, ok := canonicalUnits[s]; ok {
			return c
		}
	}
	if s := strings.TrimSuffix(u, "s"); s != u {
		if c, ok := canonicalUnits[s]; ok {
			return c
		}
	}
	return u
}
