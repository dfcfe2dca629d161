package extraction

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestExtractPatternShapes(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		quantity  string
		unitPrice string
		base      string
		unit      string
	}{
		{
			name:     "qty unit at price per unit",
			text:     "I bought 5 kg of rice at ₦400 per kg",
			quantity: "5", unitPrice: "400", base: "2000", unit: "kg",
		},
		{
			name:     "qty unit with noun gap",
			text:     "What is the VAT on 2 cartons of milk at ₦3,500 per carton?",
			quantity: "2", unitPrice: "3500", base: "7000", unit: "carton",
		},
		{
			name:     "qty unit total",
			text:     "5 kg rice for ₦2,000 in total",
			quantity: "5", unitPrice: "400", base: "2000", unit: "kg",
		},
		{
			name:     "total before quantity",
			text:     "I paid a total of ₦6,000 for 4 cartons",
			quantity: "4", unitPrice: "1500", base: "6000", unit: "carton",
		},
		{
			name:     "container priced as a whole",
			text:     "a carton of 12 bottles for ₦6,000",
			quantity: "12", unitPrice: "500", base: "6000", unit: "bottle",
		},
		{
			name:     "currency anchored multiplication",
			text:     "₦500 x 3",
			quantity: "3", unitPrice: "500", base: "1500",
		},
		{
			name:     "quantity times price",
			text:     "3 x ₦500",
			quantity: "3", unitPrice: "500", base: "1500",
		},
		{
			name:     "at sign shorthand",
			text:     "5 cartons @ ₦3,500",
			quantity: "5", unitPrice: "3500", base: "17500", unit: "carton",
		},
		{
			name:     "qty unit costs each",
			text:     "5 bottles of juice cost ₦300 each",
			quantity: "5", unitPrice: "300", base: "1500", unit: "bottle",
		},
		{
			name:     "derived unit price keeps reconstruction exact",
			text:     "3 items for ₦1,000 in total",
			quantity: "3", unitPrice: "333.33", base: "999.99", unit: "item",
		},
		{
			name:     "decimal comma unit price",
			text:     "5 items at ₦199,99 each",
			quantity: "5", unitPrice: "199.99", base: "999.95", unit: "item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(tt.text)
			if res.Quantity == nil || res.UnitPrice == nil {
				t.Fatalf("Extract(%q): quantity/unitPrice not set, base = %s", tt.text, res.BaseAmount)
			}
			if !res.Quantity.Equal(dec(tt.quantity)) {
				t.Errorf("quantity = %s, want %s", res.Quantity, tt.quantity)
			}
			if !res.UnitPrice.Equal(dec(tt.unitPrice)) {
				t.Errorf("unitPrice = %s, want %s", res.UnitPrice, tt.unitPrice)
			}
			if !res.BaseAmount.Equal(dec(tt.base)) {
				t.Errorf("baseAmount = %s, want %s", res.BaseAmount, tt.base)
			}
			if res.Unit != tt.unit {
				t.Errorf("unit = %q, want %q", res.Unit, tt.unit)
			}
			// Regardless of which shape matched, the parts must reconstruct
			// the base amount exactly.
			if got := Round2(res.Quantity.Mul(*res.UnitPrice)); !got.Equal(res.BaseAmount) {
				t.Errorf("round2(qty*unitPrice) = %s, baseAmount = %s", got, res.BaseAmount)
			}
		})
	}
}

func TestExtractSingleAmount(t *testing.T) {
	res := Extract("What is the VAT on ₦10,000?")
	if res.Quantity != nil || res.UnitPrice != nil {
		t.Fatalf("quantity/unitPrice should not be set for a lone amount")
	}
	if !res.BaseAmount.Equal(dec("10000")) {
		t.Fatalf("baseAmount = %s, want 10000", res.BaseAmount)
	}
}

func TestExtractDecimalComma(t *testing.T) {
	res := Extract("a service worth N199,99")
	if !res.BaseAmount.Equal(dec("199.99")) {
		t.Fatalf("baseAmount = %s, want 199.99", res.BaseAmount)
	}
}

func TestExtractNegativeAmountSuppressed(t *testing.T) {
	res := Extract("What VAT do I get back on -₦5,000?")
	if !res.BaseAmount.IsZero() {
		t.Fatalf("baseAmount = %s, want 0 for a negative amount", res.BaseAmount)
	}
	if res.Quantity != nil || res.UnitPrice != nil {
		t.Fatalf("quantity/unitPrice should not be set for a negative amount")
	}
}

func TestExtractHyphenatedWordNotNegative(t *testing.T) {
	// The hyphen in "non-N95" is part of the word, not a minus sign.
	res := Extract("VAT on non-N95 masks at ₦500")
	if !res.BaseAmount.Equal(dec("500")) {
		t.Fatalf("baseAmount = %s, want 500", res.BaseAmount)
	}
}

func TestExtractIdempotent(t *testing.T) {
	inputs := []string{
		"2 cartons of milk at ₦3,500 per carton",
		"What is the VAT on ₦10,000?",
		"a service worth N199,99",
		"I have 3 bottles and paid ₦1500",
		"a package of 12 for ₦6,000",
		"",
	}
	for _, text := range inputs {
		a, b := Extract(text), Extract(text)
		if len(a.RawValues) != len(b.RawValues) {
			t.Fatalf("Extract(%q): rawValues differ across calls: %v vs %v", text, a.RawValues, b.RawValues)
		}
		for i := range a.RawValues {
			if !a.RawValues[i].Equal(b.RawValues[i]) {
				t.Fatalf("Extract(%q): rawValues[%d] = %s vs %s", text, i, a.RawValues[i], b.RawValues[i])
			}
		}
		if (a.Quantity == nil) != (b.Quantity == nil) ||
			(a.Quantity != nil && !a.Quantity.Equal(*b.Quantity)) {
			t.Fatalf("Extract(%q): quantity differs across calls", text)
		}
		if (a.UnitPrice == nil) != (b.UnitPrice == nil) ||
			(a.UnitPrice != nil && !a.UnitPrice.Equal(*b.UnitPrice)) {
			t.Fatalf("Extract(%q): unitPrice differs across calls", text)
		}
		if !a.BaseAmount.Equal(b.BaseAmount) {
			t.Fatalf("Extract(%q): baseAmount = %s vs %s", text, a.BaseAmount, b.BaseAmount)
		}
		if a.Unit != b.Unit {
			t.Fatalf("Extract(%q): unit = %q vs %q", text, a.Unit, b.Unit)
		}
	}
}

func TestExtractEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "no numbers here"} {
		res := Extract(text)
		if !res.BaseAmount.IsZero() {
			t.Errorf("Extract(%q): baseAmount = %s, want 0", text, res.BaseAmount)
		}
	}
}

func TestFallbackUnitAdjacency(t *testing.T) {
	// No cascade shape matches, but a unit word next to a small and a large
	// value reads as quantity x unit price.
	res := Extract("I have 3 bottles and paid ₦1500")
	if res.Quantity == nil || !res.Quantity.Equal(dec("3")) {
		t.Fatalf("quantity = %v, want 3", res.Quantity)
	}
	if !res.UnitPrice.Equal(dec("1500")) {
		t.Fatalf("unitPrice = %s, want 1500", res.UnitPrice)
	}
	if !res.BaseAmount.Equal(dec("4500")) {
		t.Fatalf("baseAmount = %s, want 4500", res.BaseAmount)
	}
	if res.Unit != "bottle" {
		t.Fatalf("unit = %q, want bottle", res.Unit)
	}
}

func TestFallbackPackageFraming(t *testing.T) {
	res := Extract("a package of 12 for ₦6,000")
	if res.Quantity == nil || !res.Quantity.Equal(dec("12")) {
		t.Fatalf("quantity = %v, want 12", res.Quantity)
	}
	if !res.UnitPrice.Equal(dec("500")) {
		t.Fatalf("unitPrice = %s, want 500", res.UnitPrice)
	}
	if !res.BaseAmount.Equal(dec("6000")) {
		t.Fatalf("baseAmount = %s, want 6000", res.BaseAmount)
	}
}

func TestFallbackLargestValue(t *testing.T) {
	res := Extract("payments of 20 and 450")
	if res.Quantity != nil {
		t.Fatalf("quantity should not be set without a unit or package cue")
	}
	if !res.BaseAmount.Equal(dec("450")) {
		t.Fatalf("baseAmount = %s, want 450", res.BaseAmount)
	}
}

func TestExtractRawValues(t *testing.T) {
	res := Extract("2 cartons of milk at ₦3,500 per carton")
	want := []string{"2", "3500"}
	if len(res.RawValues) != len(want) {
		t.Fatalf("rawValues = %v, want %v", res.RawValues, want)
	}
	for i, w := range want {
		if !res.RawValues[i].Equal(dec(w)) {
			t.Errorf("rawValues[%d] = %s, want %s", i, res.RawValues[i], w)
		}
	}
}
