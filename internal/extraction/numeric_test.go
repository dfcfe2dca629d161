package extraction

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"500", "500", true},
		{"3,500", "3500", true},
		{"1,234.56", "1234.56", true},
		{"199,99", "199.99", true}, // decimal comma
		{"1,500,000", "1500000", true},
		{"₦2,000", "2000", true},
		{"N500", "500", true},
		{"NGN 1000", "1000", true},
		{"naira 250", "250", true},
		{"0.5", "0.5", true},
		{"", "", false},
		{"₦", "", false},
		{"abc", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseAmount(tt.raw)
		if ok != tt.ok {
			t.Errorf("ParseAmount(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(dec(tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestParseAmountCurrencyPrefixNeutral(t *testing.T) {
	// A currency marker never changes the parsed value.
	for _, s := range []string{"500", "3,500", "199,99"} {
		plain, _ := ParseAmount(s)
		tagged, _ := ParseAmount("₦" + s)
		if !plain.Equal(tagged) {
			t.Errorf("ParseAmount(₦%s) = %s, want %s", s, tagged, plain)
		}
	}
}

func TestRound2HalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.346", "2.35"},
		{"333.333333", "333.33"},
		{"0.005", "0.01"},
	}
	for _, tt := range tests {
		if got := Round2(dec(tt.in)); !got.Equal(dec(tt.want)) {
			t.Errorf("Round2(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestHarvestNumbers(t *testing.T) {
	got := harvestNumbers("buy 2 items at 2 for ₦300 and 45.5 more")
	want := []string{"2", "300", "45.5"}
	if len(got) != len(want) {
		t.Fatalf("harvestNumbers = %v, want %v", got, want)
	}
	for i, w := range want {
		if !got[i].Equal(dec(w)) {
			t.Errorf("harvestNumbers[%d] = %s, want %s", i, got[i], w)
		}
	}
}
