package tax

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestVATExclusive(t *testing.T) {
	r := VATExclusive(dec("10000"), false)
	if !r.VATAmount.Equal(dec("750")) {
		t.Fatalf("vat = %s, want 750", r.VATAmount)
	}
	if !r.Total.Equal(dec("10750")) {
		t.Fatalf("total = %s, want 10750", r.Total)
	}
}

func TestVATExclusiveExempt(t *testing.T) {
	r := VATExclusive(dec("2000"), true)
	if !r.VATAmount.IsZero() {
		t.Fatalf("vat = %s, want 0 for exempt item", r.VATAmount)
	}
	if !r.Total.Equal(dec("2000")) {
		t.Fatalf("total = %s, want 2000", r.Total)
	}
	if !r.Exempt {
		t.Fatalf("exempt flag not carried")
	}
}

func TestVATExclusiveZeroBase(t *testing.T) {
	r := VATExclusive(decimal.Zero, false)
	if !r.VATAmount.IsZero() || !r.Total.IsZero() {
		t.Fatalf("zero base must yield zero vat and total, got vat=%s total=%s", r.VATAmount, r.Total)
	}
}

func TestVATInclusive(t *testing.T) {
	tests := []struct {
		amount string
		base   string
		vat    string
	}{
		{"10750", "10000", "750"},
		{"1000", "930.23", "69.77"},
		{"107.50", "100", "7.50"},
	}
	for _, tt := range tests {
		r := VATInclusive(dec(tt.amount), false)
		if !r.BaseAmount.Equal(dec(tt.base)) {
			t.Errorf("VATInclusive(%s) base = %s, want %s", tt.amount, r.BaseAmount, tt.base)
		}
		if !r.VATAmount.Equal(dec(tt.vat)) {
			t.Errorf("VATInclusive(%s) vat = %s, want %s", tt.amount, r.VATAmount, tt.vat)
		}
		if !r.Total.Equal(dec(tt.amount)) {
			t.Errorf("VATInclusive(%s) total = %s, want %s", tt.amount, r.Total, tt.amount)
		}
		// The decomposition must add back up.
		if !r.BaseAmount.Add(r.VATAmount).Equal(r.Total) {
			t.Errorf("VATInclusive(%s): base+vat = %s, total = %s",
				tt.amount, r.BaseAmount.Add(r.VATAmount), r.Total)
		}
	}
}

func TestPAYE(t *testing.T) {
	r := PAYE(dec("5000000"))
	if !r.Relief.Equal(dec("1200000")) {
		t.Fatalf("relief = %s, want 1200000", r.Relief)
	}
	if !r.TaxableIncome.Equal(dec("3800000")) {
		t.Fatalf("taxable = %s, want 3800000", r.TaxableIncome)
	}
	if !r.Tax.Equal(dec("704000")) {
		t.Fatalf("tax = %s, want 704000", r.Tax)
	}
	if !r.EffectiveRate.Equal(dec("0.1408")) {
		t.Fatalf("effectiveRate = %s, want 0.1408", r.EffectiveRate)
	}
}

func TestPAYEMinimumTax(t *testing.T) {
	// Relief swallows nearly all of a low income; the 1% minimum applies.
	r := PAYE(dec("260000"))
	if !r.Tax.Equal(dec("2600")) {
		t.Fatalf("tax = %s, want minimum 2600", r.Tax)
	}
}

func TestPAYENonPositive(t *testing.T) {
	for _, gross := range []string{"0", "-5000"} {
		r := PAYE(dec(gross))
		if !r.Tax.IsZero() {
			t.Errorf("PAYE(%s) tax = %s, want 0", gross, r.Tax)
		}
	}
}

func TestCIT(t *testing.T) {
	tests := []struct {
		turnover string
		profit   string
		rate     string
		tax      string
	}{
		{"20000000", "5000000", "0", "0"},      // small company
		{"25000000", "5000000", "0.2", "1000000"},
		{"100000000", "10000000", "0.2", "2000000"},
		{"150000000", "30000000", "0.3", "9000000"},
	}
	for _, tt := range tests {
		r := CIT(dec(tt.turnover), dec(tt.profit))
		if !r.Rate.Equal(dec(tt.rate)) {
			t.Errorf("CIT(%s) rate = %s, want %s", tt.turnover, r.Rate, tt.rate)
		}
		if !r.Tax.Equal(dec(tt.tax)) {
			t.Errorf("CIT(%s, %s) tax = %s, want %s", tt.turnover, tt.profit, r.Tax, tt.tax)
		}
	}
}

func TestCITLossMakingCompany(t *testing.T) {
	r := CIT(dec("150000000"), dec("-2000000"))
	if !r.Tax.IsZero() {
		t.Fatalf("tax = %s, want 0 on a loss", r.Tax)
	}
}

func TestCGT(t *testing.T) {
	r := CGT(dec("1000000"))
	if !r.Tax.Equal(dec("100000")) {
		t.Fatalf("tax = %s, want 100000", r.Tax)
	}
	if r = CGT(dec("-500")); !r.Tax.IsZero() {
		t.Fatalf("tax = %s, want 0 on a loss", r.Tax)
	}
}
