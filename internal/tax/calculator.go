// Package tax implements the closed-form Nigerian tax calculations the
// assistant answers with: VAT, PAYE, CIT and CGT.
package tax

import "github.com/shopspring/decimal"

// Statutory rates.
var (
	// VATRate is the flat Nigerian VAT rate (7.5%).
	VATRate = decimal.NewFromFloat(0.075)

	// CGTRate is the flat capital gains tax rate (10%).
	CGTRate = decimal.NewFromFloat(0.10)
)

// VATResult breaks a VAT calculation down for presentation.
type VATResult struct {
	BaseAmount decimal.Decimal `json:"baseAmount"`
	VATAmount  decimal.Decimal `json:"vatAmount"`
	Total      decimal.Decimal `json:"total"`
	Exempt     bool            `json:"exempt"`
}

// VATExclusive computes VAT on a net (VAT-exclusive) base amount. An exempt
// item carries zero VAT.
func VATExclusive(base decimal.Decimal, exempt bool) VATResult {
	base = round2(base)
	if exempt || !base.IsPositive() {
		return VATResult{BaseAmount: base, VATAmount: decimal.Zero, Total: base, Exempt: exempt}
	}
	vat := round2(base.Mul(VATRate))
	return VATResult{BaseAmount: base, VATAmount: vat, Total: base.Add(vat)}
}

// VATInclusive decomposes a gross amount that already contains VAT:
// base = amount / 1.075, vat = amount - base.
func VATInclusive(amount decimal.Decimal, exempt bool) VATResult {
	amount = round2(amount)
	if exempt || !amount.IsPositive() {
		return VATResult{BaseAmount: amount, VATAmount: decimal.Zero, Total: amount, Exempt: exempt}
	}
	base := round2(amount.Div(decimal.NewFromInt(1).Add(VATRate)))
	return VATResult{BaseAmount: base, VATAmount: amount.Sub(base), Total: amount}
}

// payeBand is one progressive PAYE band: up to Width of taxable income
// taxed at Rate. A zero Width marks the open-ended top band.
type payeBand struct {
	Width decimal.Decimal
	Rate  decimal.Decimal
}

var payeBands = []payeBand{
	{decimal.NewFromInt(300_000), decimal.NewFromFloat(0.07)},
	{decimal.NewFromInt(300_000), decimal.NewFromFloat(0.11)},
	{decimal.NewFromInt(500_000), decimal.NewFromFloat(0.15)},
	{decimal.NewFromInt(500_000), decimal.NewFromFloat(0.19)},
	{decimal.NewFromInt(1_600_000), decimal.NewFromFloat(0.21)},
	{decimal.Zero, decimal.NewFromFloat(0.24)},
}

// PAYEResult carries a personal income tax computation on annual gross.
type PAYEResult struct {
	GrossIncome   decimal.Decimal `json:"grossIncome"`
	Relief        decimal.Decimal `json:"relief"`
	TaxableIncome decimal.Decimal `json:"taxableIncome"`
	Tax           decimal.Decimal `json:"tax"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
}

// PAYE computes annual personal income tax. The consolidated relief
// allowance is the higher of ₦200,000 and 1% of gross, plus 20% of gross;
// the remainder runs through the 7/11/15/19/21/24% bands. The statutory
// minimum tax of 1% of gross applies when the banded computation falls
// below it.
func PAYE(gross decimal.Decimal) PAYEResult {
	gross = round2(gross)
	if !gross.IsPositive() {
		return PAYEResult{GrossIncome: gross}
	}

	onePercent := gross.Mul(decimal.NewFromFloat(0.01))
	fixed := decimal.NewFromInt(200_000)
	if onePercent.GreaterThan(fixed) {
		fixed = onePercent
	}
	relief := round2(fixed.Add(gross.Mul(decimal.NewFromFloat(0.20))))

	taxable := gross.Sub(relief)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	tax := decimal.Zero
	remaining := taxable
	for _, band := range payeBands {
		if !remaining.IsPositive() {
			break
		}
		slab := remaining
		if band.Width.IsPositive() && slab.GreaterThan(band.Width) {
			slab = band.Width
		}
		tax = tax.Add(slab.Mul(band.Rate))
		remaining = remaining.Sub(slab)
	}
	tax = round2(tax)

	if minimum := round2(onePercent); tax.LessThan(minimum) {
		tax = minimum
	}

	return PAYEResult{
		GrossIncome:   gross,
		Relief:        relief,
		TaxableIncome: round2(taxable),
		Tax:           tax,
		EffectiveRate: tax.Div(gross).Round(4),
	}
}

// CITResult carries a companies income tax computation.
type CITResult struct {
	Turnover decimal.Decimal `json:"turnover"`
	Profit   decimal.Decimal `json:"profit"`
	Rate     decimal.Decimal `json:"rate"`
	Tax      decimal.Decimal `json:"tax"`
}

// CIT computes companies income tax on assessable profit, with the rate
// selected by annual turnover: 0% below ₦25M, 20% up to ₦100M, 30% above.
func CIT(turnover, profit decimal.Decimal) CITResult {
	turnover = round2(turnover)
	profit = round2(profit)

	var rate decimal.Decimal
	switch {
	case turnover.LessThan(decimal.NewFromInt(25_000_000)):
		rate = decimal.Zero
	case turnover.LessThanOrEqual(decimal.NewFromInt(100_000_000)):
		rate = decimal.NewFromFloat(0.20)
	default:
		rate = decimal.NewFromFloat(0.30)
	}

	tax := decimal.Zero
	if profit.IsPositive() {
		tax = round2(profit.Mul(rate))
	}
	return CITResult{Turnover: turnover, Profit: profit, Rate: rate, Tax: tax}
}

// CGTResult carries a capital gains tax computation.
type CGTResult struct {
	Gain decimal.Decimal `json:"gain"`
	Tax  decimal.Decimal `json:"tax"`
}

// CGT computes the flat 10% capital gains tax on a chargeable gain.
func CGT(gain decimal.Decimal) CGTResult {
	gain = round2(gain)
	if !gain.IsPositive() {
		return CGTResult{Gain: gain, Tax: decimal.Zero}
	}
	return CGTResult{Gain: gain, Tax: round2(gain.Mul(CGTRate))}
}

// round2 rounds to 2 decimal places, half up.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
