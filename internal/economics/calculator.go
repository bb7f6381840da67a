// Package economics derives the fiscal amounts printed on sale documents.
//
// The entered price is always tax-inclusive. Every derived amount is rounded
// half-up to cents exactly once; nothing is re-derived from rounded values.
package economics

import (
	"github.com/shopspring/decimal"

	"github.com/nurpe/dealer-docs/internal/model"
)

var (
	hundred = decimal.NewFromInt(100)

	// DefaultTaxRate is the general Spanish VAT rate.
	DefaultTaxRate = decimal.NewFromInt(21)

	// DefaultDepositShare is the fraction of the total suggested as deposit.
	DefaultDepositShare = decimal.RequireFromString("0.10")

	// DepositPresets are the deposit percentages offered on a deposit agreement.
	DepositPresets = []decimal.Decimal{
		decimal.NewFromInt(5),
		decimal.NewFromInt(10),
		decimal.NewFromInt(15),
		decimal.NewFromInt(20),
		decimal.NewFromInt(25),
	}
)

type Breakdown struct {
	TaxRate      decimal.Decimal
	TaxBase      decimal.Decimal
	TaxAmount    decimal.Decimal
	TotalWithTax decimal.Decimal
}

// Round2 rounds half away from zero to two decimals.
func Round2(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// DeriveFromGross splits a tax-inclusive price into base and tax. A rate at
// or below -100 % leaves no divisor; the whole price is then taken as base.
func DeriveFromGross(gross, ratePercent decimal.Decimal) Breakdown {
	divisor := decimal.NewFromInt(1).Add(ratePercent.Div(hundred))
	if !divisor.IsPositive() {
		return Breakdown{
			TaxRate:      ratePercent,
			TaxBase:      gross,
			TaxAmount:    decimal.Zero,
			TotalWithTax: gross,
		}
	}
	base := Round2(gross.Div(divisor))
	return Breakdown{
		TaxRate:      ratePercent,
		TaxBase:      base,
		TaxAmount:    Round2(gross.Sub(base)),
		TotalWithTax: gross,
	}
}

// FromConditions derives the breakdown for entered conditions, falling back to
// defaultRate when no rate was supplied.
func FromConditions(c model.EconomicConditions, defaultRate decimal.Decimal) Breakdown {
	rate := defaultRate
	if c.TaxRate.Valid {
		rate = c.TaxRate.Decimal
	}
	return DeriveFromGross(c.GrossPrice, rate)
}

type DepositTerms struct {
	Deposit   decimal.Decimal
	Total     decimal.Decimal
	Remaining decimal.Decimal
	Percent   decimal.Decimal
}

// Deposit computes the balance left after a deposit and the deposit share of
// the total in percent. A zero total yields a zero percent.
func Deposit(total, deposit decimal.Decimal) DepositTerms {
	terms := DepositTerms{
		Deposit:   deposit,
		Total:     total,
		Remaining: Round2(total.Sub(deposit)),
	}
	if !total.IsZero() {
		terms.Percent = Round2(deposit.Div(total).Mul(hundred))
	}
	return terms
}

// MatchPreset returns the index of the preset equal to percent, or -1.
func MatchPreset(percent decimal.Decimal, presets []decimal.Decimal) int {
	for i, preset := range presets {
		if preset.Equal(percent) {
			return i
		}
	}
	return -1
}

// SuggestedDeposit is the override when present, otherwise 10% of total.
func SuggestedDeposit(total decimal.Decimal, override decimal.NullDecimal) decimal.Decimal {
	if override.Valid {
		return override.Decimal
	}
	return Round2(total.Mul(DefaultDepositShare))
}
