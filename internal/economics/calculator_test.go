package economics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/nurpe/dealer-docs/internal/model"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDeriveFromGross(t *testing.T) {
	tests := []struct {
		name  string
		gross string
		rate  string
		want  Breakdown
	}{
		{
			name:  "general rate",
			gross: "12100",
			rate:  "21",
			want:  Breakdown{TaxRate: d("21"), TaxBase: d("10000"), TaxAmount: d("2100"), TotalWithTax: d("12100")},
		},
		{
			name:  "zero gross",
			gross: "0",
			rate:  "21",
			want:  Breakdown{TaxRate: d("21"), TaxBase: d("0"), TaxAmount: d("0"), TotalWithTax: d("0")},
		},
		{
			name:  "rate without divisor",
			gross: "1000",
			rate:  "-100",
			want:  Breakdown{TaxRate: d("-100"), TaxBase: d("1000"), TaxAmount: d("0"), TotalWithTax: d("1000")},
		},
		{
			name:  "zero rate",
			gross: "9999.99",
			rate:  "0",
			want:  Breakdown{TaxRate: d("0"), TaxBase: d("9999.99"), TaxAmount: d("0"), TotalWithTax: d("9999.99")},
		},
		{
			name:  "rounds half up",
			gross: "100",
			rate:  "21",
			want:  Breakdown{TaxRate: d("21"), TaxBase: d("82.64"), TaxAmount: d("17.36"), TotalWithTax: d("100")},
		},
		{
			name:  "reduced rate",
			gross: "15990.50",
			rate:  "10",
			want:  Breakdown{TaxRate: d("10"), TaxBase: d("14536.82"), TaxAmount: d("1453.68"), TotalWithTax: d("15990.50")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveFromGross(d(tt.gross), d(tt.rate))
			if diff := cmp.Diff(tt.want, got, decimalComparer); diff != "" {
				t.Fatalf("DeriveFromGross mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeriveFromGrossInvariants(t *testing.T) {
	rates := []string{"0", "4", "10", "21", "7.5"}
	for cents := int64(0); cents <= 2000000; cents += 1337 {
		gross := decimal.New(cents, -2)
		for _, r := range rates {
			b := DeriveFromGross(gross, d(r))
			if !b.TotalWithTax.Equal(gross) {
				t.Fatalf("total %s != gross %s", b.TotalWithTax, gross)
			}
			if !b.TaxBase.Add(b.TaxAmount).Equal(b.TotalWithTax) {
				t.Fatalf("gross %s rate %s: base %s + tax %s != total %s", gross, r, b.TaxBase, b.TaxAmount, b.TotalWithTax)
			}
			if !Round2(b.TaxBase).Equal(b.TaxBase) || !Round2(b.TaxAmount).Equal(b.TaxAmount) {
				t.Fatalf("gross %s rate %s: sub-cent residue in %s / %s", gross, r, b.TaxBase, b.TaxAmount)
			}
		}
	}
}

func TestFromConditionsDefaultRate(t *testing.T) {
	c := model.EconomicConditions{GrossPrice: d("12100")}
	got := FromConditions(c, DefaultTaxRate)
	if !got.TaxBase.Equal(d("10000")) {
		t.Fatalf("expected default rate to apply, got base %s", got.TaxBase)
	}

	c.TaxRate = decimal.NewNullDecimal(d("0"))
	got = FromConditions(c, DefaultTaxRate)
	if !got.TaxAmount.IsZero() {
		t.Fatalf("explicit zero rate ignored, tax %s", got.TaxAmount)
	}
}

func TestDeposit(t *testing.T) {
	terms := Deposit(d("15000"), d("1500"))
	if !terms.Remaining.Equal(d("13500")) {
		t.Fatalf("remaining = %s", terms.Remaining)
	}
	if !terms.Percent.Equal(d("10")) {
		t.Fatalf("percent = %s", terms.Percent)
	}
	if idx := MatchPreset(terms.Percent, DepositPresets); idx != 1 {
		t.Fatalf("preset index = %d, want 1", idx)
	}

	odd := Deposit(d("15000"), d("1234"))
	if idx := MatchPreset(odd.Percent, DepositPresets); idx != -1 {
		t.Fatalf("unexpected preset match %d for %s%%", idx, odd.Percent)
	}

	zero := Deposit(decimal.Zero, d("500"))
	if !zero.Percent.IsZero() {
		t.Fatalf("percent over zero total = %s", zero.Percent)
	}
}

func TestSuggestedDeposit(t *testing.T) {
	if got := SuggestedDeposit(d("20000"), decimal.NullDecimal{}); !got.Equal(d("2000")) {
		t.Fatalf("default deposit = %s", got)
	}
	if got := SuggestedDeposit(d("20000"), decimal.NewNullDecimal(d("3500"))); !got.Equal(d("3500")) {
		t.Fatalf("override deposit = %s", got)
	}
}
