package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestParseDocumentKind(t *testing.T) {
	tests := map[string]DocumentKind{
		"purchase_contract": KindPurchaseContract,
		" Compraventa ":     KindPurchaseContract,
		"deposit":           KindDepositAgreement,
		"arras":             KindDepositAgreement,
		"FACTURA":           KindInvoice,
		"proforma-invoice":  KindProformaInvoice,
	}
	for raw, want := range tests {
		got, err := ParseDocumentKind(raw)
		if err != nil || got != want {
			t.Errorf("ParseDocumentKind(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseDocumentKind("receipt"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDecodeDocument(t *testing.T) {
	raw := []byte(`{
		"number": "PF-2025-0001",
		"date": "2025-03-05",
		"validity_days": 15,
		"suggested_deposit": 500,
		"customer": {"name": "Ana Pérez", "national_id": "2X"},
		"vehicle": {"make": "Seat", "plate": "1234 ABC", "registration_date": "2019-06-01T00:00:00Z"},
		"economics": {"gross_price": "20000.50", "tax_rate": 10, "payment_method": "financed"}
	}`)
	doc, err := DecodeDocument(KindProformaInvoice, raw)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	p, ok := doc.(ProformaInvoice)
	if !ok {
		t.Fatalf("decoded %T", doc)
	}

	want := ProformaInvoice{
		InvoiceBody: InvoiceBody{
			Customer: Party{Name: "Ana Pérez", NationalID: "2X"},
			Vehicle:  Vehicle{Make: "Seat", Plate: "1234 ABC", RegistrationDate: NewDate(2019, time.June, 1)},
			Economics: EconomicConditions{
				GrossPrice:    decimal.RequireFromString("20000.50"),
				TaxRate:       decimal.NewNullDecimal(decimal.NewFromInt(10)),
				PaymentMethod: PaymentFinanced,
			},
			Date: NewDate(2025, time.March, 5),
		},
		Number:           "PF-2025-0001",
		ValidityDays:     15,
		SuggestedDeposit: decimal.NewNullDecimal(decimal.NewFromInt(500)),
	}
	opt := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(want, p, opt); diff != "" {
		t.Fatalf("decoded (-want +got):\n%s", diff)
	}
	if p.Kind() != KindProformaInvoice {
		t.Fatalf("kind = %q", p.Kind())
	}
}

func TestDecodeDocumentErrors(t *testing.T) {
	if _, err := DecodeDocument("receipt", []byte(`{}`)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("unknown kind: %v", err)
	}
	if _, err := DecodeDocument(KindInvoice, []byte(`{"date": "05/03/2025"}`)); err == nil {
		t.Error("expected a date error")
	}
	if _, err := DecodeDocument(KindDepositAgreement, []byte(`[`)); err == nil {
		t.Error("expected a syntax error")
	}
	for _, kind := range []DocumentKind{KindPurchaseContract, KindInvoice, KindProformaInvoice} {
		for _, rate := range []string{"-100", "-1", "100"} {
			raw := []byte(`{"economics": {"gross_price": "1000", "tax_rate": "` + rate + `"}}`)
			if _, err := DecodeDocument(kind, raw); !errors.Is(err, ErrInvalidTaxRate) {
				t.Errorf("%s with rate %s: %v", kind, rate, err)
			}
		}
	}
	if _, err := DecodeDocument(KindInvoice, []byte(`{"economics": {"tax_rate": "10"}}`)); err != nil {
		t.Errorf("reduced rate rejected: %v", err)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.March, 5)
	out, err := d.MarshalJSON()
	if err != nil || string(out) != `"2025-03-05"` {
		t.Fatalf("MarshalJSON = %s, %v", out, err)
	}
	var zero Date
	if out, _ := zero.MarshalJSON(); string(out) != "null" {
		t.Fatalf("zero date = %s", out)
	}
	if got := d.AddDays(30).String(); got != "2025-04-04" {
		t.Fatalf("AddDays = %s", got)
	}
}

func TestPartyNames(t *testing.T) {
	person := Party{Name: " Ana Pérez ", NationalID: "2X"}
	company := Party{Name: "Luis Gómez", NationalID: "1Z", IsCompany: true, CompanyName: "Prueba SL", TaxID: "B1"}
	incomplete := Party{Name: "Luis Gómez", NationalID: "1Z", IsCompany: true}

	tests := []struct {
		party       Party
		name, legal string
	}{
		{person, "Ana Pérez", "2X"},
		{company, "Prueba SL", "B1"},
		{incomplete, "Luis Gómez", "1Z"},
	}
	for _, tt := range tests {
		if got := tt.party.DisplayName(); got != tt.name {
			t.Errorf("DisplayName = %q, want %q", got, tt.name)
		}
		if got := tt.party.LegalID(); got != tt.legal {
			t.Errorf("LegalID = %q, want %q", got, tt.legal)
		}
	}

	addr := Address{Street: "Calle Mayor 1", PostalCode: "28001", Locality: "Madrid", Province: "Madrid"}
	if got := addr.String(); got != "Calle Mayor 1, 28001 Madrid" {
		t.Errorf("address = %q", got)
	}
}

func TestPrincipalCanIssue(t *testing.T) {
	for role, want := range map[UserRole]bool{
		UserRoleAdmin:      true,
		UserRoleSales:      true,
		UserRoleAccounting: true,
		UserRoleViewer:     false,
	} {
		if got := (Principal{Role: role}).CanIssue(); got != want {
			t.Errorf("%s: CanIssue = %v", role, got)
		}
	}
}
