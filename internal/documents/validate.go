package documents

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nurpe/dealer-docs/internal/model"
)

var ErrValidation = errors.New("document validation failed")

// ValidationError names one missing or inconsistent field of a bundle.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validate checks the fields a document cannot meaningfully be issued
// without. All problems are reported together; the result matches
// ErrValidation when non-nil.
func Validate(doc model.Document) error {
	var v validator
	switch d := doc.(type) {
	case model.PurchaseContract:
		v.purchase(d)
	case *model.PurchaseContract:
		v.purchase(*d)
	case model.DepositAgreement:
		v.deposit(d)
	case *model.DepositAgreement:
		v.deposit(*d)
	case model.Invoice:
		v.invoice(d.InvoiceBody)
	case *model.Invoice:
		v.invoice(d.InvoiceBody)
	case model.ProformaInvoice:
		v.invoice(d.InvoiceBody)
	case *model.ProformaInvoice:
		v.invoice(d.InvoiceBody)
	default:
		return fmt.Errorf("%w: %T", model.ErrUnknownKind, doc)
	}
	return errors.Join(v.errs...)
}

// checkTaxRate is applied in lenient mode too: a rate outside [0, 100) cannot
// be rendered meaningfully.
func checkTaxRate(doc model.Document) error {
	var c model.EconomicConditions
	switch d := doc.(type) {
	case model.PurchaseContract:
		c = d.Economics
	case *model.PurchaseContract:
		c = d.Economics
	case model.Invoice:
		c = d.Economics
	case *model.Invoice:
		c = d.Economics
	case model.ProformaInvoice:
		c = d.Economics
	case *model.ProformaInvoice:
		c = d.Economics
	default:
		return nil
	}
	var v validator
	v.taxRate("economics.tax_rate", c)
	return errors.Join(v.errs...)
}

type validator struct {
	errs []error
}

func (v *validator) add(field, message string) {
	v.errs = append(v.errs, &ValidationError{Field: field, Message: message})
}

func (v *validator) purchase(c model.PurchaseContract) {
	v.party("seller", c.Seller)
	v.party("buyer", c.Buyer)
	if c.Representative != nil {
		v.party("representative", *c.Representative)
	}
	v.vehicle("vehicle", c.Vehicle)
	v.economics("economics", c.Economics)
}

func (v *validator) deposit(d model.DepositAgreement) {
	v.party("seller", d.Seller)
	v.party("buyer", d.Buyer)
	v.vehicle("vehicle", d.Vehicle)
	v.amount("total_price", d.TotalPrice)
	v.amount("deposit_amount", d.DepositAmount)
	if d.DepositAmount.GreaterThan(d.TotalPrice) {
		v.add("deposit_amount", "exceeds the total price")
	}
}

func (v *validator) invoice(b model.InvoiceBody) {
	v.party("issuer", b.Issuer)
	v.party("customer", b.Customer)
	v.vehicle("vehicle", b.Vehicle)
	v.economics("economics", b.Economics)
}

func (v *validator) economics(field string, c model.EconomicConditions) {
	v.amount(field+".gross_price", c.GrossPrice)
	v.taxRate(field+".tax_rate", c)
}

func (v *validator) taxRate(field string, c model.EconomicConditions) {
	if c.CheckTaxRate() != nil {
		v.add(field, "must be at least 0 and below 100")
	}
}

func (v *validator) party(field string, p model.Party) {
	if strings.TrimSpace(p.Name) == "" && !p.IsCompany {
		v.add(field+".name", "is required")
	}
	if strings.TrimSpace(p.NationalID) == "" && !p.IsCompany {
		v.add(field+".national_id", "is required")
	}
	if p.IsCompany {
		if strings.TrimSpace(p.CompanyName) == "" {
			v.add(field+".company_name", "is required for companies")
		}
		if strings.TrimSpace(p.TaxID) == "" {
			v.add(field+".tax_id", "is required for companies")
		}
	}
}

func (v *validator) vehicle(field string, veh model.Vehicle) {
	if strings.TrimSpace(veh.Plate) == "" && strings.TrimSpace(veh.VIN) == "" {
		v.add(field+".plate", "plate or VIN is required")
	}
}

// amount requires a positive value in whole cents, so that base plus tax
// always adds back up to it.
func (v *validator) amount(field string, value decimal.Decimal) {
	if !value.IsPositive() {
		v.add(field, "must be greater than zero")
		return
	}
	if !value.Equal(value.Round(2)) {
		v.add(field, "must not have more than two decimals")
	}
}
