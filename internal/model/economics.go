package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidTaxRate = errors.New("tax rate must be at least 0 and below 100")

var maxTaxRate = decimal.NewFromInt(100)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentFinanced PaymentMethod = "financed"
	PaymentMixed    PaymentMethod = "mixed"
)

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Efectivo"
	case PaymentTransfer:
		return "Transferencia bancaria"
	case PaymentFinanced:
		return "Financiación"
	case PaymentMixed:
		return "Mixto"
	default:
		return "—"
	}
}

// EconomicConditions carries the entered, tax-inclusive price. Base, tax and
// total are always derived from GrossPrice, never entered.
type EconomicConditions struct {
	GrossPrice    decimal.Decimal     `json:"gross_price"`
	TaxRate       decimal.NullDecimal `json:"tax_rate"`
	PaymentMethod PaymentMethod       `json:"payment_method"`
	BankAccount   string              `json:"bank_account"`
	PaymentNotes  string              `json:"payment_notes"`
}

// CheckTaxRate rejects a supplied rate outside [0, 100). An absent rate is
// valid; the deployment default applies.
func (c EconomicConditions) CheckTaxRate() error {
	if !c.TaxRate.Valid {
		return nil
	}
	if rate := c.TaxRate.Decimal; rate.IsNegative() || rate.GreaterThanOrEqual(maxTaxRate) {
		return fmt.Errorf("%w: %s", ErrInvalidTaxRate, rate)
	}
	return nil
}

type WarrantyTerms struct {
	Months     int    `json:"months"`
	MileageCap int    `json:"mileage_cap"`
	Notes      string `json:"notes"`
}

type AccessoryChecklist struct {
	SpareWheel  bool   `json:"spare_wheel"`
	ToolKit     bool   `json:"tool_kit"`
	Jack        bool   `json:"jack"`
	SpareKeys   bool   `json:"spare_keys"`
	OwnerManual bool   `json:"owner_manual"`
	Other       string `json:"other"`
}

type DocumentationChecklist struct {
	RegistrationCertificate bool   `json:"registration_certificate"`
	TechnicalSheet          bool   `json:"technical_sheet"`
	InspectionReport        bool   `json:"inspection_report"`
	RoadTaxReceipt          bool   `json:"road_tax_receipt"`
	ServiceBook             bool   `json:"service_book"`
	Other                   string `json:"other"`
}
