package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownKind = errors.New("unknown document kind")

type DocumentKind string

const (
	KindPurchaseContract DocumentKind = "purchase_contract"
	KindDepositAgreement DocumentKind = "deposit_agreement"
	KindInvoice          DocumentKind = "invoice"
	KindProformaInvoice  DocumentKind = "proforma_invoice"
)

func ParseDocumentKind(raw string) (DocumentKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "purchase_contract", "purchase-contract", "purchase", "contract", "compraventa":
		return KindPurchaseContract, nil
	case "deposit_agreement", "deposit-agreement", "deposit", "arras":
		return KindDepositAgreement, nil
	case "invoice", "factura":
		return KindInvoice, nil
	case "proforma_invoice", "proforma-invoice", "proforma":
		return KindProformaInvoice, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
}

// Document is one of the four generation bundles. The set is closed: only the
// types in this package implement it.
type Document interface {
	Kind() DocumentKind
	document()
}

type PurchaseContract struct {
	Seller         Party                  `json:"seller"`
	Buyer          Party                  `json:"buyer"`
	Representative *Party                 `json:"representative,omitempty"`
	Vehicle        Vehicle                `json:"vehicle"`
	Economics      EconomicConditions     `json:"economics"`
	Warranty       WarrantyTerms          `json:"warranty"`
	Accessories    AccessoryChecklist     `json:"accessories"`
	Documentation  DocumentationChecklist `json:"documentation"`
	ContractDate   Date                   `json:"contract_date"`
	ContractPlace  string                 `json:"contract_place"`
	DeliveryDate   Date                   `json:"delivery_date"`
	DeliveryPlace  string                 `json:"delivery_place"`
	ExtraClauses   string                 `json:"extra_clauses"`
}

type DepositAgreement struct {
	Seller        Party           `json:"seller"`
	Buyer         Party           `json:"buyer"`
	Vehicle       Vehicle         `json:"vehicle"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	BankAccount   string          `json:"bank_account"`
	ContractDate  Date            `json:"contract_date"`
	ContractPlace string          `json:"contract_place"`
	Deadline      Date            `json:"deadline"`
	ExtraClauses  string          `json:"extra_clauses"`
}

// InvoiceBody holds the fields an invoice and a pro-forma invoice share.
type InvoiceBody struct {
	Issuer    Party              `json:"issuer"`
	Customer  Party              `json:"customer"`
	Vehicle   Vehicle            `json:"vehicle"`
	Economics EconomicConditions `json:"economics"`
	Date      Date               `json:"date"`
	ExtraNote string             `json:"extra_note"`
}

type Invoice struct {
	InvoiceBody
	Number string `json:"number"`
}

type ProformaInvoice struct {
	InvoiceBody
	Number           string              `json:"number"`
	ValidityDays     int                 `json:"validity_days"`
	SuggestedDeposit decimal.NullDecimal `json:"suggested_deposit"`
}

func (PurchaseContract) Kind() DocumentKind { return KindPurchaseContract }
func (DepositAgreement) Kind() DocumentKind { return KindDepositAgreement }
func (Invoice) Kind() DocumentKind          { return KindInvoice }
func (ProformaInvoice) Kind() DocumentKind  { return KindProformaInvoice }

func (PurchaseContract) document() {}
func (DepositAgreement) document() {}
func (Invoice) document()          {}
func (ProformaInvoice) document()  {}

// DecodeDocument decodes a JSON data bundle into the variant named by kind.
func DecodeDocument(kind DocumentKind, raw []byte) (Document, error) {
	switch kind {
	case KindPurchaseContract:
		var doc PurchaseContract
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode purchase contract: %w", err)
		}
		if err := doc.Economics.CheckTaxRate(); err != nil {
			return nil, fmt.Errorf("decode purchase contract: %w", err)
		}
		return doc, nil
	case KindDepositAgreement:
		var doc DepositAgreement
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode deposit agreement: %w", err)
		}
		return doc, nil
	case KindInvoice:
		var doc Invoice
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode invoice: %w", err)
		}
		if err := doc.Economics.CheckTaxRate(); err != nil {
			return nil, fmt.Errorf("decode invoice: %w", err)
		}
		return doc, nil
	case KindProformaInvoice:
		var doc ProformaInvoice
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode proforma invoice: %w", err)
		}
		if err := doc.Economics.CheckTaxRate(); err != nil {
			return nil, fmt.Errorf("decode proforma invoice: %w", err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
