package documents_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nurpe/dealer-docs/internal/layout"
	"github.com/nurpe/dealer-docs/internal/model"
)

var testDate = model.NewDate(2025, time.March, 5)

func testStyle() layout.Style {
	style := layout.DefaultStyle()
	style.Brand = layout.Branding{
		CompanyName: "Automóviles Prueba SL",
		Address:     "Calle Mayor 1, 28001 Madrid",
		Contact:     "910 000 000",
		TaxID:       "B12345678",
	}
	return style
}

func seller() model.Party {
	return model.Party{
		Name:        "Luis Gómez",
		NationalID:  "12345678Z",
		IsCompany:   true,
		CompanyName: "Automóviles Prueba SL",
		TaxID:       "B12345678",
		Address:     model.Address{Street: "Calle Mayor 1", PostalCode: "28001", Locality: "Madrid"},
	}
}

func buyer() model.Party {
	return model.Party{
		Name:       "Ana Pérez",
		NationalID: "87654321X",
		Address:    model.Address{Street: "Avenida Sol 3", PostalCode: "41001", Locality: "Sevilla"},
		Phone:      "600 000 000",
	}
}

func vehicle() model.Vehicle {
	return model.Vehicle{
		Make:     "Seat",
		Model:    "León",
		Trim:     "FR",
		Plate:    "1234 ABC",
		VIN:      "VSSZZZ5FZNR000001",
		Odometer: 45000,
	}
}

func conditions(gross string) model.EconomicConditions {
	return model.EconomicConditions{
		GrossPrice:    decimal.RequireFromString(gross),
		PaymentMethod: model.PaymentTransfer,
		BankAccount:   "ES91 2100 0418 4502 0005 1332",
	}
}

func purchase() model.PurchaseContract {
	return model.PurchaseContract{
		Seller:        seller(),
		Buyer:         buyer(),
		Vehicle:       vehicle(),
		Economics:     conditions("12100"),
		Warranty:      model.WarrantyTerms{Months: 12, MileageCap: 20000},
		Accessories:   model.AccessoryChecklist{SpareWheel: true, SpareKeys: true},
		Documentation: model.DocumentationChecklist{RegistrationCertificate: true, TechnicalSheet: true},
		ContractDate:  testDate,
		ContractPlace: "Madrid",
		DeliveryDate:  model.NewDate(2025, time.March, 10),
		DeliveryPlace: "Concesionario",
	}
}

func deposit(amount string) model.DepositAgreement {
	return model.DepositAgreement{
		Seller:        seller(),
		Buyer:         buyer(),
		Vehicle:       vehicle(),
		DepositAmount: decimal.RequireFromString(amount),
		TotalPrice:    decimal.RequireFromString("15000"),
		BankAccount:   "ES91 2100 0418 4502 0005 1332",
		ContractDate:  testDate,
		ContractPlace: "Madrid",
		Deadline:      model.NewDate(2025, time.March, 20),
	}
}

func invoiceBody() model.InvoiceBody {
	return model.InvoiceBody{
		Issuer:    seller(),
		Customer:  buyer(),
		Vehicle:   vehicle(),
		Economics: conditions("12100"),
		Date:      testDate,
	}
}

func invoice() model.Invoice {
	return model.Invoice{InvoiceBody: invoiceBody(), Number: "F-2025-0007"}
}

func proforma() model.ProformaInvoice {
	body := invoiceBody()
	body.Economics = conditions("20000")
	return model.ProformaInvoice{InvoiceBody: body, Number: "PF-2025-0003"}
}
