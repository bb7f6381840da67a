package documents

import (
	"fmt"

	"github.com/nurpe/dealer-docs/internal/clauses"
	"github.com/nurpe/dealer-docs/internal/economics"
	"github.com/nurpe/dealer-docs/internal/format"
	"github.com/nurpe/dealer-docs/internal/layout"
	"github.com/nurpe/dealer-docs/internal/model"
)

func (r *Renderer) renderPurchase(c model.PurchaseContract) (*Rendered, error) {
	date := r.dateOr(c.ContractDate)
	e, err := r.newEngine(clauses.PurchaseTitle, date)
	if err != nil {
		return nil, err
	}
	b := r.breakdown(c.Economics)

	e.AddPage()
	e.Title(clauses.PurchaseTitle)
	e.Paragraph(placeAndDate(c.ContractPlace, date), 0)

	e.SectionTitle("REUNIDOS", true)
	e.PersonData(c.Seller, "DE UNA PARTE, COMO VENDEDOR")
	e.PersonData(c.Buyer, "DE OTRA PARTE, COMO COMPRADOR")
	if c.Representative != nil {
		e.PersonData(*c.Representative, "REPRESENTANTE")
	}

	e.SectionTitle("EXPONEN", true)
	e.Paragraph(clauses.PurchaseRecitals, 0)

	e.SectionTitle("VEHÍCULO OBJETO DEL CONTRATO", false)
	e.VehicleData(c.Vehicle)

	e.SectionTitle("ESTIPULACIONES", true)
	list := clauses.Apply(clauses.Purchase(), clauses.Substitutions{
		clauses.Seller:      format.Value(c.Seller.DisplayName()),
		clauses.Buyer:       format.Value(c.Buyer.DisplayName()),
		clauses.VehicleName: format.Value(c.Vehicle.Description()),
		clauses.Plate:       format.Value(c.Vehicle.Plate),
		clauses.VIN:         format.Value(c.Vehicle.VIN),
	})
	for _, clause := range list {
		e.Clause(clause.Heading(), clause.Body)
	}
	if c.ExtraClauses != "" {
		extra := clauses.Clause{Number: len(list) + 1, Title: "Otros pactos", Body: c.ExtraClauses}
		e.Clause(extra.Heading(), extra.Body)
	}

	e.SectionTitle("GARANTÍA", false)
	e.Paragraph(clauses.Warranty(c.Warranty.Months, c.Warranty.MileageCap, format.Integer), 0)
	if c.Warranty.Notes != "" {
		e.LabelValue("Observaciones", c.Warranty.Notes, 0)
	}

	e.SectionTitle("ACCESORIOS ENTREGADOS", false)
	e.Checklist(accessoryItems(c.Accessories), c.Accessories.Other)

	e.SectionTitle("DOCUMENTACIÓN ENTREGADA", false)
	e.Checklist(documentationItems(c.Documentation), c.Documentation.Other)

	e.SectionTitle("PROTECCIÓN DE DATOS", false)
	e.Paragraph(clauses.DataProtectionShort, 0)

	e.SectionTitle("CONDICIONES ECONÓMICAS", true)
	economicSummary(e, b)
	paymentLines(e, c.Economics)

	e.SectionTitle("ENTREGA", false)
	e.LabelValue("Fecha de entrega", format.LongDate(c.DeliveryDate.Time), 0)
	e.LabelValue("Lugar de entrega", c.DeliveryPlace, 0)
	e.Space(3)
	e.Paragraph(clauses.Closing, 0)

	e.SignatureArea(signatory("EL VENDEDOR", c.Seller), signatory("EL COMPRADOR", c.Buyer))

	return r.finish(e, &Rendered{
		Kind:         model.KindPurchaseContract,
		FileName:     FileName(model.KindPurchaseContract, "", c.Vehicle.Plate, date),
		Breakdown:    b,
		CustomerName: c.Buyer.DisplayName(),
		Plate:        c.Vehicle.Plate,
	})
}

func placeAndDate(place string, date model.Date) string {
	return fmt.Sprintf("En %s, a %s.", format.Value(place), format.LongDate(date.Time))
}

func economicSummary(e *layout.Engine, b economics.Breakdown) {
	e.EconomicTable([]layout.LineItem{
		{Concept: "Base imponible", Amount: b.TaxBase},
		{Concept: "IVA (" + format.Percent(b.TaxRate) + ")", Amount: b.TaxAmount},
	}, &layout.LineItem{Concept: "PRECIO TOTAL (IVA incluido)", Amount: b.TotalWithTax})
}

func paymentLines(e *layout.Engine, c model.EconomicConditions) {
	e.LabelValue("Forma de pago", c.PaymentMethod.Label(), 0)
	if c.BankAccount != "" {
		e.LabelValue("Cuenta bancaria", c.BankAccount, 0)
	}
	if c.PaymentNotes != "" {
		e.LabelValue("Observaciones", c.PaymentNotes, 0)
	}
	e.Space(3)
}

func signatory(role string, p model.Party) layout.Signatory {
	detail := ""
	if id := p.LegalID(); id != "" {
		detail = "NIF/CIF: " + id
	}
	name := p.DisplayName()
	if p.IsCompany && p.Name != "" {
		name = fmt.Sprintf("%s (p.p. %s)", p.DisplayName(), p.Name)
	}
	return layout.Signatory{Role: role, Name: name, Detail: detail}
}

func accessoryItems(a model.AccessoryChecklist) []layout.CheckItem {
	return []layout.CheckItem{
		{Label: "Rueda de repuesto", Checked: a.SpareWheel},
		{Label: "Herramientas", Checked: a.ToolKit},
		{Label: "Gato", Checked: a.Jack},
		{Label: "Segunda llave", Checked: a.SpareKeys},
		{Label: "Manual del propietario", Checked: a.OwnerManual},
	}
}

func documentationItems(d model.DocumentationChecklist) []layout.CheckItem {
	return []layout.CheckItem{
		{Label: "Permiso de circulación", Checked: d.RegistrationCertificate},
		{Label: "Ficha técnica", Checked: d.TechnicalSheet},
		{Label: "Informe de ITV en vigor", Checked: d.InspectionReport},
		{Label: "Recibo del impuesto de circulación", Checked: d.RoadTaxReceipt},
		{Label: "Libro de mantenimiento", Checked: d.ServiceBook},
	}
}
