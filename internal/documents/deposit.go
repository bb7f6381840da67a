package documents

import (
	"github.com/nurpe/dealer-docs/internal/clauses"
	"github.com/nurpe/dealer-docs/internal/economics"
	"github.com/nurpe/dealer-docs/internal/format"
	"github.com/nurpe/dealer-docs/internal/layout"
	"github.com/nurpe/dealer-docs/internal/model"
)

func (r *Renderer) renderDeposit(d model.DepositAgreement) (*Rendered, error) {
	date := r.dateOr(d.ContractDate)
	e, err := r.newEngine(clauses.DepositTitle, date)
	if err != nil {
		return nil, err
	}
	terms := economics.Deposit(d.TotalPrice, d.DepositAmount)

	e.AddPage()
	e.Title(clauses.DepositTitle)
	e.Paragraph(placeAndDate(d.ContractPlace, date), 0)

	e.SectionTitle("REUNIDOS", true)
	e.PersonData(d.Seller, "DE UNA PARTE, COMO VENDEDOR")
	e.PersonData(d.Buyer, "DE OTRA PARTE, COMO COMPRADOR")

	e.SectionTitle("MANIFIESTAN", true)
	e.Paragraph(clauses.DepositRecitals, 0)

	e.SectionTitle("VEHÍCULO RESERVADO", false)
	e.VehicleData(d.Vehicle)

	e.SectionTitle("CONDICIONES DE LA RESERVA", true)
	e.BoxedTable([]layout.BoxRow{
		{Label: "Precio total del vehículo", Value: format.Currency(terms.Total)},
		{Label: "Importe entregado como señal", Value: format.Currency(terms.Deposit)},
		{Label: "Resto a pagar", Value: format.Currency(terms.Remaining), Emphasis: true},
		{Label: "Cuenta bancaria", Value: d.BankAccount},
		{Label: "Fecha límite de formalización", Value: format.LongDate(d.Deadline.Time)},
	})
	e.OptionStrip("Señal sobre el precio:", presetLabels(), economics.MatchPreset(terms.Percent, economics.DepositPresets))
	e.Space(2)

	e.SectionTitle("CLÁUSULAS", true)
	list := clauses.Apply(clauses.DepositClauses(), clauses.Substitutions{
		clauses.Seller:       format.Value(d.Seller.DisplayName()),
		clauses.Buyer:        format.Value(d.Buyer.DisplayName()),
		clauses.VehicleName:  format.Value(d.Vehicle.Description()),
		clauses.Plate:        format.Value(d.Vehicle.Plate),
		clauses.VIN:          format.Value(d.Vehicle.VIN),
		clauses.Deadline:     format.LongDate(d.Deadline.Time),
		clauses.DepositValue: format.Currency(terms.Deposit),
	})
	for _, clause := range list {
		e.Clause(clause.Heading(), clause.Body)
	}

	e.SectionTitle("PROTECCIÓN DE DATOS", false)
	e.Paragraph(clauses.DataProtectionLong, 0)

	if d.ExtraClauses != "" {
		e.SectionTitle("OTRAS CONDICIONES", false)
		e.Paragraph(d.ExtraClauses, 0)
	}

	e.Space(3)
	e.Paragraph(clauses.Closing, 0)
	e.SignatureArea(signatory("EL VENDEDOR", d.Seller), signatory("EL COMPRADOR", d.Buyer))

	return r.finish(e, &Rendered{
		Kind:         model.KindDepositAgreement,
		FileName:     FileName(model.KindDepositAgreement, "", d.Vehicle.Plate, date),
		Breakdown:    economics.DeriveFromGross(d.TotalPrice, r.taxRate),
		CustomerName: d.Buyer.DisplayName(),
		Plate:        d.Vehicle.Plate,
	})
}

func presetLabels() []string {
	labels := make([]string, len(economics.DepositPresets))
	for i, p := range economics.DepositPresets {
		labels[i] = format.Percent(p)
	}
	return labels
}
