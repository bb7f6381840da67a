package documents

import (
	"context"
	"fmt"
	"strings"

	"github.com/nurpe/dealer-docs/internal/clauses"
	"github.com/nurpe/dealer-docs/internal/economics"
	"github.com/nurpe/dealer-docs/internal/format"
	"github.com/nurpe/dealer-docs/internal/layout"
	"github.com/nurpe/dealer-docs/internal/model"
	"github.com/nurpe/dealer-docs/internal/numbering"
)

// invoiceHooks are the points where a pro-forma differs from an invoice.
type invoiceHooks struct {
	afterTitle  func(e *layout.Engine)
	afterTotals func(e *layout.Engine, b economics.Breakdown)
	closing     func(e *layout.Engine)
}

func (r *Renderer) renderInvoice(ctx context.Context, numbers numbering.Generator, inv model.Invoice) (*Rendered, error) {
	date := r.dateOr(inv.Date)
	number, err := assignNumber(ctx, numbers, inv.Number, r.invoicePrefix, date)
	if err != nil {
		return nil, err
	}
	return r.renderInvoiceBody(inv.InvoiceBody, clauses.InvoiceTitle, number, date, model.KindInvoice, invoiceHooks{
		closing: func(e *layout.Engine) {
			e.Rule()
			e.Paragraph(clauses.InvoiceFootnote, 0)
		},
	})
}

func (r *Renderer) renderProforma(ctx context.Context, numbers numbering.Generator, p model.ProformaInvoice) (*Rendered, error) {
	date := r.dateOr(p.Date)
	number, err := assignNumber(ctx, numbers, p.Number, r.proformaPrefix, date)
	if err != nil {
		return nil, err
	}
	days := p.ValidityDays
	if days <= 0 {
		days = r.validityDays
	}

	return r.renderInvoiceBody(p.InvoiceBody, clauses.ProformaTitle, number, date, model.KindProformaInvoice, invoiceHooks{
		afterTitle: func(e *layout.Engine) {
			e.Stamp(clauses.ProformaBanner)
		},
		afterTotals: func(e *layout.Engine, b economics.Breakdown) {
			suggested := economics.SuggestedDeposit(b.TotalWithTax, p.SuggestedDeposit)
			line := "Importe sugerido: " + format.Currency(suggested)
			if terms := economics.Deposit(b.TotalWithTax, suggested); !terms.Percent.IsZero() {
				line += " (" + format.Percent(terms.Percent) + " del total)"
			}
			e.Callout("SEÑAL SUGERIDA PARA RESERVA", []string{line}, layout.ToneInfo)
		},
		closing: func(e *layout.Engine) {
			lines := make([]string, len(clauses.ProformaDisclaimers))
			for i, d := range clauses.ProformaDisclaimers {
				lines[i] = "• " + d
			}
			e.Callout("AVISO IMPORTANTE", lines, layout.ToneWarning)
			e.Paragraph(clauses.Validity(days, format.LongDate(date.AddDays(days).Time)), 0)
		},
	})
}

// assignNumber keeps a caller-supplied number and draws one otherwise.
func assignNumber(ctx context.Context, numbers numbering.Generator, given, prefix string, date model.Date) (string, error) {
	if n := strings.TrimSpace(given); n != "" {
		return n, nil
	}
	n, err := numbers.Next(ctx, prefix, date.Year())
	if err != nil {
		return "", fmt.Errorf("assign %s number: %w", prefix, err)
	}
	return n, nil
}

func (r *Renderer) renderInvoiceBody(body model.InvoiceBody, title, number string, date model.Date, kind model.DocumentKind, hooks invoiceHooks) (*Rendered, error) {
	e, err := r.newEngine(title+" "+number, date)
	if err != nil {
		return nil, err
	}
	b := r.breakdown(body.Economics)

	e.AddPage()
	e.Title(title)
	if hooks.afterTitle != nil {
		hooks.afterTitle(e)
	}
	e.LabelValue("Número", number, 0)
	e.LabelValue("Fecha", format.ShortDate(date.Time), 0)
	e.Space(3)

	e.SideBySide(
		layout.Column{Title: "EMISOR", Lines: partyLines(body.Issuer)},
		layout.Column{Title: "CLIENTE", Lines: partyLines(body.Customer)},
	)

	e.SectionTitle("DESCRIPCIÓN", true)
	e.BoxedTable(vehicleRows(body.Vehicle))

	e.SectionTitle("IMPORTES", true)
	e.BoxedTable([]layout.BoxRow{
		{Label: "Base imponible", Value: format.Currency(b.TaxBase)},
		{Label: "IVA (" + format.Percent(b.TaxRate) + ")", Value: format.Currency(b.TaxAmount)},
		{Label: "TOTAL", Value: format.Currency(b.TotalWithTax), Emphasis: true},
	})
	if hooks.afterTotals != nil {
		hooks.afterTotals(e, b)
	}

	e.SectionTitle("FORMA DE PAGO", false)
	paymentLines(e, body.Economics)

	if body.ExtraNote != "" {
		e.SectionTitle("OBSERVACIONES", false)
		e.Paragraph(body.ExtraNote, 0)
	}
	if hooks.closing != nil {
		hooks.closing(e)
	}

	return r.finish(e, &Rendered{
		Kind:         kind,
		Number:       number,
		FileName:     FileName(kind, number, body.Vehicle.Plate, date),
		Breakdown:    b,
		CustomerName: body.Customer.DisplayName(),
		Plate:        body.Vehicle.Plate,
	})
}

func partyLines(p model.Party) []string {
	lines := []string{format.Value(p.DisplayName())}
	if id := p.LegalID(); id != "" {
		label := "NIF"
		if p.IsCompany {
			label = "CIF"
		}
		lines = append(lines, label+": "+id)
	}
	if p.IsCompany && p.Name != "" {
		lines = append(lines, "Repr.: "+p.Name)
	}
	if addr := p.Address.String(); addr != "" {
		lines = append(lines, addr)
	}
	if p.Phone != "" {
		lines = append(lines, "Tel.: "+p.Phone)
	}
	if p.Email != "" {
		lines = append(lines, p.Email)
	}
	return lines
}

func vehicleRows(v model.Vehicle) []layout.BoxRow {
	rows := []layout.BoxRow{
		{Label: "Vehículo", Value: format.Value(v.Description())},
		{Label: "Matrícula", Value: format.Value(v.Plate)},
		{Label: "Número de bastidor", Value: format.Value(v.VIN)},
	}
	if v.Odometer > 0 {
		rows = append(rows, layout.BoxRow{Label: "Kilometraje", Value: format.Integer(v.Odometer) + " km"})
	}
	if !v.RegistrationDate.IsZero() {
		rows = append(rows, layout.BoxRow{Label: "Primera matriculación", Value: format.ShortDate(v.RegistrationDate.Time)})
	}
	return rows
}
