package layout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nurpe/dealer-docs/internal/format"
	"github.com/nurpe/dealer-docs/internal/model"
)

const (
	titleHeight     = 12
	sectionHeight   = 8
	subtitleHeight  = 6
	tableRowHeight  = 7
	signatureHeight = 44
)

type Field struct {
	Label string
	Value string
}

type LineItem struct {
	Concept string
	Amount  decimal.Decimal
}

type CheckItem struct {
	Label   string
	Checked bool
}

type BoxRow struct {
	Label    string
	Value    string
	Emphasis bool
}

type Column struct {
	Title string
	Lines []string
}

type Signatory struct {
	Role   string
	Name   string
	Detail string
}

type Tone int

const (
	ToneInfo Tone = iota
	ToneWarning
)

// Title draws the centered document title.
func (e *Engine) Title(text string) {
	e.CheckPageBreak(titleHeight)
	s := e.style
	e.useFont("B", s.Sizes.Title, s.Primary)
	e.textCenter(e.geo.MarginLeft, e.ContentWidth(), e.baseline(titleHeight*0.8), text)
	e.cursorY += titleHeight
}

// Stamp draws a boxed, centered warning line.
func (e *Engine) Stamp(text string) {
	const h = 10
	e.CheckPageBreak(h + 2)
	s := e.style
	e.surface.SetFillColor(s.WarnShade)
	e.surface.SetDrawColor(s.Warning)
	e.surface.SetLineWidth(0.5)
	e.surface.Rect(e.geo.MarginLeft, e.cursorY, e.ContentWidth(), h, FillDraw)
	e.useFont("B", s.Sizes.Section, s.Warning)
	e.textCenter(e.geo.MarginLeft, e.ContentWidth(), e.cursorY+h*0.66, text)
	e.cursorY += h + blockGap
}

// SectionTitle draws a section heading, as a filled banner or as plain text
// over a rule. It keeps at least two body lines with the heading.
func (e *Engine) SectionTitle(text string, withBackground bool) {
	s := e.style
	e.CheckPageBreak(sectionHeight + 2*lineHeight(s.Sizes.Body))
	x, w := e.geo.MarginLeft, e.ContentWidth()
	if withBackground {
		e.surface.SetFillColor(s.Primary)
		e.surface.Rect(x, e.cursorY, w, sectionHeight-1, Fill)
		e.useFont("B", s.Sizes.Section, s.OnPrimary)
		e.surface.Text(x+3, e.cursorY+5, text)
	} else {
		e.useFont("B", s.Sizes.Section, s.Primary)
		e.surface.Text(x, e.cursorY+5, text)
		e.surface.SetDrawColor(s.Primary)
		e.surface.SetLineWidth(0.4)
		e.surface.Line(x, e.cursorY+sectionHeight-1.5, x+w, e.cursorY+sectionHeight-1.5)
	}
	e.cursorY += sectionHeight + 2
}

func (e *Engine) Subtitle(text string) {
	s := e.style
	e.CheckPageBreak(subtitleHeight + 2*lineHeight(s.Sizes.Body))
	e.useFont("B", s.Sizes.Subtitle, s.Primary)
	e.surface.Text(e.geo.MarginLeft, e.baseline(subtitleHeight), text)
	e.cursorY += subtitleHeight
}

// Paragraph word-wraps text to the content width, checking for a page break
// before every line.
func (e *Engine) Paragraph(text string, indent float64) {
	s := e.style
	lh := lineHeight(s.Sizes.Body)
	x := e.geo.MarginLeft + indent
	e.useFont("", s.Sizes.Body, s.Text)
	for _, line := range e.wrap(text, e.ContentWidth()-indent) {
		e.CheckPageBreak(lh)
		e.useFont("", s.Sizes.Body, s.Text)
		e.surface.Text(x, e.baseline(lh), line)
		e.cursorY += lh
	}
	e.cursorY += paragraphGap
}

// Clause keeps a numbered heading together with the first lines of its body.
func (e *Engine) Clause(heading, body string) {
	s := e.style
	lh := lineHeight(s.Sizes.Body)
	e.CheckPageBreak(lh * 3)
	e.useFont("B", s.Sizes.Body, s.Text)
	e.surface.Text(e.geo.MarginLeft, e.baseline(lh), heading)
	e.cursorY += lh
	e.Paragraph(body, 0)
}

// LabelValue writes "label: value" with a bold label; long values wrap under
// themselves.
func (e *Engine) LabelValue(label, value string, indent float64) {
	s := e.style
	lh := lineHeight(s.Sizes.Body)
	x := e.geo.MarginLeft + indent
	labelText := label + ": "

	e.useFont("B", s.Sizes.Body, s.Text)
	labelWidth := e.surface.StringWidth(labelText)
	e.useFont("", s.Sizes.Body, s.Text)
	lines := e.wrap(format.Value(value), e.ContentWidth()-indent-labelWidth)

	for i, line := range lines {
		e.CheckPageBreak(lh)
		if i == 0 {
			e.useFont("B", s.Sizes.Body, s.Text)
			e.surface.Text(x, e.baseline(lh), labelText)
		}
		e.useFont("", s.Sizes.Body, s.Text)
		e.surface.Text(x+labelWidth, e.baseline(lh), line)
		e.cursorY += lh
	}
}

// TwoColumnTable lays fields out two per row across the content width.
func (e *Engine) TwoColumnTable(fields []Field) {
	s := e.style
	x, w := e.geo.MarginLeft, e.ContentWidth()
	colWidth := w / 2
	labelWidth := colWidth * 0.42

	for i := 0; i < len(fields); i += 2 {
		e.CheckPageBreak(tableRowHeight)
		y := e.cursorY
		if (i/2)%2 == 0 {
			e.surface.SetFillColor(s.Shade)
			e.surface.Rect(x, y, w, tableRowHeight, Fill)
		}
		e.surface.SetDrawColor(s.Rule)
		e.surface.SetLineWidth(0.2)
		e.surface.Rect(x, y, w, tableRowHeight, Draw)

		for j := 0; j < 2 && i+j < len(fields); j++ {
			f := fields[i+j]
			cx := x + float64(j)*colWidth
			e.useFont("B", s.Sizes.Small, s.Muted)
			e.surface.Text(cx+2, e.baseline(tableRowHeight), e.fit(f.Label, labelWidth-3))
			e.useFont("", s.Sizes.Body, s.Text)
			e.surface.Text(cx+labelWidth, e.baseline(tableRowHeight), e.fit(format.Value(f.Value), colWidth-labelWidth-2))
		}
		e.cursorY += tableRowHeight
	}
	e.cursorY += blockGap
}

// EconomicTable draws concept/amount rows under a shaded header and an
// optional highlighted total. The header is repeated after a page break.
func (e *Engine) EconomicTable(items []LineItem, total *LineItem) {
	e.CheckPageBreak(tableRowHeight * 2)
	e.economicHeader()
	for i, item := range items {
		if e.CheckPageBreak(tableRowHeight) {
			e.economicHeader()
		}
		e.economicRow(item, i%2 == 1, false)
	}
	if total != nil {
		if e.CheckPageBreak(tableRowHeight) {
			e.economicHeader()
		}
		e.economicRow(*total, false, true)
	}
	e.cursorY += blockGap
}

func (e *Engine) economicHeader() {
	s := e.style
	x, w := e.geo.MarginLeft, e.ContentWidth()
	e.surface.SetFillColor(s.Primary)
	e.surface.Rect(x, e.cursorY, w, tableRowHeight, Fill)
	e.useFont("B", s.Sizes.Body, s.OnPrimary)
	e.surface.Text(x+2, e.baseline(tableRowHeight), "Concepto")
	e.textRight(x+w-2, e.baseline(tableRowHeight), "Importe")
	e.cursorY += tableRowHeight
}

func (e *Engine) economicRow(item LineItem, shaded, isTotal bool) {
	s := e.style
	x, w := e.geo.MarginLeft, e.ContentWidth()
	const amountWidth = 45

	switch {
	case isTotal:
		e.surface.SetFillColor(s.Highlight)
		e.surface.Rect(x, e.cursorY, w, tableRowHeight, Fill)
	case shaded:
		e.surface.SetFillColor(s.Shade)
		e.surface.Rect(x, e.cursorY, w, tableRowHeight, Fill)
	}
	e.surface.SetDrawColor(s.Rule)
	e.surface.SetLineWidth(0.2)
	e.surface.Rect(x, e.cursorY, w, tableRowHeight, Draw)

	style := ""
	if isTotal {
		style = "B"
	}
	e.useFont(style, s.Sizes.Body, s.Text)
	e.surface.Text(x+2, e.baseline(tableRowHeight), e.fit(item.Concept, w-amountWidth-4))
	e.textRight(x+w-2, e.baseline(tableRowHeight), format.Currency(item.Amount))
	e.cursorY += tableRowHeight
}

// PersonData writes a party block, switching labels for companies.
func (e *Engine) PersonData(p model.Party, title string) {
	e.Subtitle(title)
	if p.IsCompany {
		e.LabelValue("Razón social", p.CompanyName, 0)
		e.LabelValue("CIF", p.TaxID, 0)
		e.LabelValue("Representante", p.Name, 0)
		e.LabelValue("DNI/NIE del representante", p.NationalID, 0)
	} else {
		e.LabelValue("Nombre", p.Name, 0)
		e.LabelValue("DNI/NIE", p.NationalID, 0)
	}
	e.LabelValue("Domicilio", p.Address.String(), 0)
	if p.Phone != "" {
		e.LabelValue("Teléfono", p.Phone, 0)
	}
	if p.Email != "" {
		e.LabelValue("Email", p.Email, 0)
	}
	e.cursorY += blockGap
}

// VehicleData draws the fixed vehicle attribute table.
func (e *Engine) VehicleData(v model.Vehicle) {
	e.TwoColumnTable([]Field{
		{Label: "Marca", Value: v.Make},
		{Label: "Modelo", Value: v.Model},
		{Label: "Versión", Value: v.Trim},
		{Label: "Matrícula", Value: v.Plate},
		{Label: "Bastidor", Value: v.VIN},
		{Label: "Matriculación", Value: dateValue(v.RegistrationDate)},
		{Label: "Kilómetros", Value: positive(v.Odometer, "%s km")},
		{Label: "Combustible", Value: v.FuelType},
		{Label: "Color", Value: v.Color},
		{Label: "Potencia", Value: positive(v.PowerHP, "%s CV")},
		{Label: "Cilindrada", Value: positive(v.DisplacementCC, "%s cc")},
		{Label: "Plazas", Value: positive(v.Seats, "%s")},
		{Label: "Puertas", Value: positive(v.Doors, "%s")},
		{Label: "Última ITV", Value: dateValue(v.LastInspection)},
	})
}

func dateValue(d model.Date) string {
	if d.IsZero() {
		return ""
	}
	return format.ShortDate(d.Time)
}

func positive(v int, layout string) string {
	if v <= 0 {
		return ""
	}
	return fmt.Sprintf(layout, format.Integer(v))
}

// Checklist renders checkbox lines, two per row, plus an optional free-text line.
func (e *Engine) Checklist(items []CheckItem, other string) {
	s := e.style
	const rowHeight, box = 6.0, 3.5
	colWidth := e.ContentWidth() / 2

	for i := 0; i < len(items); i += 2 {
		e.CheckPageBreak(rowHeight)
		for j := 0; j < 2 && i+j < len(items); j++ {
			item := items[i+j]
			x := e.geo.MarginLeft + float64(j)*colWidth
			top := e.cursorY + (rowHeight-box)/2
			e.surface.SetDrawColor(s.Text)
			e.surface.SetLineWidth(0.3)
			e.surface.Rect(x, top, box, box, Draw)
			if item.Checked {
				e.useFont("B", s.Sizes.Small, s.Text)
				e.textCenter(x, box, top+box*0.82, "X")
			}
			e.useFont("", s.Sizes.Body, s.Text)
			e.surface.Text(x+box+2, e.baseline(rowHeight), item.Label)
		}
		e.cursorY += rowHeight
	}
	if other != "" {
		e.LabelValue("Otros", other, 0)
	}
	e.cursorY += blockGap
}

// BoxedTable draws label/value rows inside a single bordered box that is
// never split across pages.
func (e *Engine) BoxedTable(rows []BoxRow) {
	s := e.style
	x, w := e.geo.MarginLeft, e.ContentWidth()
	height := float64(len(rows))*tableRowHeight + 4
	e.CheckPageBreak(height)

	top := e.cursorY
	e.cursorY += 2
	for _, row := range rows {
		style, size := "", s.Sizes.Body
		if row.Emphasis {
			e.surface.SetFillColor(s.Highlight)
			e.surface.Rect(x+1, e.cursorY, w-2, tableRowHeight, Fill)
			style, size = "B", s.Sizes.Subtitle
		}
		e.useFont(style, size, s.Text)
		e.surface.Text(x+4, e.baseline(tableRowHeight), row.Label)
		e.textRight(x+w-4, e.baseline(tableRowHeight), e.fit(format.Value(row.Value), w*0.55))
		e.cursorY += tableRowHeight
	}
	e.cursorY += 2

	e.surface.SetDrawColor(s.Primary)
	e.surface.SetLineWidth(0.5)
	e.surface.Rect(x, top, w, height, Draw)
	e.cursorY += blockGap
}

// OptionStrip draws a row of option chips with the selected one filled.
// A negative selected index highlights nothing.
func (e *Engine) OptionStrip(label string, options []string, selected int) {
	s := e.style
	const h, chip, gap = 8.0, 18.0, 3.0
	e.CheckPageBreak(h + 2)

	e.useFont("B", s.Sizes.Body, s.Text)
	e.surface.Text(e.geo.MarginLeft, e.baseline(h), label)
	x := e.geo.MarginLeft + e.surface.StringWidth(label) + 4

	for i, option := range options {
		e.surface.SetDrawColor(s.Accent)
		e.surface.SetLineWidth(0.3)
		if i == selected {
			e.surface.SetFillColor(s.Accent)
			e.surface.Rect(x, e.cursorY+1, chip, h-2, FillDraw)
			e.useFont("B", s.Sizes.Small, s.OnPrimary)
		} else {
			e.surface.Rect(x, e.cursorY+1, chip, h-2, Draw)
			e.useFont("", s.Sizes.Small, s.Muted)
		}
		e.textCenter(x, chip, e.baseline(h), option)
		x += chip + gap
	}
	e.cursorY += h + 2
}

// SideBySide draws two titled, bordered columns of equal height.
func (e *Engine) SideBySide(left, right Column) {
	s := e.style
	const gap, titleH = 6.0, 7.0
	lh := lineHeight(s.Sizes.Body)
	colWidth := (e.ContentWidth() - gap) / 2
	rows := max(len(left.Lines), len(right.Lines))
	height := titleH + float64(rows)*lh + 4
	e.CheckPageBreak(height)

	top := e.cursorY
	for i, col := range []Column{left, right} {
		x := e.geo.MarginLeft + float64(i)*(colWidth+gap)
		e.surface.SetFillColor(s.Shade)
		e.surface.Rect(x, top, colWidth, titleH, Fill)
		e.surface.SetDrawColor(s.Rule)
		e.surface.SetLineWidth(0.3)
		e.surface.Rect(x, top, colWidth, height, Draw)
		e.useFont("B", s.Sizes.Body, s.Primary)
		e.surface.Text(x+2, top+titleH*0.7, col.Title)

		e.useFont("", s.Sizes.Body, s.Text)
		y := top + titleH + 2
		for _, line := range col.Lines {
			e.surface.Text(x+2, y+lh*0.72, e.fit(line, colWidth-4))
			y += lh
		}
	}
	e.cursorY = top + height + blockGap
}

// Callout draws a shaded box with a bold title and wrapped lines.
func (e *Engine) Callout(title string, lines []string, tone Tone) {
	s := e.style
	fill, border, ink := s.Highlight, s.Accent, s.Primary
	if tone == ToneWarning {
		fill, border, ink = s.WarnShade, s.Warning, s.Warning
	}
	lh := lineHeight(s.Sizes.Body)
	x, w := e.geo.MarginLeft, e.ContentWidth()

	e.useFont("", s.Sizes.Body, s.Text)
	var wrapped []string
	for _, line := range lines {
		wrapped = append(wrapped, e.wrap(line, w-8)...)
	}
	height := 6 + lh + float64(len(wrapped))*lh + 3
	e.CheckPageBreak(height)

	top := e.cursorY
	e.surface.SetFillColor(fill)
	e.surface.SetDrawColor(border)
	e.surface.SetLineWidth(0.5)
	e.surface.Rect(x, top, w, height, FillDraw)

	e.cursorY = top + 3
	e.useFont("B", s.Sizes.Subtitle, ink)
	e.surface.Text(x+4, e.baseline(lh), title)
	e.cursorY += lh + 1

	e.useFont("", s.Sizes.Body, s.Text)
	for _, line := range wrapped {
		e.surface.Text(x+4, e.baseline(lh), line)
		e.cursorY += lh
	}
	e.cursorY = top + height + blockGap
}

// SignatureArea reserves room for two signature blocks side by side. The
// whole area moves to a new page when it does not fit.
func (e *Engine) SignatureArea(left, right Signatory) {
	s := e.style
	e.CheckPageBreak(signatureHeight)
	const gap = 10.0
	colWidth := (e.ContentWidth() - gap) / 2
	top := e.cursorY + 4

	for i, sig := range []Signatory{left, right} {
		x := e.geo.MarginLeft + float64(i)*(colWidth+gap)
		e.useFont("B", s.Sizes.Body, s.Text)
		e.surface.Text(x, top+4, sig.Role)
		e.surface.SetDrawColor(s.Text)
		e.surface.SetLineWidth(0.3)
		e.surface.Line(x, top+27, x+colWidth, top+27)
		e.useFont("", s.Sizes.Small, s.Muted)
		e.surface.Text(x, top+32, "Fdo.: "+format.Value(sig.Name))
		if sig.Detail != "" {
			e.surface.Text(x, top+36.5, sig.Detail)
		}
	}
	e.cursorY += signatureHeight
}

// Rule draws a thin horizontal separator.
func (e *Engine) Rule() {
	e.CheckPageBreak(3)
	e.surface.SetDrawColor(e.style.Rule)
	e.surface.SetLineWidth(0.2)
	y := e.cursorY + 1.5
	e.surface.Line(e.geo.MarginLeft, y, e.geo.PageWidth-e.geo.MarginRight, y)
	e.cursorY += 3
}
