package excel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/dealer-docs/internal/model"
)

const (
	summarySheet  = "Resumen"
	registerSheet = "Registro"
)

// RegisterGenerator writes the register of issued documents as a workbook.
type RegisterGenerator struct{}

func NewRegisterGenerator() *RegisterGenerator {
	return &RegisterGenerator{}
}

// Period is the inclusive date range a register covers.
type Period struct {
	From time.Time
	To   time.Time
}

func (g *RegisterGenerator) Generate(period Period, docs []model.GeneratedDocument) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, period, docs); err != nil {
		return nil, err
	}
	if _, err := file.NewSheet(registerSheet); err != nil {
		return nil, err
	}
	if err := g.writeRegister(file, docs); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var kindOrder = []model.DocumentKind{
	model.KindPurchaseContract,
	model.KindDepositAgreement,
	model.KindInvoice,
	model.KindProformaInvoice,
}

func (g *RegisterGenerator) writeSummary(file *excelize.File, period Period, docs []model.GeneratedDocument) error {
	amountStyle, err := file.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(summarySheet, cell, value)
	}

	set("A1", "Registro de documentos emitidos")
	set("A2", "Desde")
	set("B2", formatDate(period.From))
	set("A3", "Hasta")
	set("B3", formatDate(period.To))
	set("A4", "Documentos")
	set("B4", len(docs))

	tableRow := 6
	for i, header := range []string{"Tipo", "Cantidad", "Base imponible", "IVA", "Total"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	type totals struct {
		count            int
		base, tax, gross decimal.Decimal
	}
	byKind := make(map[model.DocumentKind]*totals, len(kindOrder))
	for _, kind := range kindOrder {
		byKind[kind] = &totals{}
	}
	for _, doc := range docs {
		t, ok := byKind[doc.Kind]
		if !ok {
			continue
		}
		t.count++
		t.base = t.base.Add(doc.TaxBase)
		t.tax = t.tax.Add(doc.TaxAmount)
		t.gross = t.gross.Add(doc.GrossPrice)
	}

	for i, kind := range kindOrder {
		row := tableRow + 1 + i
		t := byKind[kind]
		set(fmt.Sprintf("A%d", row), kindLabel(kind))
		set(fmt.Sprintf("B%d", row), t.count)
		set(fmt.Sprintf("C%d", row), t.base.InexactFloat64())
		set(fmt.Sprintf("D%d", row), t.tax.InexactFloat64())
		set(fmt.Sprintf("E%d", row), t.gross.InexactFloat64())
	}
	last := tableRow + len(kindOrder)
	_ = file.SetCellStyle(summarySheet, fmt.Sprintf("C%d", tableRow+1), fmt.Sprintf("E%d", last), amountStyle)

	_ = file.SetColWidth(summarySheet, "A", "A", 36)
	_ = file.SetColWidth(summarySheet, "B", "B", 12)
	_ = file.SetColWidth(summarySheet, "C", "E", 16)
	return nil
}

func (g *RegisterGenerator) writeRegister(file *excelize.File, docs []model.GeneratedDocument) error {
	amountStyle, err := file.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(registerSheet, cell, value)
	}

	headers := []string{
		"Fecha",
		"Tipo",
		"Número",
		"Cliente",
		"Matrícula",
		"Base imponible",
		"IVA",
		"Total",
		"Páginas",
		"Archivo",
		"SHA-256",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, doc := range docs {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), formatDateTime(doc.CreatedAt))
		set(fmt.Sprintf("B%d", row), kindLabel(doc.Kind))
		set(fmt.Sprintf("C%d", row), doc.Number)
		set(fmt.Sprintf("D%d", row), doc.CustomerName)
		set(fmt.Sprintf("E%d", row), doc.Plate)
		set(fmt.Sprintf("F%d", row), doc.TaxBase.InexactFloat64())
		set(fmt.Sprintf("G%d", row), doc.TaxAmount.InexactFloat64())
		set(fmt.Sprintf("H%d", row), doc.GrossPrice.InexactFloat64())
		set(fmt.Sprintf("I%d", row), doc.PageCount)
		set(fmt.Sprintf("J%d", row), doc.FileName)
		set(fmt.Sprintf("K%d", row), doc.ContentHash)
	}
	if len(docs) > 0 {
		_ = file.SetCellStyle(registerSheet, "F2", fmt.Sprintf("H%d", len(docs)+1), amountStyle)
	}

	_ = file.SetColWidth(registerSheet, "A", "A", 20)
	_ = file.SetColWidth(registerSheet, "B", "B", 30)
	_ = file.SetColWidth(registerSheet, "C", "C", 16)
	_ = file.SetColWidth(registerSheet, "D", "D", 32)
	_ = file.SetColWidth(registerSheet, "E", "E", 12)
	_ = file.SetColWidth(registerSheet, "F", "H", 14)
	_ = file.SetColWidth(registerSheet, "J", "J", 40)
	_ = file.SetColWidth(registerSheet, "K", "K", 66)
	return nil
}

func kindLabel(kind model.DocumentKind) string {
	switch kind {
	case model.KindPurchaseContract:
		return "Contrato de compraventa"
	case model.KindDepositAgreement:
		return "Contrato de arras"
	case model.KindInvoice:
		return "Factura"
	case model.KindProformaInvoice:
		return "Factura proforma"
	default:
		return string(kind)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006 15:04")
}
