package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/dealer-docs/internal/model"
)

func TestGenerateRegister(t *testing.T) {
	created := time.Date(2025, time.March, 5, 10, 30, 0, 0, time.UTC)
	docs := []model.GeneratedDocument{
		{
			ID: uuid.New(), Kind: model.KindInvoice, Number: "F-2025-0001", FileName: "factura-F-2025-0001.pdf",
			ContentHash: "abc", PageCount: 1, CustomerName: "Ana Pérez", Plate: "1234 ABC", CreatedAt: created,
			GrossPrice: decimal.NewFromInt(12100), TaxBase: decimal.NewFromInt(10000), TaxAmount: decimal.NewFromInt(2100),
		},
		{
			ID: uuid.New(), Kind: model.KindInvoice, Number: "F-2025-0002", FileName: "factura-F-2025-0002.pdf",
			ContentHash: "def", PageCount: 1, CustomerName: "Juan Ruiz", CreatedAt: created.Add(time.Hour),
			GrossPrice: decimal.NewFromInt(1210), TaxBase: decimal.NewFromInt(1000), TaxAmount: decimal.NewFromInt(210),
		},
		{
			ID: uuid.New(), Kind: model.KindPurchaseContract, FileName: "contrato.pdf", ContentHash: "ghi",
			PageCount: 3, CreatedAt: created,
		},
	}
	period := Period{From: created, To: created.AddDate(0, 0, 7)}

	content, err := NewRegisterGenerator().Generate(period, docs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer file.Close()

	if diff := cmp.Diff([]string{"Resumen", "Registro"}, file.GetSheetList()); diff != "" {
		t.Fatalf("sheets (-want +got):\n%s", diff)
	}

	cell := func(sheet, ref string) string {
		v, err := file.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s, %s): %v", sheet, ref, err)
		}
		return v
	}

	if got := cell("Resumen", "B2"); got != "05/03/2025" {
		t.Errorf("from = %q", got)
	}
	if got := cell("Resumen", "B4"); got != "3" {
		t.Errorf("count = %q", got)
	}
	// invoices are the third kind row
	if got := cell("Resumen", "A9"); got != "Factura" {
		t.Errorf("kind label = %q", got)
	}
	if got := cell("Resumen", "B9"); got != "2" {
		t.Errorf("invoice count = %q", got)
	}

	rows, err := file.GetRows("Registro")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want header + 3", len(rows))
	}
	if diff := cmp.Diff([]string{"05/03/2025 10:30", "Factura", "F-2025-0001", "Ana Pérez", "1234 ABC"}, rows[1][:5]); diff != "" {
		t.Errorf("first row (-want +got):\n%s", diff)
	}
	if got := rows[3][10]; got != "ghi" {
		t.Errorf("hash = %q", got)
	}
}

func TestGenerateEmptyRegister(t *testing.T) {
	content, err := NewRegisterGenerator().Generate(Period{}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	rows, err := file.GetRows("Registro")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want only the header", len(rows))
	}
}
