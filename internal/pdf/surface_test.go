package pdf

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nurpe/dealer-docs/internal/layout"
)

func render(t *testing.T, created time.Time) []byte {
	t.Helper()
	s := NewSurface(Options{Title: "Prueba", CreationDate: created})
	s.AddPage()
	s.SetFont("Helvetica", "B", 12)
	s.SetTextColor(layout.Color{R: 10, G: 20, B: 30})
	s.Text(20, 30, "Señal de reserva: 1.500,00 €")
	s.SetFillColor(layout.Color{R: 200, G: 200, B: 200})
	s.Rect(20, 40, 50, 10, layout.FillDraw)
	s.AddPage()
	s.Line(20, 20, 190, 20)
	s.SetPage(1)
	s.SetFont("Helvetica", "", 8)
	s.Text(100, 287, "Página 1 de 2")

	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
	return buf.Bytes()
}

func TestSurfaceOutput(t *testing.T) {
	created := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	out := render(t, created)
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %.8q", out)
	}
	if !bytes.Equal(out, render(t, created)) {
		t.Fatal("same drawing calls with a fixed creation date must produce identical bytes")
	}
}

func TestSurfacePageSwitching(t *testing.T) {
	s := NewSurface(Options{})
	s.AddPage()
	s.AddPage()
	s.AddPage()
	if s.PageCount() != 3 {
		t.Fatalf("PageCount = %d", s.PageCount())
	}
	s.SetPage(2)
	s.SetFont("Helvetica", "", 10)
	s.Text(10, 10, "x")
	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		t.Fatal(err)
	}
}

func TestSurfaceRejectsBrokenImage(t *testing.T) {
	s := NewSurface(Options{})
	s.AddPage()
	if err := s.Image("logo", []byte("definitely not an image"), 10, 10, 20, 20); err == nil {
		t.Fatal("expected an error for unsupported data")
	}
	broken := append([]byte("\x89PNG\r\n\x1a\n"), []byte("truncated")...)
	if err := s.Image("logo", broken, 10, 10, 20, 20); err == nil {
		t.Fatal("expected an error for a truncated PNG")
	}
	s.SetFont("Helvetica", "", 10)
	s.Text(10, 40, "still drawing")
	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		t.Fatalf("surface unusable after image failure: %v", err)
	}
}

func TestStringWidthUsesCurrentFont(t *testing.T) {
	s := NewSurface(Options{})
	s.AddPage()
	s.SetFont("Helvetica", "", 10)
	small := s.StringWidth("Contrato")
	s.SetFont("Helvetica", "", 20)
	large := s.StringWidth("Contrato")
	if large <= small || small <= 0 {
		t.Fatalf("widths small=%.2f large=%.2f", small, large)
	}
	if w := s.StringWidth(strings.Repeat("€", 3)); w <= 0 {
		t.Fatalf("euro sign width = %.2f", w)
	}
}
