package documents

import (
	"fmt"
	"io"
	"strings"

	"github.com/nurpe/dealer-docs/internal/economics"
	"github.com/nurpe/dealer-docs/internal/layout"
	"github.com/nurpe/dealer-docs/internal/model"
)

// Rendered is a finished document. Content, DataURL and Save are three
// representations of the same bytes.
type Rendered struct {
	Kind         model.DocumentKind
	Number       string
	FileName     string
	Pages        int
	Breakdown    economics.Breakdown
	CustomerName string
	Plate        string
	Content      []byte
}

func (r *Rendered) DataURL() string {
	return layout.DataURL(r.Content)
}

func (r *Rendered) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Content)
	return int64(n), err
}

func (r *Rendered) Save(path string) error {
	return layout.SaveFile(path, r.Content)
}

// FileName derives the download name for a document.
func FileName(kind model.DocumentKind, number, plate string, date model.Date) string {
	switch kind {
	case model.KindPurchaseContract:
		return fmt.Sprintf("contrato-compraventa-%s-%s.pdf", plateSlug(plate), date.Format("20060102"))
	case model.KindDepositAgreement:
		return fmt.Sprintf("contrato-arras-%s-%s.pdf", plateSlug(plate), date.Format("20060102"))
	case model.KindInvoice:
		return fmt.Sprintf("factura-%s.pdf", sanitizeFileName(number))
	case model.KindProformaInvoice:
		return fmt.Sprintf("proforma-%s.pdf", sanitizeFileName(number))
	default:
		return "documento.pdf"
	}
}

func plateSlug(plate string) string {
	if slug := sanitizeFileName(strings.ToUpper(plate)); slug != "" {
		return slug
	}
	return "vehiculo"
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
