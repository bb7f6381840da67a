package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/dealer-docs/internal/layout"
)

type Options struct {
	Title   string
	Author  string
	Subject string
	// CreationDate is written to the document info. Fixing it makes the
	// output byte-for-byte reproducible.
	CreationDate time.Time
}

// Surface implements layout.Surface on top of gofpdf with the built-in core
// fonts. Text is translated from UTF-8 to cp1252 before drawing or measuring.
type Surface struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
	// set after SetPage; forces the next font selection into the page stream
	fontDirty bool
}

func NewSurface(opts Options) *Surface {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(true)
	if !opts.CreationDate.IsZero() {
		pdf.SetCreationDate(opts.CreationDate)
	}
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}
	if opts.Subject != "" {
		pdf.SetSubject(opts.Subject, true)
	}
	pdf.SetCreator("dealer-docs", true)

	return &Surface{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (s *Surface) AddPage() {
	s.pdf.AddPage()
}

func (s *Surface) PageCount() int {
	return s.pdf.PageCount()
}

func (s *Surface) SetPage(n int) {
	s.pdf.SetPage(n)
	s.fontDirty = true
}

func (s *Surface) SetFont(family, style string, size float64) {
	s.pdf.SetFont(family, style, size)
	if s.fontDirty {
		s.pdf.SetFontSize(size)
		s.fontDirty = false
	}
}

func (s *Surface) SetTextColor(c layout.Color) {
	s.pdf.SetTextColor(c.R, c.G, c.B)
}

func (s *Surface) SetFillColor(c layout.Color) {
	s.pdf.SetFillColor(c.R, c.G, c.B)
}

func (s *Surface) SetDrawColor(c layout.Color) {
	s.pdf.SetDrawColor(c.R, c.G, c.B)
}

func (s *Surface) SetLineWidth(width float64) {
	s.pdf.SetLineWidth(width)
}

func (s *Surface) Text(x, y float64, text string) {
	s.pdf.Text(x, y, s.translate(text))
}

func (s *Surface) Rect(x, y, w, h float64, style string) {
	s.pdf.Rect(x, y, w, h, style)
}

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1, y1, x2, y2)
}

// Image registers and draws PNG, JPEG or GIF data. A registration failure is
// cleared from the document so later drawing and output still succeed.
func (s *Surface) Image(name string, data []byte, x, y, w, h float64) error {
	imageType, err := detectImageType(data)
	if err != nil {
		return err
	}
	opts := gofpdf.ImageOptions{ImageType: imageType}
	info := s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if !s.pdf.Ok() {
		err := s.pdf.Error()
		s.pdf.ClearError()
		return fmt.Errorf("register image %s: %w", name, err)
	}
	if info == nil {
		return fmt.Errorf("register image %s: no image info", name)
	}
	s.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return nil
}

func detectImageType(data []byte) (string, error) {
	switch http.DetectContentType(data) {
	case "image/png":
		return "png", nil
	case "image/jpeg":
		return "jpg", nil
	case "image/gif":
		return "gif", nil
	default:
		return "", errors.New("unsupported image data")
	}
}

func (s *Surface) StringWidth(text string) float64 {
	return s.pdf.GetStringWidth(s.translate(text))
}

func (s *Surface) Output(w io.Writer) error {
	return s.pdf.Output(w)
}
