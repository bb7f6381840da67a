package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStyle is a fatal configuration error: no document can be produced
// with the rejected style or geometry.
var ErrInvalidStyle = errors.New("invalid layout style")

type Color struct {
	R, G, B int
}

func (c Color) valid() bool {
	return inByte(c.R) && inByte(c.G) && inByte(c.B)
}

func inByte(v int) bool { return v >= 0 && v <= 255 }

type FontSizes struct {
	Title    float64
	Section  float64
	Subtitle float64
	Body     float64
	Small    float64
}

// Branding is the company identity printed in the header band.
type Branding struct {
	CompanyName string
	Address     string
	Contact     string
	TaxID       string
	Logo        []byte
}

type Style struct {
	FontFamily string
	Sizes      FontSizes

	Primary   Color
	OnPrimary Color
	Accent    Color
	Text      Color
	Muted     Color
	Shade     Color
	Rule      Color
	Highlight Color
	Warning   Color
	WarnShade Color

	Brand Branding
}

func DefaultStyle() Style {
	return Style{
		FontFamily: "Helvetica",
		Sizes: FontSizes{
			Title:    15,
			Section:  11,
			Subtitle: 10.5,
			Body:     9.5,
			Small:    8,
		},
		Primary:   Color{R: 22, G: 54, B: 92},
		OnPrimary: Color{R: 255, G: 255, B: 255},
		Accent:    Color{R: 41, G: 121, B: 186},
		Text:      Color{R: 33, G: 33, B: 33},
		Muted:     Color{R: 110, G: 110, B: 110},
		Shade:     Color{R: 240, G: 243, B: 247},
		Rule:      Color{R: 190, G: 198, B: 208},
		Highlight: Color{R: 220, G: 233, B: 247},
		Warning:   Color{R: 176, G: 42, B: 32},
		WarnShade: Color{R: 253, G: 236, B: 234},
	}
}

func (s Style) Validate() error {
	var problems []string
	if strings.TrimSpace(s.FontFamily) == "" {
		problems = append(problems, "font family is empty")
	}
	sizes := map[string]float64{
		"title":    s.Sizes.Title,
		"section":  s.Sizes.Section,
		"subtitle": s.Sizes.Subtitle,
		"body":     s.Sizes.Body,
		"small":    s.Sizes.Small,
	}
	for _, name := range []string{"title", "section", "subtitle", "body", "small"} {
		if size := sizes[name]; size <= 0 || size > 72 {
			problems = append(problems, fmt.Sprintf("%s font size %.1f out of range", name, size))
		}
	}
	colors := []Color{s.Primary, s.OnPrimary, s.Accent, s.Text, s.Muted, s.Shade, s.Rule, s.Highlight, s.Warning, s.WarnShade}
	for _, c := range colors {
		if !c.valid() {
			problems = append(problems, fmt.Sprintf("color %v out of range", c))
			break
		}
	}
	if strings.TrimSpace(s.Brand.CompanyName) == "" {
		problems = append(problems, "company name is empty")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidStyle, strings.Join(problems, "; "))
	}
	return nil
}

// Geometry is the fixed page frame in millimetres.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	HeaderHeight float64
	FooterOffset float64
}

// A4 is portrait A4 with 20mm margins.
func A4() Geometry {
	return Geometry{
		PageWidth:    210,
		PageHeight:   297,
		MarginLeft:   20,
		MarginRight:  20,
		MarginTop:    20,
		MarginBottom: 20,
		HeaderHeight: 30,
		FooterOffset: 10,
	}
}

func (g Geometry) Validate() error {
	if g.PageWidth <= 0 || g.PageHeight <= 0 {
		return fmt.Errorf("%w: page size %.1fx%.1f", ErrInvalidStyle, g.PageWidth, g.PageHeight)
	}
	if g.PageWidth-g.MarginLeft-g.MarginRight <= 0 {
		return fmt.Errorf("%w: margins leave no content width", ErrInvalidStyle)
	}
	if max(g.HeaderHeight, g.MarginTop)+g.MarginBottom >= g.PageHeight {
		return fmt.Errorf("%w: header and margins leave no content height", ErrInvalidStyle)
	}
	return nil
}
