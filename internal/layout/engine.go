// Package layout is the page-layout engine behind every printed document.
//
// An Engine owns one surface, a vertical cursor and the current page. Every
// primitive asks CheckPageBreak for the room it needs before drawing, so page
// breaks happen in exactly one place. Engines are not safe for concurrent use;
// build one per document.
package layout

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	ptToMM       = 0.3528
	headerGap    = 8
	paragraphGap = 2
	blockGap     = 4
)

type Engine struct {
	surface Surface
	style   Style
	geo     Geometry
	log     zerolog.Logger

	cursorY    float64
	page       int
	logoFailed bool

	finalized bool
	output    []byte
}

type Option func(*Engine)

func WithGeometry(g Geometry) Option {
	return func(e *Engine) { e.geo = g }
}

func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New validates style and geometry and returns an engine with no pages yet.
// The first primitive call opens page one.
func New(surface Surface, style Style, opts ...Option) (*Engine, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidStyle)
	}
	e := &Engine{
		surface: surface,
		style:   style,
		geo:     A4(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if err := e.geo.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Cursor is a snapshot of the engine position.
type Cursor struct {
	Page int
	Y    float64
}

func (e *Engine) Cursor() Cursor {
	return Cursor{Page: e.page, Y: e.cursorY}
}

func (e *Engine) Pages() int { return e.page }

func (e *Engine) Style() Style { return e.style }

func (e *Engine) Geometry() Geometry { return e.geo }

func (e *Engine) ContentWidth() float64 {
	return e.geo.PageWidth - e.geo.MarginLeft - e.geo.MarginRight
}

// Remaining is the vertical space left on the current page.
func (e *Engine) Remaining() float64 {
	return e.geo.PageHeight - e.geo.MarginBottom - e.cursorY
}

// AddPage starts a new page and draws its header.
func (e *Engine) AddPage() {
	e.surface.AddPage()
	e.page++
	e.AddHeader()
}

// AddHeader draws the branded band at the top of the current page and moves
// the cursor below it. A logo that cannot be embedded is dropped for the rest
// of the document.
func (e *Engine) AddHeader() {
	g, s := e.geo, e.style

	e.surface.SetFillColor(s.Primary)
	e.surface.Rect(0, 0, g.PageWidth, g.HeaderHeight, Fill)

	textX := g.MarginLeft
	if len(s.Brand.Logo) > 0 && !e.logoFailed {
		size := g.HeaderHeight - 10
		if err := e.surface.Image("logo", s.Brand.Logo, g.MarginLeft, 5, size, size); err != nil {
			e.logoFailed = true
			e.log.Warn().Err(err).Int("page", e.page).Msg("logo could not be embedded, continuing without it")
		} else {
			textX += size + 5
		}
	}

	e.useFont("B", s.Sizes.Title, s.OnPrimary)
	e.surface.Text(textX, 12, s.Brand.CompanyName)

	e.useFont("", s.Sizes.Small, s.OnPrimary)
	y := 18.0
	for _, line := range []string{s.Brand.Address, s.Brand.Contact, taxLine(s.Brand.TaxID)} {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e.surface.Text(textX, y, line)
		y += 4.2
	}

	e.cursorY = max(g.HeaderHeight, g.MarginTop) + headerGap
}

func taxLine(taxID string) string {
	if strings.TrimSpace(taxID) == "" {
		return ""
	}
	return "CIF: " + taxID
}

// CheckPageBreak opens a new page when required millimetres do not fit below
// the cursor and reports whether it did. It never fails.
func (e *Engine) CheckPageBreak(required float64) bool {
	if e.page == 0 || e.cursorY+required > e.geo.PageHeight-e.geo.MarginBottom {
		e.AddPage()
		return true
	}
	return false
}

func (e *Engine) Space(height float64) {
	e.cursorY += height
}

// Finalize stamps the footer on every page and serializes the surface. It is
// safe to call more than once; later calls return the same bytes.
func (e *Engine) Finalize() ([]byte, error) {
	if e.finalized {
		return e.output, nil
	}
	if e.page == 0 {
		e.AddPage()
	}

	total := e.surface.PageCount()
	lineY := e.geo.PageHeight - e.geo.MarginBottom + 4
	for n := 1; n <= total; n++ {
		e.surface.SetPage(n)
		e.surface.SetDrawColor(e.style.Rule)
		e.surface.SetLineWidth(0.2)
		e.surface.Line(e.geo.MarginLeft, lineY, e.geo.PageWidth-e.geo.MarginRight, lineY)

		e.useFont("", e.style.Sizes.Small, e.style.Muted)
		label := fmt.Sprintf("Página %d de %d", n, total)
		width := e.surface.StringWidth(label)
		e.surface.Text((e.geo.PageWidth-width)/2, e.geo.PageHeight-e.geo.FooterOffset, label)
	}

	var buf bytes.Buffer
	if err := e.surface.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	e.finalized = true
	e.output = buf.Bytes()
	return e.output, nil
}

func (e *Engine) useFont(style string, size float64, color Color) {
	e.surface.SetFont(e.style.FontFamily, style, size)
	e.surface.SetTextColor(color)
}

func lineHeight(size float64) float64 {
	return size * ptToMM * 1.45
}

// baseline is the text baseline for a line box of height h at the cursor.
func (e *Engine) baseline(h float64) float64 {
	return e.cursorY + h*0.72
}

// wrap breaks text into lines no wider than width in the current font.
// Explicit newlines are kept; words longer than a line are split.
func (e *Engine) wrap(text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if e.surface.StringWidth(candidate) <= width {
				current = candidate
				continue
			}
			if current != "" {
				lines = append(lines, current)
			}
			for len([]rune(word)) > 1 && e.surface.StringWidth(word) > width {
				head, tail := e.splitWord(word, width)
				lines = append(lines, head)
				word = tail
			}
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}

func (e *Engine) splitWord(word string, width float64) (string, string) {
	runes := []rune(word)
	n := len(runes) - 1
	for n > 1 && e.surface.StringWidth(string(runes[:n])) > width {
		n--
	}
	return string(runes[:n]), string(runes[n:])
}

// fit truncates s with an ellipsis so it fits width in the current font.
func (e *Engine) fit(s string, width float64) string {
	if e.surface.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + "..."
		if e.surface.StringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}

// textRight draws s right-aligned so that it ends at x.
func (e *Engine) textRight(x, y float64, s string) {
	e.surface.Text(x-e.surface.StringWidth(s), y, s)
}

func (e *Engine) textCenter(x, width, y float64, s string) {
	e.surface.Text(x+(width-e.surface.StringWidth(s))/2, y, s)
}
