// Package documents composes the printable sale documents: purchase
// contract, deposit agreement, invoice and pro-forma invoice. Each variant is
// a fixed sequence of layout calls over a fresh engine.
package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/nurpe/dealer-docs/internal/economics"
	"github.com/nurpe/dealer-docs/internal/layout"
	"github.com/nurpe/dealer-docs/internal/model"
	"github.com/nurpe/dealer-docs/internal/numbering"
	"github.com/nurpe/dealer-docs/internal/pdf"
)

const defaultValidityDays = 30

// ErrUnknownKind is returned for documents outside the four supported kinds.
var ErrUnknownKind = model.ErrUnknownKind

// Meta describes the document a surface is created for.
type Meta struct {
	Title        string
	Author       string
	CreationDate time.Time
}

type SurfaceFactory func(meta Meta) layout.Surface

type Renderer struct {
	style          layout.Style
	geometry       layout.Geometry
	newSurface     SurfaceFactory
	log            zerolog.Logger
	strict         bool
	numbers        numbering.Generator
	drafts         numbering.Generator
	clock          func() time.Time
	taxRate        decimal.Decimal
	validityDays   int
	invoicePrefix  string
	proformaPrefix string
}

type Option func(*Renderer)

func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(r *Renderer) { r.newSurface = f }
}

func WithGeometry(g layout.Geometry) Option {
	return func(r *Renderer) { r.geometry = g }
}

func WithLogger(log zerolog.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

// WithStrict rejects incomplete bundles instead of rendering blanks and zeros.
func WithStrict(strict bool) Option {
	return func(r *Renderer) { r.strict = strict }
}

func WithNumbering(g numbering.Generator) Option {
	return func(r *Renderer) { r.numbers = g }
}

// WithDraftNumbering sets where Preview draws missing numbers from.
func WithDraftNumbering(g numbering.Generator) Option {
	return func(r *Renderer) { r.drafts = g }
}

// WithClock sets the source of "today" for documents without a date.
func WithClock(clock func() time.Time) Option {
	return func(r *Renderer) { r.clock = clock }
}

func WithDefaultTaxRate(rate decimal.Decimal) Option {
	return func(r *Renderer) { r.taxRate = rate }
}

func WithDefaultValidityDays(days int) Option {
	return func(r *Renderer) {
		if days > 0 {
			r.validityDays = days
		}
	}
}

func WithPrefixes(invoice, proforma string) Option {
	return func(r *Renderer) {
		if invoice != "" {
			r.invoicePrefix = invoice
		}
		if proforma != "" {
			r.proformaPrefix = proforma
		}
	}
}

// NewRenderer checks the style once so that a bad configuration fails here
// rather than on the first document.
func NewRenderer(style layout.Style, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		style:          style,
		geometry:       layout.A4(),
		log:            zerolog.Nop(),
		clock:          time.Now,
		taxRate:        economics.DefaultTaxRate,
		validityDays:   defaultValidityDays,
		invoicePrefix:  numbering.InvoicePrefix,
		proformaPrefix: numbering.ProformaPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.newSurface == nil {
		r.newSurface = func(meta Meta) layout.Surface {
			return pdf.NewSurface(pdf.Options{
				Title:        meta.Title,
				Author:       meta.Author,
				CreationDate: meta.CreationDate,
			})
		}
	}
	if r.numbers == nil {
		r.numbers = numbering.NewRandomGenerator(uint64(time.Now().UnixNano()))
	}
	if r.drafts == nil {
		r.drafts = numbering.NewRandomGenerator(uint64(time.Now().UnixNano()) ^ 0x5bd1e995)
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if err := r.geometry.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Render produces the finished document for doc. Each call uses its own
// surface and engine, so a Renderer may be shared between goroutines.
func (r *Renderer) Render(ctx context.Context, doc model.Document) (*Rendered, error) {
	return r.render(ctx, doc, r.numbers)
}

// Preview renders doc like Render, but a missing invoice number is drawn from
// the draft generator so that the issuing sequence is left untouched.
func (r *Renderer) Preview(ctx context.Context, doc model.Document) (*Rendered, error) {
	return r.render(ctx, doc, r.drafts)
}

func (r *Renderer) render(ctx context.Context, doc model.Document, numbers numbering.Generator) (*Rendered, error) {
	if r.strict {
		if err := Validate(doc); err != nil {
			return nil, err
		}
	} else if err := checkTaxRate(doc); err != nil {
		return nil, err
	}

	var (
		out *Rendered
		err error
	)
	switch d := doc.(type) {
	case model.PurchaseContract:
		out, err = r.renderPurchase(d)
	case *model.PurchaseContract:
		out, err = r.renderPurchase(*d)
	case model.DepositAgreement:
		out, err = r.renderDeposit(d)
	case *model.DepositAgreement:
		out, err = r.renderDeposit(*d)
	case model.Invoice:
		out, err = r.renderInvoice(ctx, numbers, d)
	case *model.Invoice:
		out, err = r.renderInvoice(ctx, numbers, *d)
	case model.ProformaInvoice:
		out, err = r.renderProforma(ctx, numbers, d)
	case *model.ProformaInvoice:
		out, err = r.renderProforma(ctx, numbers, *d)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKind, doc)
	}
	if err != nil {
		return nil, err
	}

	r.log.Debug().
		Str("kind", string(out.Kind)).
		Str("number", out.Number).
		Int("pages", out.Pages).
		Int("bytes", len(out.Content)).
		Msg("document rendered")
	return out, nil
}

func (r *Renderer) newEngine(title string, date model.Date) (*layout.Engine, error) {
	surface := r.newSurface(Meta{
		Title:        title,
		Author:       r.style.Brand.CompanyName,
		CreationDate: date.Time,
	})
	return layout.New(surface, r.style,
		layout.WithGeometry(r.geometry),
		layout.WithLogger(r.log),
	)
}

// dateOr returns d, or today when the caller left it empty.
func (r *Renderer) dateOr(d model.Date) model.Date {
	if !d.IsZero() {
		return d
	}
	y, m, day := r.clock().Date()
	return model.NewDate(y, m, day)
}

func (r *Renderer) breakdown(c model.EconomicConditions) economics.Breakdown {
	return economics.FromConditions(c, r.taxRate)
}

func (r *Renderer) finish(e *layout.Engine, out *Rendered) (*Rendered, error) {
	content, err := e.Finalize()
	if err != nil {
		return nil, fmt.Errorf("finalize %s: %w", out.Kind, err)
	}
	out.Content = content
	out.Pages = e.Pages()
	return out, nil
}
