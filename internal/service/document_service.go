package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/dealer-docs/internal/documents"
	"github.com/nurpe/dealer-docs/internal/excel"
	"github.com/nurpe/dealer-docs/internal/model"
)

// Renderer renders issued documents with Render and drafts with Preview.
// Preview must not consume numbers from the issuing sequence.
type Renderer interface {
	Render(ctx context.Context, doc model.Document) (*documents.Rendered, error)
	Preview(ctx context.Context, doc model.Document) (*documents.Rendered, error)
}

// Archive stores metadata of issued documents. A nil Archive disables both
// archiving and the register.
type Archive interface {
	Create(ctx context.Context, doc *model.GeneratedDocument) error
	ListBetween(ctx context.Context, from, to time.Time) ([]model.GeneratedDocument, error)
}

type RegisterGenerator interface {
	Generate(period excel.Period, docs []model.GeneratedDocument) ([]byte, error)
}

type DocumentService struct {
	renderer Renderer
	archive  Archive
	register RegisterGenerator
	log      zerolog.Logger
	now      func() time.Time
}

func NewDocumentService(renderer Renderer, archive Archive, register RegisterGenerator, log zerolog.Logger) *DocumentService {
	return &DocumentService{
		renderer: renderer,
		archive:  archive,
		register: register,
		log:      log,
		now:      time.Now,
	}
}

type GenerateInput struct {
	Kind      string
	Payload   []byte
	Preview   bool
	Principal model.Principal
}

type GenerateResult struct {
	Document *documents.Rendered
	// ArchiveID is uuid.Nil for previews and when no archive is configured.
	ArchiveID uuid.UUID
}

// Generate decodes and renders a data bundle. Issued (non-preview) documents
// are recorded in the archive when one is configured.
func (s *DocumentService) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	if !input.Preview && !input.Principal.CanIssue() {
		return nil, ErrPermissionDenied
	}

	kind, err := model.ParseDocumentKind(input.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	doc, err := model.DecodeDocument(kind, input.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	render := s.renderer.Render
	if input.Preview {
		render = s.renderer.Preview
	}
	rendered, err := render(ctx, doc)
	if err != nil {
		if errors.Is(err, documents.ErrValidation) || errors.Is(err, model.ErrUnknownKind) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}

	result := &GenerateResult{Document: rendered}
	if input.Preview || s.archive == nil {
		return result, nil
	}

	record := newRecord(rendered, input.Principal.UserID, s.now())
	if err := s.archive.Create(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s %s", ErrDuplicateNumber, rendered.Kind, rendered.Number)
		}
		return nil, fmt.Errorf("archive %s: %w", rendered.FileName, err)
	}
	s.log.Info().
		Str("kind", string(rendered.Kind)).
		Str("number", rendered.Number).
		Str("id", record.ID.String()).
		Msg("document issued")
	result.ArchiveID = record.ID
	return result, nil
}

func newRecord(r *documents.Rendered, createdBy uuid.UUID, now time.Time) *model.GeneratedDocument {
	sum := sha256.Sum256(r.Content)
	return &model.GeneratedDocument{
		ID:           uuid.New(),
		Kind:         r.Kind,
		Number:       r.Number,
		FileName:     r.FileName,
		ContentHash:  hex.EncodeToString(sum[:]),
		PageCount:    r.Pages,
		GrossPrice:   r.Breakdown.TotalWithTax,
		TaxBase:      r.Breakdown.TaxBase,
		TaxAmount:    r.Breakdown.TaxAmount,
		CustomerName: r.CustomerName,
		Plate:        r.Plate,
		CreatedBy:    createdBy,
		CreatedAt:    now.UTC(),
	}
}

type RegisterInput struct {
	From      time.Time
	To        time.Time
	Principal model.Principal
}

type RegisterResult struct {
	FileName string
	Content  []byte
}

// Register exports the documents issued between From and To, both days
// inclusive.
func (s *DocumentService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	if !input.Principal.CanIssue() {
		return nil, ErrPermissionDenied
	}
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	if input.From.IsZero() || input.To.IsZero() {
		return nil, fmt.Errorf("%w: period dates are required", ErrInvalidInput)
	}

	from := dateOnly(input.From)
	to := dateOnly(input.To)
	if from.After(to) {
		return nil, fmt.Errorf("%w: from must be before or equal to to", ErrInvalidInput)
	}

	docs, err := s.archive.ListBetween(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	content, err := s.register.Generate(excel.Period{From: from, To: to}, docs)
	if err != nil {
		return nil, fmt.Errorf("build register: %w", err)
	}

	return &RegisterResult{
		FileName: fmt.Sprintf("registro-documentos-%s-%s.xlsx", from.Format("20060102"), to.Format("20060102")),
		Content:  content,
	}, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
