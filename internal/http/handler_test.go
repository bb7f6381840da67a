package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/dealer-docs/internal/documents"
	"github.com/nurpe/dealer-docs/internal/excel"
	"github.com/nurpe/dealer-docs/internal/http/middleware"
	"github.com/nurpe/dealer-docs/internal/layout"
	"github.com/nurpe/dealer-docs/internal/layout/layouttest"
	"github.com/nurpe/dealer-docs/internal/model"
	"github.com/nurpe/dealer-docs/internal/service"
)

const proformaPayload = `{
	"number": "PF-2025-0003",
	"date": "2025-03-05",
	"issuer": {"name": "Luis Gómez", "is_company": true, "company_name": "Prueba SL", "tax_id": "B1"},
	"customer": {"name": "Ana Pérez", "national_id": "2X"},
	"vehicle": {"make": "Seat", "model": "León", "plate": "1234 ABC"},
	"economics": {"gross_price": 20000}
}`

type roleParser struct{}

func (roleParser) Parse(token string) (model.Principal, error) {
	switch token {
	case "sales":
		return model.Principal{UserID: uuid.New(), Role: model.UserRoleSales}, nil
	case "viewer":
		return model.Principal{UserID: uuid.New(), Role: model.UserRoleViewer}, nil
	default:
		return model.Principal{}, errors.New("bad token")
	}
}

type memoryArchive struct {
	docs []model.GeneratedDocument
}

func (m *memoryArchive) Create(_ context.Context, doc *model.GeneratedDocument) error {
	for _, d := range m.docs {
		if d.Kind == doc.Kind && d.Number != "" && d.Number == doc.Number {
			return gorm.ErrDuplicatedKey
		}
	}
	m.docs = append(m.docs, *doc)
	return nil
}

func (m *memoryArchive) ListBetween(context.Context, time.Time, time.Time) ([]model.GeneratedDocument, error) {
	return m.docs, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *memoryArchive) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	style := layout.DefaultStyle()
	style.Brand.CompanyName = "Prueba SL"
	renderer, err := documents.NewRenderer(style,
		documents.WithSurfaceFactory(func(documents.Meta) layout.Surface { return layouttest.NewRecorder() }),
	)
	if err != nil {
		t.Fatal(err)
	}
	archive := &memoryArchive{}
	svc := service.NewDocumentService(renderer, archive, excel.NewRegisterGenerator(), zerolog.Nop())
	handler := NewHandler(svc, zerolog.Nop())
	return NewRouter(handler, middleware.Auth(roleParser{}), "test", nil), archive
}

func do(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)
	if rec := do(router, http.MethodGet, "/healthz", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGenerateDocumentAttachment(t *testing.T) {
	router, archive := newTestRouter(t)
	rec := do(router, http.MethodPost, "/documents/proforma", "sales", proformaPayload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "proforma-PF-2025-0003.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	if len(archive.docs) != 1 || rec.Header().Get("X-Document-ID") != archive.docs[0].ID.String() {
		t.Errorf("archive = %+v, header = %q", archive.docs, rec.Header().Get("X-Document-ID"))
	}
}

func TestGenerateDocumentPreview(t *testing.T) {
	router, archive := newTestRouter(t)
	rec := do(router, http.MethodPost, "/documents/proforma_invoice?preview=true", "viewer", proformaPayload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var resp previewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.FileName != "proforma-PF-2025-0003.pdf" || resp.Pages < 1 {
		t.Errorf("response = %+v", resp)
	}
	if !strings.HasPrefix(resp.DataURL, "data:application/pdf;base64,") {
		t.Errorf("data url = %.40s", resp.DataURL)
	}
	if len(archive.docs) != 0 {
		t.Error("previews must not be archived")
	}
}

func TestGenerateDocumentErrors(t *testing.T) {
	router, _ := newTestRouter(t)
	tests := []struct {
		name, path, token, body string
		status                  int
	}{
		{"no token", "/documents/invoice", "", proformaPayload, http.StatusUnauthorized},
		{"viewer issuing", "/documents/proforma", "viewer", proformaPayload, http.StatusForbidden},
		{"unknown kind", "/documents/receipt", "sales", proformaPayload, http.StatusBadRequest},
		{"bad json", "/documents/invoice", "sales", "{", http.StatusBadRequest},
		{"bad preview flag", "/documents/invoice?preview=maybe", "sales", proformaPayload, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(router, http.MethodPost, tt.path, tt.token, tt.body); rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestGenerateDocumentDuplicateNumber(t *testing.T) {
	router, archive := newTestRouter(t)
	if rec := do(router, http.MethodPost, "/documents/proforma", "sales", proformaPayload); rec.Code != http.StatusOK {
		t.Fatalf("first status = %d", rec.Code)
	}
	rec := do(router, http.MethodPost, "/documents/proforma", "sales", proformaPayload)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusConflict, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "PF-2025-0003") {
		t.Errorf("body = %s", rec.Body.String())
	}
	if len(archive.docs) != 1 {
		t.Errorf("archived %d documents", len(archive.docs))
	}
}

func TestExportRegister(t *testing.T) {
	router, _ := newTestRouter(t)
	if rec := do(router, http.MethodPost, "/documents/proforma", "sales", proformaPayload); rec.Code != http.StatusOK {
		t.Fatalf("generate status = %d", rec.Code)
	}

	rec := do(router, http.MethodGet, "/documents/register?from=2025-03-01&to=2025-03-31", "sales", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("content type = %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty workbook")
	}

	if rec := do(router, http.MethodGet, "/documents/register?from=yesterday&to=2025-03-31", "sales", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d", rec.Code)
	}
	if rec := do(router, http.MethodGet, "/documents/register?from=2025-03-01&to=2025-03-31", "viewer", ""); rec.Code != http.StatusForbidden {
		t.Errorf("viewer status = %d", rec.Code)
	}
}
