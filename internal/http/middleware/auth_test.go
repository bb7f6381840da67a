package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/dealer-docs/internal/model"
)

type stubParser struct {
	principal model.Principal
}

func (s stubParser) Parse(token string) (model.Principal, error) {
	if token != "good" {
		return model.Principal{}, errors.New("bad token")
	}
	return s.principal, nil
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	want := model.Principal{UserID: uuid.New(), Role: model.UserRoleSales}

	router := gin.New()
	router.GET("/me", Auth(stubParser{principal: want}), func(c *gin.Context) {
		p, ok := MustPrincipal(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, string(p.Role))
	})

	tests := []struct {
		header string
		status int
	}{
		{"", http.StatusUnauthorized},
		{"Basic abc", http.StatusUnauthorized},
		{"Bearer nope", http.StatusUnauthorized},
		{"Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tt.status {
			t.Errorf("%q: status = %d, want %d", tt.header, rec.Code, tt.status)
		}
		if tt.status == http.StatusOK && rec.Body.String() != "SALES" {
			t.Errorf("body = %q", rec.Body.String())
		}
	}
}
