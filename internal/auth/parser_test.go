package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nurpe/dealer-docs/internal/model"
)

func TestParseRoundTrip(t *testing.T) {
	p := NewParser("secret")
	want := model.Principal{UserID: uuid.New(), OrgID: uuid.New(), Role: model.UserRoleSales}
	token, err := p.Sign(want, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != want {
		t.Fatalf("principal = %+v, want %+v", got, want)
	}
}

func TestParseRejects(t *testing.T) {
	p := NewParser("secret")
	principal := model.Principal{UserID: uuid.New(), Role: model.UserRoleViewer}

	expired, _ := p.Sign(principal, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))})
	otherKey, _ := NewParser("other").Sign(principal, jwt.RegisteredClaims{})
	badRole, _ := p.Sign(model.Principal{UserID: uuid.New(), Role: "MECHANIC"}, jwt.RegisteredClaims{})

	for name, token := range map[string]string{
		"garbage":   "not-a-token",
		"expired":   expired,
		"wrong key": otherKey,
		"bad role":  badRole,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := p.Parse(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
