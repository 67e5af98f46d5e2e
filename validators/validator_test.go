package validators

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

type sample struct {
	Email string `validate:"required,email"`
	Age   int    `validate:"min=18"`
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(&sample{Email: "user@example.com", Age: 30}); err != nil {
		t.Errorf("valid struct rejected: %v", err)
	}
}

func TestValidateReturnsBadRequest(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&sample{Email: "not-an-email", Age: 5})
	if err == nil {
		t.Fatal("invalid struct accepted")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 HTTPError, got %v", err)
	}
}
