package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)

	if e.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected default 500, got %d", e.HTTPStatus)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := e.ToHTTPError()
	if body.Success || body.Code != "INTERNAL_ERROR" || body.Error != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	if simple.Error() != "PRODUCT_NOT_FOUND: Product not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
}
