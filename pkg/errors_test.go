package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb unavailable")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := err.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if err.Error() != "INTERNAL_ERROR: An internal error occurred: dynamodb unavailable" {
		t.Fatalf("unexpected message: %s", err.Error())
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.Unwrap() != nil || simple.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if simple.Error() != "NOT_FOUND: Not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
}
