package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func doRequest(cfg PinConfig, pin string) *httptest.ResponseRecorder {
	handler := PinAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/people", nil)
	if pin != "" {
		req.Header.Set(PinHeader, pin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestNoPinConfigured(t *testing.T) {
	rec := doRequest(PinConfig{}, "")
	if rec.Code != http.StatusOK {
		t.Errorf("Unconfigured PIN should authorize everything, got %d", rec.Code)
	}
}

func TestPlainPin(t *testing.T) {
	cfg := PinConfig{PIN: "4321"}

	if rec := doRequest(cfg, "4321"); rec.Code != http.StatusOK {
		t.Errorf("Correct PIN rejected: %d", rec.Code)
	}

	rec := doRequest(cfg, "1111")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Wrong PIN accepted: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unauthorized. Invalid app PIN.") {
		t.Errorf("Unexpected error body: %s", rec.Body.String())
	}

	if rec := doRequest(cfg, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("Missing PIN accepted: %d", rec.Code)
	}
}

func TestPinTrimmed(t *testing.T) {
	cfg := PinConfig{PIN: "4321"}
	if rec := doRequest(cfg, "  4321  "); rec.Code != http.StatusOK {
		t.Errorf("Whitespace around the PIN should be ignored, got %d", rec.Code)
	}
}

func TestHashedPin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("4321"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test PIN: %v", err)
	}
	cfg := PinConfig{PINHash: string(hash)}

	if rec := doRequest(cfg, "4321"); rec.Code != http.StatusOK {
		t.Errorf("Correct hashed PIN rejected: %d", rec.Code)
	}
	if rec := doRequest(cfg, "9999"); rec.Code != http.StatusUnauthorized {
		t.Errorf("Wrong hashed PIN accepted: %d", rec.Code)
	}
}

func TestPinViaQueryParam(t *testing.T) {
	cfg := PinConfig{PIN: "4321"}
	handler := PinAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/ws?pin=4321", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Query-param PIN rejected: %d", rec.Code)
	}
}
