package invoice

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestGetInvoiceMissingStateFallback(t *testing.T) {
	h := NewHandlers(Config{PageSize: "A4", TaxRate: 0.08, AddressWrapWidth: 48})
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/invoice/bogus", nil)
	ps := httprouter.Params{{Key: "token", Value: "bogus"}}

	h.GetInvoice(w, r, ps)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown token, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "No Invoice Data Found") {
		t.Fatalf("expected fallback message, got %q", body)
	}
	if !strings.Contains(body, `"home":"/"`) {
		t.Fatalf("expected home link, got %q", body)
	}
}

func TestDownloadInvoiceMissingStateFallback(t *testing.T) {
	h := NewHandlers(Config{PageSize: "A4", TaxRate: 0.08, AddressWrapWidth: 48})
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/invoice/bogus/pdf", nil)
	ps := httprouter.Params{{Key: "token", Value: "bogus"}}

	h.DownloadInvoice(w, r, ps)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown token, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No Invoice Data Found") {
		t.Fatalf("expected fallback message, got %q", w.Body.String())
	}
}
