package invoice

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"solevara/models"
	"solevara/rdx"
	"solevara/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers serves the invoice view and the PDF download from the handoff
// state written by the payment step.
type Handlers struct {
	Config Config
}

func NewHandlers(cfg Config) *Handlers {
	return &Handlers{Config: cfg}
}

// loadRecord fetches the stored invoice record by token.
func loadRecord(token string) (models.InvoiceDataRecord, bool) {
	blob, err := rdx.RdxGet("invoice:" + token)
	if err != nil {
		return models.InvoiceDataRecord{}, false
	}
	var rec models.InvoiceDataRecord
	if err := json.Unmarshal([]byte(blob), &rec); err != nil {
		log.Println("Corrupt invoice state:", err)
		return models.InvoiceDataRecord{}, false
	}
	return rec, true
}

// respondNoData is the required fallback when the invoice view is reached
// without its handoff state: a message and a working link back home.
func respondNoData(w http.ResponseWriter) {
	utils.RespondWithJSON(w, http.StatusNotFound, map[string]string{
		"message": "No Invoice Data Found",
		"home":    "/",
	})
}

// GetInvoice returns the invoice record for on-screen display.
func (h *Handlers) GetInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	rec, ok := loadRecord(ps.ByName("token"))
	if !ok {
		respondNoData(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rec)
}

// DownloadInvoice renders the record and streams the PDF. Render errors
// abort with 500 and produce no partial file.
func (h *Handlers) DownloadInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	rec, ok := loadRecord(ps.ByName("token"))
	if !ok {
		respondNoData(w)
		return
	}

	pdfBytes, err := Render(rec, h.Config)
	if err != nil {
		log.Println("Invoice render error:", err)
		http.Error(w, "Failed to generate invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+Filename(rec))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
