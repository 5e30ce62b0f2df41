package checkout

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"time"

	"solevara/cart"
	"solevara/invoice"
	"solevara/models"
	"solevara/rdx"
	"solevara/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

const sessionTTL = 30 * time.Minute

// Handlers collects the order form and hands the priced session forward.
type Handlers struct {
	Cart   *cart.Store
	Config invoice.Config
}

func NewHandlers(store *cart.Store, cfg invoice.Config) *Handlers {
	return &Handlers{Cart: store, Config: cfg}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// linesSubtotal prices the snapshot itself, so the stored session totals
// always match the lines it carries.
func linesSubtotal(lines []models.CartLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// Submit validates the order form, snapshots the cart, and stores a
// checkout session under a handoff token. The payment step consumes it.
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form models.OrderForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Println("Checkout decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if errs := ValidateForm(form); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	lines := h.Cart.Lines(userID)
	if len(lines) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	subtotal := linesSubtotal(lines)
	shipping := ShippingCost(form.ShippingMethod)
	tax := round2(subtotal * h.Config.TaxRate)

	session := models.CheckoutSession{
		UserID:    userID,
		Form:      form,
		Lines:     lines,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     round2(subtotal + shipping + tax),
		CreatedAt: time.Now(),
	}

	token := uuid.NewString()
	blob, err := json.Marshal(session)
	if err != nil {
		http.Error(w, "Failed to create checkout session", http.StatusInternalServerError)
		return
	}
	if err := rdx.SetWithExpiry("checkout:"+token, string(blob), sessionTTL); err != nil {
		log.Println("Checkout session storage error:", err)
		http.Error(w, "Failed to create checkout session", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"checkoutToken": token,
		"subtotal":      session.Subtotal,
		"shipping":      session.Shipping,
		"tax":           session.Tax,
		"total":         session.Total,
	})
}

// Preview returns the totals for the current cart without creating a
// session; the tax rate is the same one the invoice will use.
func (h *Handlers) Preview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	method := r.URL.Query().Get("shippingMethod")
	subtotal := h.Cart.TotalPrice(userID)
	shipping := ShippingCost(method)
	tax := round2(subtotal * h.Config.TaxRate)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"subtotal": subtotal,
		"shipping": shipping,
		"tax":      tax,
		"total":    round2(subtotal + shipping + tax),
	})
}

// GetShippingOptions lists the fixed delivery choices.
func (h *Handlers) GetShippingOptions(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, ShippingOptions)
}

// LoadSession fetches a stored checkout session by token. Used by the
// payment step; missing or expired tokens return false.
func LoadSession(token string) (models.CheckoutSession, bool) {
	blob, err := rdx.RdxGet("checkout:" + token)
	if err != nil {
		return models.CheckoutSession{}, false
	}
	var session models.CheckoutSession
	if err := json.Unmarshal([]byte(blob), &session); err != nil {
		log.Println("Corrupt checkout session:", err)
		return models.CheckoutSession{}, false
	}
	return session, true
}

// DeleteSession discards a consumed checkout token.
func DeleteSession(token string) {
	if _, err := rdx.RdxDel("checkout:" + token); err != nil {
		log.Println("Checkout session delete error:", err)
	}
}
