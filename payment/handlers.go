package payment

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"solevara/cart"
	"solevara/checkout"
	"solevara/db"
	"solevara/invoice"
	"solevara/models"
	"solevara/rdx"
	"solevara/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

const invoiceTTL = time.Hour

// Handlers finalizes a checkout session into an order and an invoice
// handoff token.
type Handlers struct {
	Cart   *cart.Store
	Config invoice.Config
}

func NewHandlers(store *cart.Store, cfg invoice.Config) *Handlers {
	return &Handlers{Cart: store, Config: cfg}
}

// Submit validates the payment fields against a checkout token, persists
// the order, clears the cart, and stores the invoice record for the
// invoice view.
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		CheckoutToken string      `json:"checkoutToken"`
		Payment       PaymentForm `json:"payment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("Payment decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if errs := ValidateForm(payload.Payment); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	session, ok := checkout.LoadSession(payload.CheckoutToken)
	if !ok {
		http.Error(w, "Checkout session not found or expired", http.StatusNotFound)
		return
	}
	if session.UserID != userID {
		http.Error(w, "Checkout session not found or expired", http.StatusNotFound)
		return
	}
	if len(session.Lines) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	address := checkout.FullAddress(session.Form)
	record := invoice.BuildRecord(payload.Payment.NameOnCard, session, address, h.Config)

	// invoice state is written first; a failed order insert deletes it
	token := uuid.NewString()
	blob, err := json.Marshal(record)
	if err != nil {
		http.Error(w, "Failed to store invoice data", http.StatusInternalServerError)
		return
	}
	if err := rdx.SetWithExpiry("invoice:"+token, string(blob), invoiceTTL); err != nil {
		log.Println("Invoice state storage error:", err)
		http.Error(w, "Failed to store invoice data", http.StatusInternalServerError)
		return
	}

	order := models.Order{
		OrderID:   "ORD" + utils.GenerateRandomDigitString(6),
		UserID:    userID,
		Lines:     session.Lines,
		Address:   address,
		Subtotal:  session.Subtotal,
		Shipping:  session.Shipping,
		Tax:       session.Tax,
		Total:     session.Total,
		InvoiceNo: record.InvoiceNo,
		Status:    "completed",
		CreatedAt: time.Now(),
	}
	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("Order InsertOne error:", err)
		if _, derr := rdx.RdxDel("invoice:" + token); derr != nil {
			log.Printf("Orphaned invoice state invoice:%s: %v", token, derr)
		}
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	h.Cart.ClearCart(userID)
	checkout.DeleteSession(payload.CheckoutToken)

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"orderId":      order.OrderID,
		"invoiceToken": token,
		"invoiceNo":    record.InvoiceNo,
	})
}
