package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"solevara/catalog"
	"solevara/db"
	"solevara/models"
	"solevara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Handlers exposes the cart store over HTTP.
type Handlers struct {
	Store *Store
}

func NewHandlers(store *Store) *Handlers {
	return &Handlers{Store: store}
}

// GetCart returns the user's lines plus derived totals.
func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.Store.View(userID))
}

// AddToCart adds a catalog product to the cart, merging quantities.
func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	product, ok := catalog.ByID(payload.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	h.Store.AddToCart(userID, product, payload.Quantity)
	utils.RespondWithJSON(w, http.StatusCreated, h.Store.View(userID))
}

// UpdateQuantity sets a line's quantity (clamped to 1 at minimum).
func (h *Handlers) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	productID, err := strconv.Atoi(ps.ByName("productid"))
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Store.UpdateQuantity(userID, productID, payload.Quantity); err != nil {
		if errors.Is(err, ErrLineNotFound) {
			http.Error(w, "Cart line not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.Store.View(userID))
}

// RemoveFromCart deletes a line; idempotent.
func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	productID, err := strconv.Atoi(ps.ByName("productid"))
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	h.Store.RemoveFromCart(userID, productID)
	utils.RespondWithJSON(w, http.StatusOK, h.Store.View(userID))
}

type couponRequest struct {
	Code string  `json:"code"`
	Cart float64 `json:"cart"` // cart subtotal
}

type couponResponse struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"` // absolute amount, not %
	Message  string  `json:"message"`
}

// ValidateCoupon checks a discount code against the coupons collection.
func ValidateCoupon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req couponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	code := strings.TrimSpace(strings.ToLower(req.Code))
	if code == "" {
		utils.RespondWithJSON(w, http.StatusOK, couponResponse{Valid: false, Message: "No coupon provided"})
		return
	}

	var coupon models.Coupon
	if err := db.CouponCollection.FindOne(ctx, bson.M{"code": code}).Decode(&coupon); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, couponResponse{Valid: false, Message: "Coupon not found"})
		return
	}

	if !coupon.Active {
		utils.RespondWithJSON(w, http.StatusOK, couponResponse{Valid: false, Message: "Coupon inactive"})
		return
	}
	if time.Now().After(coupon.ExpiresAt) {
		utils.RespondWithJSON(w, http.StatusOK, couponResponse{Valid: false, Message: "Coupon expired"})
		return
	}

	discount := 0.0
	if req.Cart > 0 {
		discount = (req.Cart * coupon.Discount) / 100
	}

	utils.RespondWithJSON(w, http.StatusOK, couponResponse{
		Valid:    true,
		Discount: discount,
		Message:  "Coupon applied successfully",
	})
}
