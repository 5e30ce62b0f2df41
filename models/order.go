package models

import "time"

// OrderForm holds the shipping/contact fields collected at checkout.
// It is transient: held in the handoff state between the checkout and
// payment steps, never written to storage on its own.
type OrderForm struct {
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Address        string `json:"address"`
	Apartment      string `json:"apartment,omitempty"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zipCode"`
	Country        string `json:"country"`
	Phone          string `json:"phone"`
	ShippingMethod string `json:"shippingMethod"`
}

// CheckoutSession is the snapshot stored under a handoff token after the
// order form is accepted: the form plus the cart lines it was priced from.
type CheckoutSession struct {
	UserID    string     `json:"userId"`
	Form      OrderForm  `json:"form"`
	Lines     []CartLine `json:"lines"`
	Subtotal  float64    `json:"subtotal"`
	Shipping  float64    `json:"shipping"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Order is the persisted record of a completed purchase.
type Order struct {
	OrderID   string     `json:"orderId" bson:"orderId"`
	UserID    string     `json:"userId" bson:"userId"`
	Lines     []CartLine `json:"lines" bson:"lines"`
	Address   string     `json:"address" bson:"address"`
	Subtotal  float64    `json:"subtotal" bson:"subtotal"`
	Shipping  float64    `json:"shipping" bson:"shipping"`
	Tax       float64    `json:"tax" bson:"tax"`
	Total     float64    `json:"total" bson:"total"`
	InvoiceNo string     `json:"invoiceNo" bson:"invoiceNo"`
	Status    string     `json:"status" bson:"status"` // "completed"
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
}
