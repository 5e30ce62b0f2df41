package models

// InvoiceItem is one row of the invoice table.
type InvoiceItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"qty"`
	UnitPrice float64 `json:"price"`
	LineTotal float64 `json:"total"`
}

// InvoiceDataRecord is the finalized snapshot the renderer consumes.
// Tax and GrandTotal are computed once, at assembly time, from the
// configured rate; the renderer never recomputes them.
type InvoiceDataRecord struct {
	InvoiceNo    string        `json:"invoiceNo"`
	InvoiceDate  string        `json:"invoiceDate"`
	CustomerName string        `json:"customerName"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address,omitempty"`
	Items        []InvoiceItem `json:"items"`
	Subtotal     float64       `json:"subtotal"`
	Shipping     float64       `json:"shipping"`
	TaxRate      float64       `json:"taxRate"` // fraction, e.g. 0.08
	Tax          float64       `json:"tax"`
	GrandTotal   float64       `json:"grandTotal"`
}
