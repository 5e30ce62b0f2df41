package invoice

import (
	"fmt"
	"math"
	"time"

	"solevara/models"
)

// NewNumber synthesizes an invoice number from the millisecond clock:
// a fixed prefix plus the low-order digits, unique enough across rapid
// repeated generations without a central counter.
func NewNumber() string {
	return fmt.Sprintf("INV%08d", time.Now().UnixMilli()%1e8)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildRecord assembles the finalized snapshot the renderer consumes.
// Totals are taken from the priced checkout session, not recomputed, so
// the document always matches the preview the customer approved.
func BuildRecord(customerName string, session models.CheckoutSession, address string, cfg Config) models.InvoiceDataRecord {
	items := make([]models.InvoiceItem, 0, len(session.Lines))
	for _, l := range session.Lines {
		items = append(items, models.InvoiceItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: round2(l.UnitPrice * float64(l.Quantity)),
		})
	}

	return models.InvoiceDataRecord{
		InvoiceNo:    NewNumber(),
		InvoiceDate:  time.Now().Format("02 Jan 2006"),
		CustomerName: customerName,
		Email:        session.Form.Email,
		Phone:        session.Form.Phone,
		Address:      address,
		Items:        items,
		Subtotal:     session.Subtotal,
		Shipping:     session.Shipping,
		TaxRate:      cfg.TaxRate,
		Tax:          session.Tax,
		GrandTotal:   session.Total,
	}
}
