package invoice

import (
	"log"
	"os"
	"strconv"
)

// Config carries everything the renderer needs beyond the record itself.
// TaxRate is a fraction (0.08 = 8%); the checkout preview and the invoice
// assembly both read the same value, so the on-screen totals and the PDF
// can never disagree.
type Config struct {
	PageSize         string  // only "A4" is supported
	TaxRate          float64
	AddressWrapWidth int // characters per line for long addresses
	TemplatePath     string
}

const (
	defaultTaxRate          = 0.08
	defaultAddressWrapWidth = 48
)

// ConfigFromEnv reads INVOICE_TAX_RATE and INVOICE_TEMPLATE.
func ConfigFromEnv() Config {
	cfg := Config{
		PageSize:         "A4",
		TaxRate:          defaultTaxRate,
		AddressWrapWidth: defaultAddressWrapWidth,
		TemplatePath:     os.Getenv("INVOICE_TEMPLATE"),
	}

	if raw := os.Getenv("INVOICE_TAX_RATE"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 || rate >= 1 {
			log.Printf("Ignoring invalid INVOICE_TAX_RATE %q; using %.2f", raw, defaultTaxRate)
		} else {
			cfg.TaxRate = rate
		}
	}
	return cfg
}
