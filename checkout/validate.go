package checkout

import (
	"regexp"
	"strings"

	"solevara/models"
)

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)
	zipRe   = regexp.MustCompile(`^\d{6}$`)
)

// ShippingOption is one of the fixed delivery choices.
type ShippingOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

var ShippingOptions = []ShippingOption{
	{ID: "standard", Name: "Standard Shipping", Description: "5-7 business days", Price: 0},
	{ID: "express", Name: "Express Shipping", Description: "2-3 business days", Price: 15.99},
	{ID: "overnight", Name: "Overnight Shipping", Description: "Next business day", Price: 29.99},
}

// ShippingCost resolves a method id; unknown ids fall back to standard.
func ShippingCost(method string) float64 {
	for _, opt := range ShippingOptions {
		if opt.ID == method {
			return opt.Price
		}
	}
	return 0
}

// ValidateForm returns field-level errors, keyed by field name. An empty
// map means the form is valid. Mirrors the storefront's inline rules.
func ValidateForm(f models.OrderForm) map[string]string {
	errs := make(map[string]string)

	switch {
	case f.Email == "":
		errs["email"] = "Email is required"
	case !emailRe.MatchString(f.Email):
		errs["email"] = "Please enter a valid email"
	}

	if strings.TrimSpace(f.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(f.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(f.State) == "" {
		errs["state"] = "State is required"
	}

	switch {
	case f.ZipCode == "":
		errs["zipCode"] = "ZIP code is required"
	case !zipRe.MatchString(f.ZipCode):
		errs["zipCode"] = "Please enter a valid 6-digit PIN code"
	}

	switch {
	case f.Phone == "":
		errs["phone"] = "Phone number is required"
	case !phoneRe.MatchString(f.Phone):
		errs["phone"] = "Please enter a valid phone number"
	}

	return errs
}

// FullAddress joins the shipping fields into the single wrapped block the
// invoice prints.
func FullAddress(f models.OrderForm) string {
	parts := []string{f.Address}
	if f.Apartment != "" {
		parts = append(parts, f.Apartment)
	}
	parts = append(parts, f.City+", "+f.State+" "+f.ZipCode, f.Country)
	return strings.Join(parts, ", ")
}
