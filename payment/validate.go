package payment

import (
	"regexp"
	"strconv"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// PaymentForm holds the card-like fields. No real gateway sits behind
// this; the fields are validated and discarded.
type PaymentForm struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	NameOnCard string `json:"nameOnCard"`
}

// NormalizeCardNumber strips non-digits and caps the result at 16 digits.
func NormalizeCardNumber(raw string) string {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) > 16 {
		digits = digits[:16]
	}
	return digits
}

// FormatCardNumber groups digits in fours with hyphens, the way the
// payment form displays them.
func FormatCardNumber(raw string) string {
	digits := NormalizeCardNumber(raw)
	var groups []string
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	groups = append(groups, digits)
	return strings.Join(groups, "-")
}

// FormatExpiry strips non-digits and inserts the MM/YY slash.
func FormatExpiry(raw string) string {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) >= 3 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// ValidateForm returns field-level errors keyed by field name.
func ValidateForm(f PaymentForm) map[string]string {
	errs := make(map[string]string)

	digits := NormalizeCardNumber(f.CardNumber)
	switch {
	case digits == "":
		errs["cardNumber"] = "Card number is required"
	case len(digits) < 16:
		errs["cardNumber"] = "Card number must be 16 digits"
	}

	expiry := FormatExpiry(f.ExpiryDate)
	switch {
	case expiry == "":
		errs["expiryDate"] = "Expiry date is required"
	case len(expiry) != 5:
		errs["expiryDate"] = "Expiry date must be MM/YY"
	default:
		month, err := strconv.Atoi(expiry[:2])
		if err != nil || month < 1 || month > 12 {
			errs["expiryDate"] = "Invalid month (01-12)"
		}
	}

	cvv := nonDigitRe.ReplaceAllString(f.CVV, "")
	switch {
	case cvv == "":
		errs["cvv"] = "CVV is required"
	case len(cvv) != 3:
		errs["cvv"] = "CVV must be 3 digits"
	}

	if strings.TrimSpace(f.NameOnCard) == "" {
		errs["nameOnCard"] = "Name on card is required"
	}

	return errs
}
