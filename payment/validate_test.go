package payment

import "testing"

func TestNormalizeCardNumber(t *testing.T) {
	cases := map[string]string{
		"1234-5678-9012-3456":     "1234567890123456",
		"1234 5678 9012 3456 789": "1234567890123456", // capped at 16
		"abcd":                    "",
	}
	for in, want := range cases {
		if got := NormalizeCardNumber(in); got != want {
			t.Fatalf("NormalizeCardNumber(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCardNumber(t *testing.T) {
	if got := FormatCardNumber("1234567890123456"); got != "1234-5678-9012-3456" {
		t.Fatalf("unexpected formatting %q", got)
	}
	if got := FormatCardNumber("12345"); got != "1234-5" {
		t.Fatalf("unexpected partial formatting %q", got)
	}
}

func TestFormatExpiry(t *testing.T) {
	cases := map[string]string{
		"1225":   "12/25",
		"12/25":  "12/25",
		"1":      "1",
		"122533": "12/25",
	}
	for in, want := range cases {
		if got := FormatExpiry(in); got != want {
			t.Fatalf("FormatExpiry(%q) = %q, want %q", in, got, want)
		}
	}
}

func validForm() PaymentForm {
	return PaymentForm{
		CardNumber: "1234-5678-9012-3456",
		ExpiryDate: "12/25",
		CVV:        "123",
		NameOnCard: "John Doe",
	}
}

func TestValidateFormAccepts(t *testing.T) {
	if errs := ValidateForm(validForm()); len(errs) != 0 {
		t.Fatalf("expected valid form, got %v", errs)
	}
}

func TestValidateFormShortCard(t *testing.T) {
	f := validForm()
	f.CardNumber = "1234-5678"
	errs := ValidateForm(f)
	if errs["cardNumber"] != "Card number must be 16 digits" {
		t.Fatalf("expected card length error, got %v", errs)
	}
}

func TestValidateFormBadMonth(t *testing.T) {
	f := validForm()
	f.ExpiryDate = "13/25"
	errs := ValidateForm(f)
	if errs["expiryDate"] != "Invalid month (01-12)" {
		t.Fatalf("expected month error, got %v", errs)
	}

	f.ExpiryDate = "00/25"
	errs = ValidateForm(f)
	if errs["expiryDate"] == "" {
		t.Fatal("expected month error for 00")
	}
}

func TestValidateFormMissingFields(t *testing.T) {
	errs := ValidateForm(PaymentForm{})
	for _, field := range []string{"cardNumber", "expiryDate", "cvv", "nameOnCard"} {
		if errs[field] == "" {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestValidateFormBadCVV(t *testing.T) {
	f := validForm()
	f.CVV = "12"
	if errs := ValidateForm(f); errs["cvv"] == "" {
		t.Fatal("expected cvv error for 2 digits")
	}
}
