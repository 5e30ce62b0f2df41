package auth

import (
	"log"

	"solevara/models"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks an email/password pair and returns the matched
// user. A real backend can be substituted here without touching call sites.
type CredentialVerifier interface {
	Verify(email, password string) (*models.User, bool)
}

type mockAccount struct {
	user models.User
	hash []byte
}

// MockVerifier holds the storefront's two fixed accounts. Passwords are
// kept as bcrypt hashes so the compare path matches a real implementation.
type MockVerifier struct {
	accounts map[string]mockAccount
}

func NewMockVerifier() *MockVerifier {
	v := &MockVerifier{accounts: make(map[string]mockAccount)}
	v.add(models.User{ID: "1", Name: "Admin User", Email: "admin@solevara.com", Role: "admin"}, "admin123")
	v.add(models.User{ID: "2", Name: "John Doe", Email: "customer@example.com", Role: "customer"}, "customer123")
	return v
}

func (v *MockVerifier) add(user models.User, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash mock credential for %s: %v", user.Email, err)
	}
	v.accounts[user.Email] = mockAccount{user: user, hash: hash}
}

func (v *MockVerifier) Verify(email, password string) (*models.User, bool) {
	acc, ok := v.accounts[email]
	if !ok {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return nil, false
	}
	user := acc.user
	return &user, true
}
