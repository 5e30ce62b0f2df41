package utils

import (
	"context"
	rndm "math/rand"
	"net/http"

	"solevara/globals"
)

var digitRunes = []rune("0123456789")

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// --- Request context helpers ---

func GetUserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(globals.UserIDKey).(string); ok {
		return id
	}
	return ""
}

func GetUserIDFromRequest(r *http.Request) string {
	return GetUserIDFromContext(r.Context())
}

func GetRoleFromRequest(r *http.Request) string {
	if role, ok := r.Context().Value(globals.RoleKey).(string); ok {
		return role
	}
	return ""
}
