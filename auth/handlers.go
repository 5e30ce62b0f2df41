package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"solevara/globals"
	"solevara/middleware"
	"solevara/models"
	"solevara/rdx"
	"solevara/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const sessionHash = "sessions" // redis hash: userID -> serialized user

// Handlers wires the credential verifier into the HTTP surface.
type Handlers struct {
	Verifier CredentialVerifier
}

func NewHandlers(verifier CredentialVerifier) *Handlers {
	return &Handlers{Verifier: verifier}
}

// Login checks credentials, issues a JWT, and stores the session blob.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Email == "" || input.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, ok := h.Verifier.Verify(input.Email, input.Password)
	if !ok {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	claims := &middleware.Claims{
		Username: user.Name,
		UserID:   user.ID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	blob, _ := json.Marshal(user)
	if err := rdx.RdxHset(sessionHash, user.ID, string(blob)); err != nil {
		log.Printf("Session storage failed for %s: %v", user.ID, err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"token": tokenString,
		"user":  user,
	}, "Login successful", nil)
}

// Logout removes the session blob; the token simply expires client-side.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if _, err := rdx.RdxHdel(sessionHash, userID); err != nil {
		log.Printf("Error removing session for %s: %v", userID, err)
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "User logged out successfully", nil)
}

// Me returns the stored session for the authenticated user.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	blob, err := rdx.RdxHget(sessionHash, userID)
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		log.Printf("Corrupt session blob for %s: %v", userID, err)
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
