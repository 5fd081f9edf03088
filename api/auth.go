package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler implements the auth collaborator: it exchanges the admin
// service key for a short-lived JWT accepted by the API middleware. Real user
// identity comes from the SSO provider in front of this service.
type AuthHandler struct {
	adminKeyHash  string
	jwtSecret     string
	tokenDuration time.Duration
}

func NewAuthHandler(adminKeyHash, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{adminKeyHash: adminKeyHash, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type tokenRequest struct {
	Key string `json:"key"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if h.adminKeyHash == "" {
		writeMessage(w, http.StatusServiceUnavailable, "token endpoint is not configured")
		return
	}

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Key == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(h.adminKeyHash), []byte(req.Key)) != nil {
		http.Error(w, "Credentials not found", http.StatusUnauthorized)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(h.tokenDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, tokenResponse{Token: tokenStr}, http.StatusOK)
}
