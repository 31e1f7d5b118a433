package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/garnizeh/scout/pkg/repository"
)

// The login accepts exactly one password for any username. Real credential
// checking is out of scope; the constant-time bcrypt compare is kept so the
// accepted password never appears as a plain comparison target.
const fixedPassword = "password"

var fixedPasswordHash, _ = bcrypt.GenerateFromPassword([]byte(fixedPassword), bcrypt.MinCost)

type AuthHandler struct {
	userRepo      repository.UserRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ur repository.UserRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{userRepo: ur, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

// Login checks the fixed password, lazily creates the user row on first
// login (bumping last_login on repeats) and issues a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	if bcrypt.CompareHashAndPassword(fixedPasswordHash, []byte(req.Password)) != nil {
		http.Error(w, "Incorrect username or password", http.StatusUnauthorized)
		return
	}

	ctx := r.Context()

	user, err := h.userRepo.GetUser(ctx, req.Username)
	if err != nil {
		http.Error(w, "Error loading user", http.StatusInternalServerError)
		return
	}
	if user == nil {
		if _, err := h.userRepo.CreateUser(ctx, req.Username); err != nil {
			http.Error(w, "Error creating user", http.StatusInternalServerError)
			return
		}
	} else if err := h.userRepo.UpdateLastLogin(ctx, req.Username); err != nil {
		http.Error(w, "Error updating user", http.StatusInternalServerError)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Username,
		"exp": time.Now().Add(h.tokenDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, loginResponse{AccessToken: tokenStr, TokenType: "bearer", Username: req.Username}, http.StatusOK)
}

// Me returns the authenticated caller's user record.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())
	if username == AnonymousUser {
		http.Error(w, "Missing or invalid token", http.StatusUnauthorized)
		return
	}

	user, err := h.userRepo.GetUser(r.Context(), username)
	if err != nil {
		http.Error(w, "Error loading user", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, user, http.StatusOK)
}
