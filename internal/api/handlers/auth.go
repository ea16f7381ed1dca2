package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ani/point-check-backend/internal/api/middleware"
	"github.com/ani/point-check-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCredentials) {
			respondError(w, http.StatusBadRequest, "Username and password must not be empty")
			return
		}
		log.Printf("ERROR [handlers.Register] %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if status == service.AlreadyRegistered {
		respondJSON(w, http.StatusOK, map[string]string{"message": "User already registered"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Registration successful"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials):
			respondError(w, http.StatusBadRequest, "Username and password must not be empty")
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not registered")
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			log.Printf("ERROR [handlers.Login] %v", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *AuthHandler) Main(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Welcome, " + user.Username})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), r.Header.Get("Authorization")); err != nil {
		log.Printf("ERROR [handlers.Logout] %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}
