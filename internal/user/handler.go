package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/nanambeah/MedPrep-Ghana/internal/auth"
	"github.com/nanambeah/MedPrep-Ghana/internal/config"
)

type Handler struct {
	service  UserService
	tokenTTL time.Duration
}

func NewHandler(s UserService, tokenTTL time.Duration) *Handler {
	return &Handler{service: s, tokenTTL: tokenTTL}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid login body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.Login(r.Context(), dto)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, http.StatusOK, u)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid register body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.Register(r.Context(), dto)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, http.StatusCreated, u)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.Current(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, u)
}

// UpdateSubscription lets the signed-in user set their own status. It stands
// in for a payment flow; nothing is charged or verified.
func (h *Handler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto UpdateSubscriptionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid subscription body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.UpdateSubscription(r.Context(), claims.UserID, dto.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, users)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, status int, u *User) {
	token, err := auth.GenerateJWT(u.ID, string(u.Role), h.tokenTTL)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to issue token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetTokenCookie(w, token, h.tokenTTL)
	config.JSON(w, status, AuthResponse{Token: token, User: u})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, auth.ErrNoClaims):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrUserExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		config.WithContext(r.Context()).WithError(err).Error("User request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
