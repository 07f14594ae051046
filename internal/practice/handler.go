package practice

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nanambeah/MedPrep-Ghana/internal/config"
	"github.com/nanambeah/MedPrep-Ghana/internal/question"
	"github.com/nanambeah/MedPrep-Ghana/internal/user"
)

type Handler struct {
	service PracticeService
	users   user.UserService
}

func NewHandler(s PracticeService, users user.UserService) *Handler {
	return &Handler{service: s, users: users}
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var dto StartSessionDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("Invalid start session body")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	snap, err := h.service.Start(r.Context(), u, question.Filter{Discipline: dto.Discipline, Difficulty: dto.Difficulty})
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, snap)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	snap, err := h.service.Get(r.Context(), u, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) SelectOption(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var dto SelectOptionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Option == nil {
		http.Error(w, "option is required", http.StatusBadRequest)
		return
	}

	snap, err := h.service.Select(r.Context(), u, chi.URLParam(r, "id"), *dto.Option)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	snap, err := h.service.Submit(r.Context(), u, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	snap, err := h.service.Advance(r.Context(), u, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Abandon(r.Context(), u, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summary(r.Context(), u, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, summary)
}

func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	questions, err := h.service.Bookmarks(r.Context(), u)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "questionID"))
	if err != nil {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}

	on, err := h.service.ToggleBookmark(r.Context(), u, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, BookmarkToggleResponse{QuestionID: id, Bookmarked: on})
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (*user.User, bool) {
	u, err := h.users.Current(r.Context())
	if err != nil || u == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	return u, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrSubscriptionRequired):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, ErrNoQuestions):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrUnknownQuestion):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidOption):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNoSelection),
		errors.Is(err, ErrAlreadySubmitted),
		errors.Is(err, ErrNotSubmitted),
		errors.Is(err, ErrSessionComplete),
		errors.Is(err, ErrSessionNotComplete):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Practice request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
