package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/passwordreset"
	"github.com/atlasfield/fieldops-agent-go/internal/handler/http/response"
)

type PasswordResetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type passwordResetHandlerImpl struct {
	repo passwordreset.Repository
}

func NewPasswordResetHandler(repo passwordreset.Repository) PasswordResetHandler {
	return &passwordResetHandlerImpl{
		repo: repo,
	}
}

// Create implements PasswordResetHandler.
func (h *passwordResetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req passwordreset.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode password-reset request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.repo.Create(r.Context(), req.Email)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Password reset requested", created)
}

// List implements PasswordResetHandler.
func (h *passwordResetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.repo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}
