package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/user"
	"github.com/atlasfield/fieldops-agent-go/internal/handler/http/response"
)

type SessionHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	sessions user.SessionManager
}

func NewSessionHandler(sessions user.SessionManager) SessionHandler {
	return &sessionHandlerImpl{
		sessions: sessions,
	}
}

// Login implements SessionHandler.
func (h *sessionHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode login request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged in", profile)
}

// Logout implements SessionHandler.
func (h *sessionHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Logged out", nil)
}

// Me implements SessionHandler.
func (h *sessionHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.sessions.Current(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}
