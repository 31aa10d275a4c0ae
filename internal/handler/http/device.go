package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/device"
	"github.com/atlasfield/fieldops-agent-go/internal/handler/http/response"
)

type DeviceHandler interface {
	Unlock(w http.ResponseWriter, r *http.Request)
	EnrollPIN(w http.ResponseWriter, r *http.Request)
}

type deviceHandlerImpl struct {
	unlocker device.Unlocker
}

func NewDeviceHandler(unlocker device.Unlocker) DeviceHandler {
	return &deviceHandlerImpl{
		unlocker: unlocker,
	}
}

type pinRequest struct {
	PIN string `json:"pin"`
}

// Unlock implements DeviceHandler.
func (h *deviceHandlerImpl) Unlock(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode unlock request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.unlocker.Verify(r.Context(), req.PIN); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device unlocked", map[string]bool{"unlocked": true})
}

// EnrollPIN implements DeviceHandler.
func (h *deviceHandlerImpl) EnrollPIN(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode PIN enrollment", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.unlocker.Enroll(r.Context(), req.PIN); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "PIN enrolled", map[string]bool{"enrolled": true})
}
