package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/inventory"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/user"
	"github.com/atlasfield/fieldops-agent-go/internal/handler/http/response"
)

type InventoryHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	CreateReassignment(w http.ResponseWriter, r *http.Request)
}

type inventoryHandlerImpl struct {
	requests inventory.Service
	sessions user.SessionManager
}

func NewInventoryHandler(requests inventory.Service, sessions user.SessionManager) InventoryHandler {
	return &inventoryHandlerImpl{
		requests: requests,
		sessions: sessions,
	}
}

// CreateRequest implements InventoryHandler.
func (h *inventoryHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	current, err := h.sessions.Current(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req inventory.ItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode inventory request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requests.RequestItems(r.Context(), current.EmployeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Inventory request submitted", created)
}

// CreateReassignment implements InventoryHandler.
func (h *inventoryHandlerImpl) CreateReassignment(w http.ResponseWriter, r *http.Request) {
	current, err := h.sessions.Current(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req inventory.ReassignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode reassignment request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requests.RequestReassignment(r.Context(), current.EmployeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Reassignment request submitted", created)
}
