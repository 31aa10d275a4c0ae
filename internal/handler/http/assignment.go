package http

import (
	"net/http"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/assignment"
	"github.com/atlasfield/fieldops-agent-go/internal/handler/http/response"
)

type AssignmentHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	resolver assignment.Resolver
}

func NewAssignmentHandler(resolver assignment.Resolver) AssignmentHandler {
	return &assignmentHandlerImpl{
		resolver: resolver,
	}
}

// Get implements AssignmentHandler.
func (h *assignmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	current, err := h.resolver.Mine(r.Context(), false)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if current == nil {
		response.HandleError(w, assignment.ErrNoAssignment)
		return
	}
	response.Success(w, current)
}

// Refresh implements AssignmentHandler.
func (h *assignmentHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	current, err := h.resolver.Mine(r.Context(), true)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if current == nil {
		response.HandleError(w, assignment.ErrNoAssignment)
		return
	}
	response.SuccessWithMessage(w, "Assignment refreshed", current)
}
