package http

import (
	"net/http"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/workplace"
	"github.com/atlasfield/fieldops-agent-go/internal/handler/http/response"
)

type WorkplaceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type workplaceHandlerImpl struct {
	directory workplace.Directory
}

func NewWorkplaceHandler(directory workplace.Directory) WorkplaceHandler {
	return &workplaceHandlerImpl{
		directory: directory,
	}
}

// List implements WorkplaceHandler.
func (h *workplaceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var locations []workplace.WorkplaceLocation
	if r.URL.Query().Get("active") == "true" {
		locations = h.directory.Active()
	} else {
		locations = h.directory.All()
	}
	response.Success(w, locations)
}

// Refresh implements WorkplaceHandler.
func (h *workplaceHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	locations := h.directory.Refresh(r.Context())
	response.SuccessWithMessage(w, "Workplace list refreshed", locations)
}
