package rest

import (
	"context"
	"fmt"

	"github.com/atlasfield/fieldops-agent-go/internal/api"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/inventory"
)

type InventoryRepository struct {
	client *api.Client
}

func NewInventoryRepository(client *api.Client) *InventoryRepository {
	return &InventoryRepository{client: client}
}

// SubmitRequest implements inventory.Repository.
func (r *InventoryRepository) SubmitRequest(ctx context.Context, req inventory.Request) error {
	if err := r.client.Post(ctx, "/api/v1/inventory-requests", req, nil); err != nil {
		return fmt.Errorf("failed to submit inventory request: %w", err)
	}
	return nil
}

// SubmitReassignment implements inventory.Repository.
func (r *InventoryRepository) SubmitReassignment(ctx context.Context, req inventory.ReassignmentRequest) error {
	if err := r.client.Post(ctx, "/api/v1/reassignment-requests", req, nil); err != nil {
		return fmt.Errorf("failed to submit reassignment request: %w", err)
	}
	return nil
}
