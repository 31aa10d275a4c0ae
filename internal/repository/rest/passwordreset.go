package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/api"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/passwordreset"
)

type PasswordResetRepository struct {
	client *api.Client
}

func NewPasswordResetRepository(client *api.Client) *PasswordResetRepository {
	return &PasswordResetRepository{client: client}
}

type passwordResetDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (d passwordResetDTO) toDomain() passwordreset.Request {
	return passwordreset.Request{
		ID:        d.ID,
		Email:     d.Email,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

// Create implements passwordreset.Repository.
func (r *PasswordResetRepository) Create(ctx context.Context, email string) (passwordreset.Request, error) {
	body := map[string]string{"email": email}

	var dto passwordResetDTO
	if err := r.client.Post(ctx, "/api/v1/password-resets", body, &dto); err != nil {
		return passwordreset.Request{}, fmt.Errorf("failed to create password reset request: %w", err)
	}
	return dto.toDomain(), nil
}

// List implements passwordreset.Repository.
func (r *PasswordResetRepository) List(ctx context.Context) ([]passwordreset.Request, error) {
	var dtos []passwordResetDTO
	if err := r.client.Get(ctx, "/api/v1/password-resets", &dtos); err != nil {
		return nil, fmt.Errorf("failed to list password reset requests: %w", err)
	}

	requests := make([]passwordreset.Request, 0, len(dtos))
	for _, dto := range dtos {
		requests = append(requests, dto.toDomain())
	}
	return requests, nil
}
