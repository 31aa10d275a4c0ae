package rest

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlasfield/fieldops-agent-go/internal/api"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/user"
)

type AuthRepository struct {
	client *api.Client
}

func NewAuthRepository(client *api.Client) *AuthRepository {
	return &AuthRepository{client: client}
}

type userDTO struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

func (d userDTO) toDomain() user.User {
	return user.User{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Name:       d.Name,
		Email:      d.Email,
		Role:       d.Role,
	}
}

type loginResponseDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

// Login implements user.AuthRepository.
func (r *AuthRepository) Login(ctx context.Context, email, password string) (user.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var dto loginResponseDTO
	if err := r.client.Post(ctx, "/api/v1/auth/login", body, &dto); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return user.LoginResult{}, user.ErrInvalidCredentials
		}
		return user.LoginResult{}, fmt.Errorf("login failed: %w", err)
	}
	if dto.Token == "" {
		return user.LoginResult{}, fmt.Errorf("login response missing token")
	}

	return user.LoginResult{Token: dto.Token, User: dto.User.toDomain()}, nil
}

// CurrentUser implements user.AuthRepository.
func (r *AuthRepository) CurrentUser(ctx context.Context) (user.User, error) {
	var dto userDTO
	if err := r.client.Get(ctx, "/api/v1/users/me", &dto); err != nil {
		return user.User{}, fmt.Errorf("failed to fetch current user: %w", err)
	}
	return dto.toDomain(), nil
}
