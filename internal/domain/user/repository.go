package user

import "context"

// LoginResult is the backend's answer to a successful login.
type LoginResult struct {
	Token string
	User  User
}

// AuthRepository is the backend authentication surface.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	CurrentUser(ctx context.Context) (User, error)
}
