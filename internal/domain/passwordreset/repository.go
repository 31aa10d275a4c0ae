package passwordreset

import "context"

type Repository interface {
	Create(ctx context.Context, email string) (Request, error)
	List(ctx context.Context) ([]Request, error)
}
