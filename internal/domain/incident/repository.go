package incident

import "context"

// Repository submits reports to the backend incident API (multipart with
// media attachments).
type Repository interface {
	Submit(ctx context.Context, report Report, media []Attachment) error
}
