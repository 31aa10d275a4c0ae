package passwordreset

import "github.com/atlasfield/fieldops-agent-go/internal/pkg/validator"

type CreateRequest struct {
	Email string `json:"email"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
