package incident

import "github.com/atlasfield/fieldops-agent-go/internal/pkg/validator"

type ReportRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Media       []Attachment
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !validator.IsInSlice(r.Category, Categories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: safety, equipment, security, other",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
