package inventory

import "github.com/atlasfield/fieldops-agent-go/internal/pkg/validator"

type ItemsRequest struct {
	Items []RequestItem `json:"items"`
	Notes string        `json:"notes"`
}

func (r *ItemsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "at least one item is required",
		})
	}
	for _, item := range r.Items {
		if validator.IsEmpty(item.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "item name is required",
			})
			break
		}
		if item.Quantity <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "item quantity must be positive",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReassignRequest struct {
	LocationID string `json:"location_id"`
	Reason     string `json:"reason"`
}

func (r *ReassignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "location_id is required",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
