package user

// User is the backend profile of the logged-in field employee, cached on the
// device for offline display.
type User struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}
