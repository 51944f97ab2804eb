package employee

type CreateEmployeeRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Email     string `json:"email" binding:"required,email"`
	Position  string `json:"position" binding:"required,max=100"`
	BirthDate string `json:"birth_date" binding:"required"`
}

// UpdateEmployeeRequest carries a partial update. Pointer fields
// distinguish "absent" from "present but empty"; only present fields are
// applied, and only when they differ from the stored value.
type UpdateEmployeeRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Position  *string `json:"position" binding:"omitempty,max=100"`
	BirthDate *string `json:"birth_date"`
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	Position  string `json:"position"`
}
