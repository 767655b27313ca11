package request

// CreateStudentRequest represents a student enrollment request
type CreateStudentRequest struct {
	AdmissionNo  string  `json:"admission_no" binding:"required,min=1,max=100"`
	Name         string  `json:"name" binding:"required,min=2,max=255"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	IDNumber     *string `json:"id_number"`
	Address      *string `json:"address"`
	LicenseClass *string `json:"license_class"`
	JoinedAt     string  `json:"joined_at"` // YYYY-MM-DD, defaults to today
}

// UpdateStudentRequest represents a student update request
type UpdateStudentRequest struct {
	Name         string  `json:"name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	IDNumber     *string `json:"id_number"`
	Address      *string `json:"address"`
	LicenseClass *string `json:"license_class"`
}
