package request

// RecordPaymentRequest represents a payment recording request
type RecordPaymentRequest struct {
	AdmissionNo string  `json:"admission_no" binding:"required"`
	WorkNo      string  `json:"work_no"` // blank starts a new invoice batch
	Description string  `json:"description" binding:"required,min=1,max=255"`
	PayDate     string  `json:"pay_date"` // YYYY-MM-DD, defaults to today
	Mode        string  `json:"mode" binding:"required,min=1,max=50"`
	Paid        float64 `json:"paid" binding:"gte=0"`
	Remaining   float64 `json:"remaining" binding:"gte=0"`
}

// UpdatePaymentRequest represents a payment correction request
type UpdatePaymentRequest struct {
	Description string   `json:"description"`
	Mode        string   `json:"mode"`
	Paid        *float64 `json:"paid" binding:"omitempty,gte=0"`
	Remaining   *float64 `json:"remaining" binding:"omitempty,gte=0"`
}
