package request

// DeliverInvoiceRequest asks for an invoice to be delivered through one of
// the delivery modes.
type DeliverInvoiceRequest struct {
	AdmissionNo string `json:"admission_no" binding:"required"`
	WorkNo      string `json:"work_no" binding:"required"`
	ReceiptType string `json:"receipt_type"` // defaults to ORIGINAL
	Mode        string `json:"mode" binding:"required,oneof=print browser file"`
}

// EmailInvoiceRequest asks for an invoice to be emailed to a recipient.
type EmailInvoiceRequest struct {
	AdmissionNo string `json:"admission_no" binding:"required"`
	WorkNo      string `json:"work_no" binding:"required"`
	ReceiptType string `json:"receipt_type"`
	Email       string `json:"email" binding:"required,email"`
}
