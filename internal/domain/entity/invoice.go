package entity

import "github.com/sangkips/drivedesk-api/internal/domain/enum"

// ReceiptIdentity identifies which invoice record a receipt is built from:
// the student's admission number, the work (payment batch) number, and the
// receipt type (e.g. ORIGINAL or DUPLICATE).
type ReceiptIdentity struct {
	AdmissionNo string `json:"admission_no"`
	WorkNo      string `json:"work_no"`
	ReceiptType string `json:"receipt_type"`
}

// InvoiceRecord is the raw record set a receipt is composed from. It is
// assembled fresh from student and payment rows for every rendering request
// and never cached.
type InvoiceRecord struct {
	Type        string     `json:"type"`
	Customer    string     `json:"customer"`
	Date        string     `json:"date"`
	AdmissionNo string     `json:"admission_no"`
	Total       float64    `json:"total"`
	Items       []LineItem `json:"items"`
}

// LineItem is a single raw payment line in an invoice record. It has no
// identity beyond its position; lines group by uppercased description.
type LineItem struct {
	Desc      string  `json:"desc"`
	Date      string  `json:"date"`
	Mode      string  `json:"mode"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
}

// DescriptionCell is the description column of a rendered row. It only
// appears on the first row of a merge group and spans the whole group.
type DescriptionCell struct {
	Text string `json:"text"`
	Span int    `json:"span"`
}

// RenderedRow is one body row of a composed receipt. Index is 1-based.
// Description is nil on rows covered by an earlier row's span.
type RenderedRow struct {
	Index       int              `json:"index"`
	Date        string           `json:"date"`
	Description *DescriptionCell `json:"description,omitempty"`
	Mode        string           `json:"mode"`
	Paid        float64          `json:"paid"`
	Remaining   float64          `json:"remaining"`
}

// ReceiptViewModel is the normalized, render-ready form of an invoice record.
// It is built once per request and treated as read-only afterwards.
type ReceiptViewModel struct {
	ReceiptType  string        `json:"receipt_type"`
	CustomerName string        `json:"customer_name"`
	DateID       string        `json:"date_id"`
	AdmissionNo  string        `json:"admission_no"`
	Rows         []RenderedRow `json:"rows"`
	TotalAmount  float64       `json:"total_amount"`
}

// Document body column names, in render order. The description column is
// omitted from rows covered by a span.
const (
	ColumnIndex       = "index"
	ColumnDate        = "date"
	ColumnDescription = "description"
	ColumnMode        = "mode"
	ColumnPaid        = "paid"
	ColumnRemaining   = "remaining"
)

// ReceiptDocument is the materialized receipt: header fields in fixed regions
// plus a body table, one row per payment line.
type ReceiptDocument struct {
	ReceiptType  string        `json:"receipt_type"`
	CustomerName string        `json:"customer_name"`
	DateID       string        `json:"date_id"`
	AdmissionNo  string        `json:"admission_no"`
	TotalAmount  float64       `json:"total_amount"`
	Body         []DocumentRow `json:"body"`
}

// DocumentRow is one body table row of a receipt document.
type DocumentRow struct {
	Cells []DocumentCell `json:"cells"`
}

// DocumentCell is a single table cell. RowSpan is greater than one only on
// description cells that cover a merge group.
type DocumentCell struct {
	Column  string `json:"column"`
	Text    string `json:"text"`
	RowSpan int    `json:"row_span"`
}

// DeliveryRequest asks for an invoice to be delivered through one of the
// delivery modes.
type DeliveryRequest struct {
	AdmissionNo string            `json:"admission_no"`
	WorkNo      string            `json:"work_no"`
	ReceiptType string            `json:"receipt_type"`
	Mode        enum.DeliveryMode `json:"mode"`
}

// Identity returns the receipt identity addressed by the request.
func (r DeliveryRequest) Identity() ReceiptIdentity {
	return ReceiptIdentity{
		AdmissionNo: r.AdmissionNo,
		WorkNo:      r.WorkNo,
		ReceiptType: r.ReceiptType,
	}
}

// DeliveryResult is the uniform outcome of a delivery attempt.
type DeliveryResult struct {
	Success  bool   `json:"success"`
	FilePath string `json:"file_path,omitempty"`
	Error    string `json:"error,omitempty"`
}
