package delivery

import (
	"context"

	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	"github.com/sangkips/drivedesk-api/internal/domain/repository"
	"github.com/sangkips/drivedesk-api/pkg/email"
)

// SMTPEmailer mails exported invoices to students over SMTP.
type SMTPEmailer struct {
	emails     *email.EmailService
	students   repository.StudentRepository
	schoolName string
}

// NewSMTPEmailer creates the invoice emailing collaborator.
func NewSMTPEmailer(emails *email.EmailService, students repository.StudentRepository, schoolName string) *SMTPEmailer {
	return &SMTPEmailer{emails: emails, students: students, schoolName: schoolName}
}

// SendInvoiceEmail attaches the exported invoice file and mails it.
func (e *SMTPEmailer) SendInvoiceEmail(toEmail string, identity entity.ReceiptIdentity, filePath string) error {
	studentName := identity.AdmissionNo
	if s, err := e.students.GetByAdmissionNo(context.Background(), identity.AdmissionNo); err == nil && s != nil {
		studentName = s.Name
	}

	receiptType := identity.ReceiptType
	if receiptType == "" {
		receiptType = "ORIGINAL"
	}

	return e.emails.SendInvoiceEmail(toEmail, email.InvoiceEmailData{
		StudentName: studentName,
		AdmissionNo: identity.AdmissionNo,
		WorkNo:      identity.WorkNo,
		ReceiptType: receiptType,
		SchoolName:  e.schoolName,
	}, filePath)
}
