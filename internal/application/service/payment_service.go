package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	"github.com/sangkips/drivedesk-api/internal/domain/repository"
	"github.com/sangkips/drivedesk-api/pkg/apperror"
	"github.com/sangkips/drivedesk-api/pkg/pagination"
	"github.com/sangkips/drivedesk-api/pkg/utils"
)

// PaymentService handles fee payment recording
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	studentRepo repository.StudentRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	studentRepo repository.StudentRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
	}
}

// toCents converts a decimal amount to cents for storage
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// RecordPaymentInput represents the input for recording a payment
type RecordPaymentInput struct {
	AdmissionNo string
	UserID      uuid.UUID
	WorkNo      string
	Description string
	PayDate     time.Time
	Mode        string
	Paid        float64
	Remaining   float64
}

// RecordPayment records a fee payment against a student. A blank work number
// starts a new invoice batch.
func (s *PaymentService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Payment, error) {
	student, err := s.studentRepo.GetByAdmissionNo(ctx, input.AdmissionNo)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	if input.Paid < 0 || input.Remaining < 0 {
		return nil, apperror.NewBadRequestError("Amounts cannot be negative")
	}

	workNo := input.WorkNo
	if workNo == "" {
		workNo = utils.GenerateWorkNo()
	}

	payDate := input.PayDate
	if payDate.IsZero() {
		payDate = time.Now()
	}

	payment := &entity.Payment{
		StudentID:   student.ID,
		UserID:      input.UserID,
		WorkNo:      workNo,
		Description: input.Description,
		PayDate:     payDate,
		Mode:        input.Mode,
		Paid:        toCents(input.Paid),
		Remaining:   toCents(input.Remaining),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetPayment returns a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// UpdatePaymentInput represents the input for correcting a payment
type UpdatePaymentInput struct {
	ID          uuid.UUID
	Description string
	Mode        string
	Paid        *float64
	Remaining   *float64
}

// UpdatePayment corrects a recorded payment
func (s *PaymentService) UpdatePayment(ctx context.Context, input *UpdatePaymentInput) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	if input.Description != "" {
		payment.Description = input.Description
	}
	if input.Mode != "" {
		payment.Mode = input.Mode
	}
	if input.Paid != nil {
		if *input.Paid < 0 {
			return nil, apperror.NewBadRequestError("Amounts cannot be negative")
		}
		payment.Paid = toCents(*input.Paid)
	}
	if input.Remaining != nil {
		if *input.Remaining < 0 {
			return nil, apperror.NewBadRequestError("Amounts cannot be negative")
		}
		payment.Remaining = toCents(*input.Remaining)
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// DeletePayment soft deletes a payment
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}
	return s.paymentRepo.Delete(ctx, id)
}

// ListPaymentsInput represents the input for listing payments
type ListPaymentsInput struct {
	Page    int
	PerPage int
	Search  string
}

// ListPaymentsOutput represents the output for listing payments
type ListPaymentsOutput struct {
	Payments   []entity.Payment
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// ListPayments returns a paginated list of payments, newest first
func (s *PaymentService) ListPayments(ctx context.Context, input *ListPaymentsInput) (*ListPaymentsOutput, error) {
	params := &pagination.PaginationParams{
		Page:    input.Page,
		PerPage: input.PerPage,
	}
	params.Validate()

	payments, total, err := s.paymentRepo.List(ctx, params, input.Search)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / params.PerPage
	if int(total)%params.PerPage > 0 {
		totalPages++
	}

	return &ListPaymentsOutput{
		Payments:   payments,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	}, nil
}

// ListStudentPayments returns every payment recorded against a student
func (s *PaymentService) ListStudentPayments(ctx context.Context, admissionNo string) ([]entity.Payment, error) {
	student, err := s.studentRepo.GetByAdmissionNo(ctx, admissionNo)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}
	return s.paymentRepo.ListByStudent(ctx, student.ID)
}

// ListWorkPayments returns the payments forming one invoice batch
func (s *PaymentService) ListWorkPayments(ctx context.Context, admissionNo, workNo string) ([]entity.Payment, error) {
	student, err := s.studentRepo.GetByAdmissionNo(ctx, admissionNo)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}
	return s.paymentRepo.ListByWork(ctx, student.ID, workNo)
}
