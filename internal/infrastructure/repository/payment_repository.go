package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	domainRepo "github.com/sangkips/drivedesk-api/internal/domain/repository"
	"github.com/sangkips/drivedesk-api/pkg/pagination"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).Preload("Student").First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Payment{}, "id = ?", id).Error
}

func (r *paymentRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Payment{})

	if search != "" {
		query = query.Where("work_no ILIKE ? OR description ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Student").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&payments).Error

	return payments, total, err
}

func (r *paymentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("pay_date ASC, created_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListByWork(ctx context.Context, studentID uuid.UUID, workNo string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND work_no = ?", studentID, workNo).
		Order("pay_date ASC, created_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("pay_date BETWEEN ? AND ?", from, to).
		Order("pay_date ASC, created_at ASC").
		Find(&payments).Error
	return payments, err
}

type invoiceRecordRepository struct {
	db *gorm.DB
}

// NewInvoiceRecordRepository creates the record provider backing the invoice
// pipeline. Records are assembled fresh from students and payments on every
// call.
func NewInvoiceRecordRepository(db *gorm.DB) domainRepo.InvoiceRecordRepository {
	return &invoiceRecordRepository{db: db}
}

// GetRecord assembles the raw invoice record for a receipt identity. Amounts
// are stored in cents and converted to decimals here; dates are emitted as
// ISO strings and left for the composer to normalize.
func (r *invoiceRecordRepository) GetRecord(ctx context.Context, identity entity.ReceiptIdentity) (*entity.InvoiceRecord, error) {
	var student entity.Student
	err := r.db.WithContext(ctx).First(&student, "admission_no = ?", identity.AdmissionNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var payments []entity.Payment
	err = r.db.WithContext(ctx).
		Where("student_id = ? AND work_no = ?", student.ID, identity.WorkNo).
		Order("pay_date ASC, created_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	record := &entity.InvoiceRecord{
		Type:        identity.ReceiptType,
		Customer:    student.Name,
		AdmissionNo: student.AdmissionNo,
		Items:       make([]entity.LineItem, 0, len(payments)),
	}

	for _, p := range payments {
		record.Items = append(record.Items, entity.LineItem{
			Desc:      p.Description,
			Date:      p.PayDate.Format("2006-01-02"),
			Mode:      p.Mode,
			Paid:      p.GetPaidDecimal(),
			Remaining: p.GetRemainingDecimal(),
		})
		record.Total += p.GetPaidDecimal()
	}

	// Payments are ordered oldest first, so the invoice is dated by the
	// most recent payment. An invoice with no payments yet is dated today.
	invoiceDate := time.Now()
	if len(payments) > 0 {
		invoiceDate = payments[len(payments)-1].PayDate
	}
	record.Date = invoiceDate.Format("2006-01-02")

	return record, nil
}
