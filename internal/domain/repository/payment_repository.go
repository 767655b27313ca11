package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	"github.com/sangkips/drivedesk-api/pkg/pagination"
)

// PaymentRepository defines the interface for payment record operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns payments with page-based pagination, newest first.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Payment, int64, error)
	// ListByStudent returns all payments recorded against a student, oldest first.
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.Payment, error)
	// ListByWork returns the payments forming one invoice, oldest first.
	ListByWork(ctx context.Context, studentID uuid.UUID, workNo string) ([]entity.Payment, error)
	// ListBetween returns payments whose pay date falls in [from, to], oldest
	// first, with the student preloaded.
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.Payment, error)
}

// InvoiceRecordRepository is the record provider contract of the invoice
// pipeline: it assembles the raw invoice record addressed by a receipt
// identity. A fresh record is built on every call; results are never cached.
type InvoiceRecordRepository interface {
	GetRecord(ctx context.Context, identity entity.ReceiptIdentity) (*entity.InvoiceRecord, error)
}
