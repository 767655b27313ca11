package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	"github.com/sangkips/drivedesk-api/pkg/apperror"
	"github.com/sangkips/drivedesk-api/pkg/pagination"
)

type fakeStudentRepo struct {
	students map[string]*entity.Student
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *entity.Student) error { return nil }

func (f *fakeStudentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) GetByAdmissionNo(ctx context.Context, admissionNo string) (*entity.Student, error) {
	return f.students[admissionNo], nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, student *entity.Student) error { return nil }
func (f *fakeStudentRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

func (f *fakeStudentRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Student, int64, error) {
	return nil, 0, nil
}

func (f *fakeStudentRepo) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Student, error) {
	return nil, nil
}

type fakePaymentRepo struct {
	created []*entity.Payment
	byID    map[uuid.UUID]*entity.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	f.created = append(f.created, payment)
	return nil
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return f.byID[id], nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *entity.Payment) error { return nil }
func (f *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

func (f *fakePaymentRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Payment, int64, error) {
	return nil, 0, nil
}

func (f *fakePaymentRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) ListByWork(ctx context.Context, studentID uuid.UUID, workNo string) ([]entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) ListBetween(ctx context.Context, from, to time.Time) ([]entity.Payment, error) {
	return nil, nil
}

func paymentFixture() (*PaymentService, *fakePaymentRepo, *entity.Student) {
	student := &entity.Student{
		ID:          uuid.New(),
		AdmissionNo: "A100",
		Name:        "John Doe",
	}
	payments := &fakePaymentRepo{byID: make(map[uuid.UUID]*entity.Payment)}
	students := &fakeStudentRepo{students: map[string]*entity.Student{"A100": student}}
	return NewPaymentService(payments, students), payments, student
}

func TestRecordPaymentStoresCents(t *testing.T) {
	t.Parallel()

	svc, payments, student := paymentFixture()

	payment, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		AdmissionNo: "A100",
		UserID:      uuid.New(),
		WorkNo:      "WRK-1",
		Description: "Driving lessons",
		PayDate:     time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Mode:        "CASH",
		Paid:        1500.50,
		Remaining:   499.50,
	})
	if err != nil {
		t.Fatalf("record payment failed: %v", err)
	}

	if len(payments.created) != 1 {
		t.Fatalf("created %d payments, want 1", len(payments.created))
	}
	if payment.StudentID != student.ID {
		t.Errorf("payment bound to student %s, want %s", payment.StudentID, student.ID)
	}
	if payment.Paid != 150050 {
		t.Errorf("paid stored as %d cents, want 150050", payment.Paid)
	}
	if payment.Remaining != 49950 {
		t.Errorf("remaining stored as %d cents, want 49950", payment.Remaining)
	}
}

func TestRecordPaymentGeneratesWorkNoWhenBlank(t *testing.T) {
	t.Parallel()

	svc, _, _ := paymentFixture()

	payment, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		AdmissionNo: "A100",
		UserID:      uuid.New(),
		Description: "Theory classes",
		Mode:        "MPESA",
		Paid:        200,
	})
	if err != nil {
		t.Fatalf("record payment failed: %v", err)
	}

	if !strings.HasPrefix(payment.WorkNo, "WRK-") {
		t.Errorf("generated work no %q, want WRK- prefix", payment.WorkNo)
	}
	if payment.PayDate.IsZero() {
		t.Error("pay date should default to today when omitted")
	}
}

func TestRecordPaymentUnknownStudent(t *testing.T) {
	t.Parallel()

	svc, payments, _ := paymentFixture()

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		AdmissionNo: "A999",
		Paid:        100,
	})
	if err == nil {
		t.Fatal("expected error for unknown student")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusNotFound {
		t.Errorf("got %v, want not found error", err)
	}
	if len(payments.created) != 0 {
		t.Error("no payment should be created for an unknown student")
	}
}

func TestRecordPaymentRejectsNegativeAmounts(t *testing.T) {
	t.Parallel()

	svc, _, _ := paymentFixture()

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		AdmissionNo: "A100",
		Paid:        -5,
	})
	if err == nil {
		t.Fatal("expected error for negative amount")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusBadRequest {
		t.Errorf("got %v, want bad request error", err)
	}
}

func TestUpdatePaymentCorrectsAmounts(t *testing.T) {
	t.Parallel()

	svc, payments, _ := paymentFixture()

	id := uuid.New()
	payments.byID[id] = &entity.Payment{
		ID:          id,
		Description: "Driving lessons",
		Mode:        "CASH",
		Paid:        10000,
		Remaining:   5000,
	}

	paid := 120.0
	updated, err := svc.UpdatePayment(context.Background(), &UpdatePaymentInput{
		ID:   id,
		Mode: "MPESA",
		Paid: &paid,
	})
	if err != nil {
		t.Fatalf("update payment failed: %v", err)
	}

	if updated.Paid != 12000 {
		t.Errorf("paid updated to %d cents, want 12000", updated.Paid)
	}
	if updated.Mode != "MPESA" {
		t.Errorf("mode updated to %q, want MPESA", updated.Mode)
	}
	// Untouched fields keep their recorded values.
	if updated.Remaining != 5000 {
		t.Errorf("remaining changed to %d, want 5000", updated.Remaining)
	}
}
