package service

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	"github.com/sangkips/drivedesk-api/pkg/apperror"
)

type fakeRecordRepo struct {
	record *entity.InvoiceRecord
	err    error
	calls  int
}

func (f *fakeRecordRepo) GetRecord(ctx context.Context, identity entity.ReceiptIdentity) (*entity.InvoiceRecord, error) {
	f.calls++
	return f.record, f.err
}

type recordingListener struct {
	identities []entity.ReceiptIdentity
}

func (l *recordingListener) ReceiptRendered(identity entity.ReceiptIdentity) {
	l.identities = append(l.identities, identity)
}

func TestComposeEndToEnd(t *testing.T) {
	t.Parallel()

	svc := NewReceiptService(nil, nil)

	record := &entity.InvoiceRecord{
		Type:        "duplicate",
		Customer:    "john doe",
		Date:        "2024-01-05",
		AdmissionNo: "A100",
		Total:       500,
		Items: []entity.LineItem{
			{Desc: "fee", Date: "05/01/2024", Mode: "cash", Paid: 500, Remaining: 0},
		},
	}

	vm, err := svc.Compose(record)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	want := &entity.ReceiptViewModel{
		ReceiptType:  "DUPLICATE",
		CustomerName: "JOHN DOE",
		DateID:       "05-01-2024",
		AdmissionNo:  "A100",
		Rows: []entity.RenderedRow{
			{
				Index:       1,
				Date:        "05-01-2024",
				Description: &entity.DescriptionCell{Text: "FEE", Span: 1},
				Mode:        "CASH",
				Paid:        500,
				Remaining:   0,
			},
		},
		TotalAmount: 500,
	}

	if !reflect.DeepEqual(vm, want) {
		t.Fatalf("view-model = %+v, want %+v", vm, want)
	}
}

func TestComposeDefaultsEmptyHeaderFields(t *testing.T) {
	t.Parallel()

	svc := NewReceiptService(nil, nil)

	vm, err := svc.Compose(&entity.InvoiceRecord{Items: []entity.LineItem{}})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if vm.ReceiptType != "ORIGINAL" {
		t.Fatalf("receipt type = %q, want ORIGINAL", vm.ReceiptType)
	}
	if vm.CustomerName != "—" {
		t.Fatalf("customer = %q, want em-dash placeholder", vm.CustomerName)
	}
	if vm.AdmissionNo != "—" {
		t.Fatalf("admission no = %q, want em-dash placeholder", vm.AdmissionNo)
	}
	if vm.DateID != "" {
		t.Fatalf("date id = %q, want empty", vm.DateID)
	}
	if len(vm.Rows) != 0 {
		t.Fatalf("rows = %v, want empty", vm.Rows)
	}
}

func TestComposeRejectsMalformedRecord(t *testing.T) {
	t.Parallel()

	svc := NewReceiptService(nil, nil)

	if _, err := svc.Compose(nil); err != apperror.ErrMalformedRecord {
		t.Fatalf("compose(nil) error = %v, want ErrMalformedRecord", err)
	}
	if _, err := svc.Compose(&entity.InvoiceRecord{Items: nil}); err != apperror.ErrMalformedRecord {
		t.Fatalf("compose without items error = %v, want ErrMalformedRecord", err)
	}
}

func TestComposeMergesRepeatedDescriptions(t *testing.T) {
	t.Parallel()

	svc := NewReceiptService(nil, nil)

	vm, err := svc.Compose(&entity.InvoiceRecord{
		Items: []entity.LineItem{
			{Desc: "A", Paid: 100},
			{Desc: "B", Paid: 200},
			{Desc: "A", Paid: 300},
		},
	})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	if cell := vm.Rows[0].Description; cell == nil || cell.Span != 2 {
		t.Fatalf("row 0 description = %+v, want span 2", cell)
	}
	if cell := vm.Rows[1].Description; cell == nil || cell.Span != 1 {
		t.Fatalf("row 1 description = %+v, want span 1", cell)
	}
	if cell := vm.Rows[2].Description; cell != nil {
		t.Fatalf("row 2 description = %+v, want nil", cell)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := NewReceiptService(nil, nil)

	vm, err := svc.Compose(&entity.InvoiceRecord{
		Type:        "original",
		Customer:    "jane",
		Date:        "15/03/2024",
		AdmissionNo: "A200",
		Total:       750.5,
		Items: []entity.LineItem{
			{Desc: "lesson", Date: "15/03/2024", Mode: "mpesa", Paid: 500.25, Remaining: 250.25},
			{Desc: "lesson", Date: "16/03/2024", Mode: "cash", Paid: 250.25, Remaining: 0},
		},
	})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	first := svc.Render(vm)
	second := svc.Render(vm)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-rendering the same view-model produced a different document")
	}
	if len(first.Body) != 2 {
		t.Fatalf("body rows = %d, want 2", len(first.Body))
	}
	// Row 0 carries the spanned description; row 1 omits the column.
	if len(first.Body[0].Cells) != 6 {
		t.Fatalf("row 0 cells = %d, want 6", len(first.Body[0].Cells))
	}
	if len(first.Body[1].Cells) != 5 {
		t.Fatalf("row 1 cells = %d, want 5", len(first.Body[1].Cells))
	}
	if cell := first.Body[0].Cells[2]; cell.Column != entity.ColumnDescription || cell.RowSpan != 2 {
		t.Fatalf("row 0 description cell = %+v, want span 2", cell)
	}
	if cell := first.Body[0].Cells[4]; cell.Column != entity.ColumnPaid || cell.Text != "500.25" {
		t.Fatalf("row 0 paid cell = %+v, want 500.25", cell)
	}
}

func TestBuildReceiptNotifiesListenerAfterAllRowsAppended(t *testing.T) {
	t.Parallel()

	repo := &fakeRecordRepo{
		record: &entity.InvoiceRecord{
			Type:        "original",
			Customer:    "john",
			AdmissionNo: "A100",
			Items: []entity.LineItem{
				{Desc: "fee", Paid: 100},
				{Desc: "fee", Paid: 200},
			},
		},
	}
	listener := &recordingListener{}
	svc := NewReceiptService(repo, listener)

	identity := entity.ReceiptIdentity{AdmissionNo: "A100", WorkNo: "W1", ReceiptType: "original"}
	doc, err := svc.BuildReceipt(context.Background(), identity)
	if err != nil {
		t.Fatalf("build receipt failed: %v", err)
	}

	if repo.calls != 1 {
		t.Fatalf("record fetched %d times, want 1 (records are never cached)", repo.calls)
	}
	if len(doc.Body) != 2 {
		t.Fatalf("body rows = %d, want 2", len(doc.Body))
	}
	if len(listener.identities) != 1 || listener.identities[0] != identity {
		t.Fatalf("listener notified with %v, want exactly one notification for %v", listener.identities, identity)
	}
}

func TestBuildReceiptMissingRecordIsNotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeRecordRepo{record: nil}
	listener := &recordingListener{}
	svc := NewReceiptService(repo, listener)

	_, err := svc.BuildReceipt(context.Background(), entity.ReceiptIdentity{AdmissionNo: "A999", WorkNo: "WRK-1"})
	if err == nil {
		t.Fatal("expected error for missing record")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusNotFound {
		t.Errorf("got %v, want not found error", err)
	}
	if err == apperror.ErrMalformedRecord {
		t.Error("missing record reported as malformed")
	}
	if len(listener.identities) != 0 {
		t.Fatalf("listener notified on a failed cycle: %v", listener.identities)
	}
}

func TestBuildReceiptDoesNotNotifyOnMalformedRecord(t *testing.T) {
	t.Parallel()

	repo := &fakeRecordRepo{record: &entity.InvoiceRecord{}}
	listener := &recordingListener{}
	svc := NewReceiptService(repo, listener)

	_, err := svc.BuildReceipt(context.Background(), entity.ReceiptIdentity{AdmissionNo: "A100"})
	if err != apperror.ErrMalformedRecord {
		t.Fatalf("error = %v, want ErrMalformedRecord", err)
	}
	if len(listener.identities) != 0 {
		t.Fatalf("listener notified on a failed cycle: %v", listener.identities)
	}
}
