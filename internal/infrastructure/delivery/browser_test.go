package delivery

import (
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/sangkips/drivedesk-api/internal/application/service"
	"github.com/sangkips/drivedesk-api/internal/domain/entity"
)

type fakeRecordRepo struct {
	record *entity.InvoiceRecord
}

func (f *fakeRecordRepo) GetRecord(ctx context.Context, identity entity.ReceiptIdentity) (*entity.InvoiceRecord, error) {
	return f.record, nil
}

func invoiceRecordFixture() *entity.InvoiceRecord {
	return &entity.InvoiceRecord{
		Type:        "original",
		Customer:    "John Doe",
		Date:        "2024-03-12",
		AdmissionNo: "A100",
		Total:       500,
		Items: []entity.LineItem{
			{Desc: "Driving lessons", Date: "2024-03-12", Mode: "CASH", Paid: 500, Remaining: 0},
		},
	}
}

func TestOpenInvoiceExportsAndLaunches(t *testing.T) {
	t.Parallel()

	receipts := service.NewReceiptService(&fakeRecordRepo{record: invoiceRecordFixture()}, nil)
	exporter := NewHTMLExporter(receipts, t.TempDir(), "Test Driving School")

	launched := 0
	launcher := NewBrowserLauncher(exporter)
	launcher.openCommand = func(path string) *exec.Cmd {
		launched++
		return exec.Command("true")
	}

	path, err := launcher.OpenInvoice(context.Background(), entity.ReceiptIdentity{
		AdmissionNo: "A100",
		WorkNo:      "WRK-1",
	})
	if err != nil {
		t.Fatalf("open invoice failed: %v", err)
	}
	if launched != 1 {
		t.Errorf("launcher invoked %d times, want 1", launched)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file missing at %s: %v", path, err)
	}
}

func TestOpenInvoiceStartFailure(t *testing.T) {
	t.Parallel()

	receipts := service.NewReceiptService(&fakeRecordRepo{record: invoiceRecordFixture()}, nil)
	exporter := NewHTMLExporter(receipts, t.TempDir(), "Test Driving School")

	launcher := NewBrowserLauncher(exporter)
	launcher.openCommand = func(path string) *exec.Cmd {
		return exec.Command("/nonexistent/browser-opener")
	}

	if _, err := launcher.OpenInvoice(context.Background(), entity.ReceiptIdentity{
		AdmissionNo: "A100",
		WorkNo:      "WRK-1",
	}); err == nil {
		t.Fatal("expected error when the opener cannot start")
	}
}
