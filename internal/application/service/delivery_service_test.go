package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	"github.com/sangkips/drivedesk-api/internal/domain/enum"
)

type fakePrinter struct {
	err   error
	calls int
}

func (f *fakePrinter) PrintInvoice(ctx context.Context, identity entity.ReceiptIdentity) error {
	f.calls++
	return f.err
}

type fakeBrowser struct {
	path  string
	err   error
	calls int
}

func (f *fakeBrowser) OpenInvoice(ctx context.Context, identity entity.ReceiptIdentity) (string, error) {
	f.calls++
	return f.path, f.err
}

type fakeExporter struct {
	path  string
	err   error
	calls int
}

func (f *fakeExporter) ExportInvoice(ctx context.Context, identity entity.ReceiptIdentity) (string, error) {
	f.calls++
	return f.path, f.err
}

type fakeEmailer struct {
	err   error
	calls int
	to    string
}

func (f *fakeEmailer) SendInvoiceEmail(toEmail string, identity entity.ReceiptIdentity, filePath string) error {
	f.calls++
	f.to = toEmail
	return f.err
}

type notification struct {
	kind    NotificationKind
	title   string
	message string
}

type fakeNotifier struct {
	notifications []notification
}

func (f *fakeNotifier) Notify(kind NotificationKind, title, message string, options []string) int {
	f.notifications = append(f.notifications, notification{kind: kind, title: title, message: message})
	return 0
}

type deliveryFixture struct {
	printer  *fakePrinter
	browser  *fakeBrowser
	exporter *fakeExporter
	emailer  *fakeEmailer
	notifier *fakeNotifier
	service  *DeliveryService
}

func newDeliveryFixture() *deliveryFixture {
	f := &deliveryFixture{
		printer:  &fakePrinter{},
		browser:  &fakeBrowser{path: "/exports/invoice-A100-W1.html"},
		exporter: &fakeExporter{path: "/exports/invoice-A100-W1.html"},
		emailer:  &fakeEmailer{},
		notifier: &fakeNotifier{},
	}
	f.service = NewDeliveryService(f.printer, f.browser, f.exporter, f.emailer, f.notifier)
	return f
}

func (f *deliveryFixture) collaboratorCalls() int {
	return f.printer.calls + f.browser.calls + f.exporter.calls + f.emailer.calls
}

func request(mode enum.DeliveryMode) entity.DeliveryRequest {
	return entity.DeliveryRequest{AdmissionNo: "A100", WorkNo: "W1", ReceiptType: "original", Mode: mode}
}

func TestDispatchWithoutSelectionInvokesNoCollaborator(t *testing.T) {
	t.Parallel()

	for _, mode := range []enum.DeliveryMode{enum.DeliveryModePrint, enum.DeliveryModeBrowser, enum.DeliveryModeFile} {
		f := newDeliveryFixture()
		req := request(mode)
		req.AdmissionNo = ""

		result := f.service.Dispatch(context.Background(), req)

		if result.Success {
			t.Fatalf("mode %s: dispatch without selection succeeded", mode)
		}
		if !strings.Contains(result.Error, "No student selected") {
			t.Fatalf("mode %s: error = %q, want no-selection message", mode, result.Error)
		}
		if f.collaboratorCalls() != 0 {
			t.Fatalf("mode %s: collaborators invoked %d times, want 0", mode, f.collaboratorCalls())
		}
	}
}

func TestDispatchPrintSuccessIsSilent(t *testing.T) {
	t.Parallel()

	f := newDeliveryFixture()

	result := f.service.Dispatch(context.Background(), request(enum.DeliveryModePrint))

	if !result.Success {
		t.Fatalf("print dispatch failed: %q", result.Error)
	}
	if f.printer.calls != 1 {
		t.Fatalf("printer invoked %d times, want 1", f.printer.calls)
	}
	// The native print surface owns user feedback on success.
	if len(f.notifier.notifications) != 0 {
		t.Fatalf("notifications = %v, want none", f.notifier.notifications)
	}
}

func TestDispatchPrintFailureNotifiesOnce(t *testing.T) {
	t.Parallel()

	f := newDeliveryFixture()
	f.printer.err = errors.New("device offline")

	result := f.service.Dispatch(context.Background(), request(enum.DeliveryModePrint))

	if result.Success {
		t.Fatalf("print dispatch reported success despite printer error")
	}
	if len(f.notifier.notifications) != 1 {
		t.Fatalf("notifications = %d, want exactly 1", len(f.notifier.notifications))
	}
	n := f.notifier.notifications[0]
	if n.kind != NotificationError || !strings.Contains(n.message, "print") {
		t.Fatalf("notification = %+v, want error kind mentioning printing", n)
	}
}

func TestDispatchBrowserSuccessNotifiesFilePath(t *testing.T) {
	t.Parallel()

	f := newDeliveryFixture()

	result := f.service.Dispatch(context.Background(), request(enum.DeliveryModeBrowser))

	if !result.Success || result.FilePath != f.browser.path {
		t.Fatalf("result = %+v, want success with path %q", result, f.browser.path)
	}
	if len(f.notifier.notifications) != 1 {
		t.Fatalf("notifications = %d, want exactly 1", len(f.notifier.notifications))
	}
	n := f.notifier.notifications[0]
	if n.kind != NotificationInfo || !strings.Contains(n.message, f.browser.path) {
		t.Fatalf("notification = %+v, want info kind carrying the file path", n)
	}
}

func TestDispatchBrowserFailureNotifiesOnce(t *testing.T) {
	t.Parallel()

	f := newDeliveryFixture()
	f.browser.err = errors.New("no display")

	result := f.service.Dispatch(context.Background(), request(enum.DeliveryModeBrowser))

	if result.Success {
		t.Fatalf("browser dispatch reported success despite error")
	}
	if len(f.notifier.notifications) != 1 || f.notifier.notifications[0].kind != NotificationError {
		t.Fatalf("notifications = %v, want one error notification", f.notifier.notifications)
	}
}

func TestDispatchFileFailureIncludesDetail(t *testing.T) {
	t.Parallel()

	f := newDeliveryFixture()
	f.exporter.err = errors.New("disk full")

	result := f.service.Dispatch(context.Background(), request(enum.DeliveryModeFile))

	if result.Success {
		t.Fatalf("file dispatch reported success despite exporter error")
	}
	if len(f.notifier.notifications) != 1 {
		t.Fatalf("notifications = %d, want exactly 1", len(f.notifier.notifications))
	}
	n := f.notifier.notifications[0]
	if n.kind != NotificationError {
		t.Fatalf("notification kind = %q, want error", n.kind)
	}
	if !strings.Contains(n.message, "generate invoice") && !strings.Contains(n.message, "Failed to generate") {
		t.Fatalf("notification message %q does not reference invoice generation", n.message)
	}
	if !strings.Contains(n.message, "disk full") {
		t.Fatalf("notification message %q does not carry the underlying detail", n.message)
	}
}

func TestDispatchFileSuccessNotifiesFilePath(t *testing.T) {
	t.Parallel()

	f := newDeliveryFixture()

	result := f.service.Dispatch(context.Background(), request(enum.DeliveryModeFile))

	if !result.Success || result.FilePath != f.exporter.path {
		t.Fatalf("result = %+v, want success with path %q", result, f.exporter.path)
	}
	if len(f.notifier.notifications) != 1 || !strings.Contains(f.notifier.notifications[0].message, f.exporter.path) {
		t.Fatalf("notifications = %v, want one info carrying the file path", f.notifier.notifications)
	}
}

func TestEmailInvoiceSendsGeneratedFile(t *testing.T) {
	t.Parallel()

	f := newDeliveryFixture()
	identity := entity.ReceiptIdentity{AdmissionNo: "A100", WorkNo: "W1", ReceiptType: "original"}

	result := f.service.EmailInvoice(context.Background(), identity, "student@example.com")

	if !result.Success {
		t.Fatalf("email invoice failed: %q", result.Error)
	}
	if f.exporter.calls != 1 || f.emailer.calls != 1 {
		t.Fatalf("exporter calls = %d, emailer calls = %d, want 1 and 1", f.exporter.calls, f.emailer.calls)
	}
	if f.emailer.to != "student@example.com" {
		t.Fatalf("emailed to %q", f.emailer.to)
	}
}
