package service

import (
	"context"
	"log"

	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	"github.com/sangkips/drivedesk-api/internal/domain/enum"
	"github.com/sangkips/drivedesk-api/pkg/apperror"
)

// NotificationKind classifies user-facing notifications
type NotificationKind string

const (
	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
	NotificationError   NotificationKind = "error"
)

// Notifier is the user notification collaborator. Options, when present, are
// the choices offered to the user; the return value is the index of the
// selected option (ignored for plain notifications).
type Notifier interface {
	Notify(kind NotificationKind, title, message string, options []string) int
}

// InvoicePrinter is the native print collaborator.
type InvoicePrinter interface {
	PrintInvoice(ctx context.Context, identity entity.ReceiptIdentity) error
}

// BrowserOpener renders an invoice to a file and opens it in the browser,
// returning the path of the generated file.
type BrowserOpener interface {
	OpenInvoice(ctx context.Context, identity entity.ReceiptIdentity) (string, error)
}

// FileExporter renders an invoice to a file on disk and returns its path.
type FileExporter interface {
	ExportInvoice(ctx context.Context, identity entity.ReceiptIdentity) (string, error)
}

// InvoiceEmailer mails a generated invoice file to a recipient.
type InvoiceEmailer interface {
	SendInvoiceEmail(toEmail string, identity entity.ReceiptIdentity, filePath string) error
}

// PrinterStatus describes the configured native print collaborator.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// PrinterStatusReporter is implemented by print collaborators that can report
// their hardware status.
type PrinterStatusReporter interface {
	Status() PrinterStatus
}

// DeliveryService routes invoice delivery requests to the right collaborator
// (native print, browser, file export) and folds every outcome into a uniform
// DeliveryResult. Collaborator failures are reported to the user through the
// notifier; they never escape as raw errors.
type DeliveryService struct {
	printer  InvoicePrinter
	browser  BrowserOpener
	exporter FileExporter
	emailer  InvoiceEmailer
	notifier Notifier
}

// NewDeliveryService creates a new delivery service
func NewDeliveryService(
	printer InvoicePrinter,
	browser BrowserOpener,
	exporter FileExporter,
	emailer InvoiceEmailer,
	notifier Notifier,
) *DeliveryService {
	return &DeliveryService{
		printer:  printer,
		browser:  browser,
		exporter: exporter,
		emailer:  emailer,
		notifier: notifier,
	}
}

// Dispatch delivers the invoice addressed by the request through the
// requested mode.
//
// A request without an admission number is a NoSelection outcome: it is
// reported to the caller immediately and no collaborator is invoked. Every
// delivery failure produces exactly one user-facing notification; browser
// and file successes additionally notify the resulting file path, while a
// print success stays silent because the native print surface owns its own
// user feedback.
func (s *DeliveryService) Dispatch(ctx context.Context, req entity.DeliveryRequest) entity.DeliveryResult {
	if req.AdmissionNo == "" {
		return entity.DeliveryResult{Error: apperror.ErrNoSelection.Message}
	}

	identity := req.Identity()

	switch req.Mode {
	case enum.DeliveryModePrint:
		if err := s.printer.PrintInvoice(ctx, identity); err != nil {
			log.Printf("Printer error (%s/%s): %v", identity.AdmissionNo, identity.WorkNo, err)
			s.notifier.Notify(NotificationError, "Print Invoice", apperror.ErrPrintFailed.Message, nil)
			return entity.DeliveryResult{Error: apperror.ErrPrintFailed.Message}
		}
		return entity.DeliveryResult{Success: true}

	case enum.DeliveryModeBrowser:
		path, err := s.browser.OpenInvoice(ctx, identity)
		if err != nil {
			log.Printf("Browser open error (%s/%s): %v", identity.AdmissionNo, identity.WorkNo, err)
			appErr := apperror.NewBrowserOpenFailedError()
			s.notifier.Notify(NotificationError, "Open in Browser", appErr.Message, nil)
			return entity.DeliveryResult{Error: appErr.Message}
		}
		s.notifier.Notify(NotificationInfo, "Open in Browser", "Invoice saved to "+path, nil)
		return entity.DeliveryResult{Success: true, FilePath: path}

	case enum.DeliveryModeFile:
		path, err := s.exporter.ExportInvoice(ctx, identity)
		if err != nil {
			log.Printf("Invoice generation error (%s/%s): %v", identity.AdmissionNo, identity.WorkNo, err)
			appErr := apperror.NewGenerationFailedError(err.Error())
			s.notifier.Notify(NotificationError, "Generate Invoice", appErr.Message, nil)
			return entity.DeliveryResult{Error: appErr.Message}
		}
		s.notifier.Notify(NotificationInfo, "Generate Invoice", "Invoice file saved to "+path, nil)
		return entity.DeliveryResult{Success: true, FilePath: path}
	}

	return entity.DeliveryResult{Error: apperror.NewBadRequestError("Unknown delivery mode").Message}
}

// EmailInvoice generates the invoice file and mails it to the given address.
func (s *DeliveryService) EmailInvoice(ctx context.Context, identity entity.ReceiptIdentity, toEmail string) entity.DeliveryResult {
	if identity.AdmissionNo == "" {
		return entity.DeliveryResult{Error: apperror.ErrNoSelection.Message}
	}

	path, err := s.exporter.ExportInvoice(ctx, identity)
	if err != nil {
		appErr := apperror.NewGenerationFailedError(err.Error())
		s.notifier.Notify(NotificationError, "Email Invoice", appErr.Message, nil)
		return entity.DeliveryResult{Error: appErr.Message}
	}

	if err := s.emailer.SendInvoiceEmail(toEmail, identity, path); err != nil {
		log.Printf("Invoice email error (%s/%s): %v", identity.AdmissionNo, identity.WorkNo, err)
		s.notifier.Notify(NotificationError, "Email Invoice", "Failed to email invoice to "+toEmail, nil)
		return entity.DeliveryResult{Error: "Failed to email invoice to " + toEmail}
	}

	s.notifier.Notify(NotificationInfo, "Email Invoice", "Invoice emailed to "+toEmail, nil)
	return entity.DeliveryResult{Success: true, FilePath: path}
}

// GetPrinterStatus reports the native printer's configuration and connection
// state when the collaborator can provide it.
func (s *DeliveryService) GetPrinterStatus() PrinterStatus {
	if reporter, ok := s.printer.(PrinterStatusReporter); ok {
		return reporter.Status()
	}
	return PrinterStatus{Type: "none"}
}
