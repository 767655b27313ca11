package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	"github.com/sangkips/drivedesk-api/internal/domain/repository"
	"github.com/sangkips/drivedesk-api/pkg/apperror"
	"github.com/sangkips/drivedesk-api/pkg/dates"
)

// Placeholder shown in header fields that have no value.
const emDash = "—"

// DefaultReceiptType is used when a record does not carry a receipt type.
const DefaultReceiptType = "ORIGINAL"

// RenderListener receives a notification once a receipt document has been
// fully materialized. The notification never fires before every row has been
// appended, so listeners may trigger a print action as soon as it arrives.
type RenderListener interface {
	ReceiptRendered(identity entity.ReceiptIdentity)
}

type noopRenderListener struct{}

func (noopRenderListener) ReceiptRendered(entity.ReceiptIdentity) {}

// ReceiptService turns raw invoice records into print-ready receipt
// documents. Dates are normalized and repeated line descriptions are merged
// into spanned cells; totals pass through unchanged.
type ReceiptService struct {
	recordRepo repository.InvoiceRecordRepository
	listener   RenderListener
}

// NewReceiptService creates a new receipt service. A nil listener is allowed
// and means nobody is waiting on render completion.
func NewReceiptService(recordRepo repository.InvoiceRecordRepository, listener RenderListener) *ReceiptService {
	if listener == nil {
		listener = noopRenderListener{}
	}
	return &ReceiptService{recordRepo: recordRepo, listener: listener}
}

// Compose builds the read-only view-model for a raw invoice record.
//
// A record with a nil item slice is malformed: the record source broke its
// contract and the compose cycle is aborted. An empty (non-nil) item slice is
// fine; the receipt simply has no body rows.
func (s *ReceiptService) Compose(record *entity.InvoiceRecord) (*entity.ReceiptViewModel, error) {
	if record == nil || record.Items == nil {
		return nil, apperror.ErrMalformedRecord
	}

	receiptType := strings.ToUpper(record.Type)
	if receiptType == "" {
		receiptType = DefaultReceiptType
	}
	customer := strings.ToUpper(record.Customer)
	if customer == "" {
		customer = emDash
	}
	admissionNo := record.AdmissionNo
	if admissionNo == "" {
		admissionNo = emDash
	}

	groups := GroupLineItems(record.Items)
	rows := make([]entity.RenderedRow, 0, len(record.Items))
	for i, item := range record.Items {
		rows = append(rows, entity.RenderedRow{
			Index:       i + 1,
			Date:        dates.Normalize(item.Date),
			Description: groups.Cell(item.Desc, i),
			Mode:        strings.ToUpper(item.Mode),
			Paid:        item.Paid,
			Remaining:   item.Remaining,
		})
	}

	return &entity.ReceiptViewModel{
		ReceiptType:  receiptType,
		CustomerName: customer,
		DateID:       dates.Normalize(record.Date),
		AdmissionNo:  admissionNo,
		Rows:         rows,
		TotalAmount:  record.Total,
	}, nil
}

// Render materializes a view-model into a receipt document. Rendering is
// synchronous and idempotent: the same view-model always produces the same
// document, and the document never aliases the view-model's storage.
func (s *ReceiptService) Render(vm *entity.ReceiptViewModel) *entity.ReceiptDocument {
	doc := &entity.ReceiptDocument{
		ReceiptType:  vm.ReceiptType,
		CustomerName: vm.CustomerName,
		DateID:       vm.DateID,
		AdmissionNo:  vm.AdmissionNo,
		TotalAmount:  vm.TotalAmount,
		Body:         make([]entity.DocumentRow, 0, len(vm.Rows)),
	}

	for _, row := range vm.Rows {
		cells := make([]entity.DocumentCell, 0, 6)
		cells = append(cells,
			entity.DocumentCell{Column: entity.ColumnIndex, Text: strconv.Itoa(row.Index), RowSpan: 1},
			entity.DocumentCell{Column: entity.ColumnDate, Text: row.Date, RowSpan: 1},
		)
		if row.Description != nil {
			cells = append(cells, entity.DocumentCell{
				Column:  entity.ColumnDescription,
				Text:    row.Description.Text,
				RowSpan: row.Description.Span,
			})
		}
		cells = append(cells,
			entity.DocumentCell{Column: entity.ColumnMode, Text: row.Mode, RowSpan: 1},
			entity.DocumentCell{Column: entity.ColumnPaid, Text: formatAmount(row.Paid), RowSpan: 1},
			entity.DocumentCell{Column: entity.ColumnRemaining, Text: formatAmount(row.Remaining), RowSpan: 1},
		)
		doc.Body = append(doc.Body, entity.DocumentRow{Cells: cells})
	}

	return doc
}

// BuildReceipt fetches the invoice record addressed by the identity, composes
// it, and renders the receipt document. The render listener is notified after
// the last row has been appended and before the document is returned.
func (s *ReceiptService) BuildReceipt(ctx context.Context, identity entity.ReceiptIdentity) (*entity.ReceiptDocument, error) {
	record, err := s.recordRepo.GetRecord(ctx, identity)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Invoice record")
	}

	vm, err := s.Compose(record)
	if err != nil {
		return nil, err
	}

	doc := s.Render(vm)
	s.listener.ReceiptRendered(identity)
	return doc, nil
}

// formatAmount renders a monetary amount with two decimals
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
