package delivery

import (
	"context"
	"fmt"

	"github.com/sangkips/drivedesk-api/internal/application/service"
	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	"github.com/sangkips/drivedesk-api/pkg/printer"
)

// EscposPrinter delivers invoices to a thermal printer. It builds the
// receipt document through the receipt service and formats it as an ESC/POS
// byte stream.
type EscposPrinter struct {
	receipts    *service.ReceiptService
	device      printer.Printer
	printerType string
	schoolName  string
}

// NewEscposPrinter creates the native print collaborator.
func NewEscposPrinter(receipts *service.ReceiptService, device printer.Printer, printerType, schoolName string) *EscposPrinter {
	return &EscposPrinter{
		receipts:    receipts,
		device:      device,
		printerType: printerType,
		schoolName:  schoolName,
	}
}

// PrintInvoice builds the receipt for the identity and sends it to the
// printer.
func (p *EscposPrinter) PrintInvoice(ctx context.Context, identity entity.ReceiptIdentity) error {
	doc, err := p.receipts.BuildReceipt(ctx, identity)
	if err != nil {
		return err
	}
	return p.device.Print(p.format(doc))
}

// Status reports printer configuration and connection state.
func (p *EscposPrinter) Status() service.PrinterStatus {
	return service.PrinterStatus{
		Configured: p.printerType != "none" && p.printerType != "",
		Connected:  p.device.IsConnected(),
		Type:       p.printerType,
	}
}

// format converts a receipt document into ESC/POS bytes for 58mm paper.
func (p *EscposPrinter) format(doc *entity.ReceiptDocument) []byte {
	out := printer.NewDocument(32)

	out.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(p.schoolName).
		SetFontSize(printer.FontNormal).
		Text(doc.ReceiptType + " RECEIPT").
		SetBold(false)

	out.SetAlign(printer.AlignLeft).
		Separator('-')

	out.KeyValue("Student:", doc.CustomerName).
		KeyValue("Admission:", doc.AdmissionNo).
		KeyValue("Date:", doc.DateID)

	out.Separator('-')

	for _, row := range doc.Body {
		cells := cellsByColumn(row)
		// A row that opens a merge group prints its description as a
		// heading over the rows it spans.
		if desc, ok := cells[entity.ColumnDescription]; ok {
			out.SetBold(true).Text(desc).SetBold(false)
		}
		out.PaymentLine(cells[entity.ColumnDate], cells[entity.ColumnMode], cells[entity.ColumnPaid])
		if cells[entity.ColumnRemaining] != "0.00" {
			out.KeyValue("  Balance", cells[entity.ColumnRemaining])
		}
	}

	out.Separator('-')

	out.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", doc.TotalAmount)).
		SetBold(false)

	out.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you!").
		SetAlign(printer.AlignLeft)

	out.FeedLines(3).
		PartialCut()

	return out.Bytes()
}

func cellsByColumn(row entity.DocumentRow) map[string]string {
	cells := make(map[string]string, len(row.Cells))
	for _, c := range row.Cells {
		cells[c.Column] = c.Text
	}
	return cells
}
