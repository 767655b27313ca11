package delivery

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sangkips/drivedesk-api/internal/application/service"
	"github.com/sangkips/drivedesk-api/internal/domain/entity"
)

// invoiceTemplate renders a receipt document as a printable HTML page.
// Description cells carry a rowspan so merged payment lines collapse the
// same way the native print layout does.
var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"isAmount": func(column string) bool {
		return column == entity.ColumnPaid || column == entity.ColumnRemaining
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Doc.ReceiptType}} Receipt {{.Doc.AdmissionNo}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 2em; }
h1 { text-align: center; margin-bottom: 0; }
h2 { text-align: center; margin-top: 0.2em; font-size: 1.1em; }
table.meta { margin: 1em auto; }
table.items { border-collapse: collapse; width: 100%; margin-top: 1em; }
table.items th, table.items td { border: 1px solid #444; padding: 6px 10px; text-align: left; }
table.items td.num { text-align: right; }
p.total { text-align: right; font-weight: bold; font-size: 1.2em; }
@media print { body { margin: 0; } }
</style>
</head>
<body onload="window.print()">
<h1>{{.SchoolName}}</h1>
<h2>{{.Doc.ReceiptType}} RECEIPT</h2>
<table class="meta">
<tr><td>Student:</td><td>{{.Doc.CustomerName}}</td></tr>
<tr><td>Admission No:</td><td>{{.Doc.AdmissionNo}}</td></tr>
<tr><td>Date:</td><td>{{.Doc.DateID}}</td></tr>
</table>
<table class="items">
<tr><th>#</th><th>Date</th><th>Description</th><th>Mode</th><th>Paid</th><th>Balance</th></tr>
{{range .Doc.Body}}<tr>{{range .Cells}}{{if gt .RowSpan 1}}<td rowspan="{{.RowSpan}}">{{.Text}}</td>{{else if isAmount .Column}}<td class="num">{{.Text}}</td>{{else}}<td>{{.Text}}</td>{{end}}{{end}}</tr>
{{end}}</table>
<p class="total">Total: {{printf "%.2f" .Doc.TotalAmount}}</p>
</body>
</html>
`))

type invoicePage struct {
	SchoolName string
	Doc        *entity.ReceiptDocument
}

// HTMLExporter renders invoices to HTML files on disk. It is the file-export
// delivery collaborator and the rendering backend of the browser collaborator.
type HTMLExporter struct {
	receipts   *service.ReceiptService
	dir        string
	schoolName string
}

// NewHTMLExporter creates the file-export collaborator. Exported files land
// under dir, which is created on first use.
func NewHTMLExporter(receipts *service.ReceiptService, dir, schoolName string) *HTMLExporter {
	return &HTMLExporter{receipts: receipts, dir: dir, schoolName: schoolName}
}

// ExportInvoice builds the receipt for the identity, renders it to HTML and
// writes it under the export directory, returning the file path.
func (e *HTMLExporter) ExportInvoice(ctx context.Context, identity entity.ReceiptIdentity) (string, error) {
	doc, err := e.receipts.BuildReceipt(ctx, identity)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, invoicePage{SchoolName: e.schoolName, Doc: doc}); err != nil {
		return "", fmt.Errorf("render invoice template: %w", err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory %s: %w", e.dir, err)
	}

	name := fmt.Sprintf("invoice-%s-%s-%d.html",
		sanitize(identity.AdmissionNo), sanitize(identity.WorkNo), time.Now().Unix())
	path := filepath.Join(e.dir, name)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write invoice file %s: %w", path, err)
	}
	return path, nil
}

// sanitize strips path-hostile characters from identifier segments used in
// file names.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
