package delivery

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/sangkips/drivedesk-api/internal/domain/entity"
)

// BrowserLauncher delivers invoices by exporting them to HTML and opening
// the file in the host's default browser. The exported page triggers the
// browser print dialog on load.
type BrowserLauncher struct {
	exporter *HTMLExporter
	// openCommand overrides the platform launcher, used in tests.
	openCommand func(path string) *exec.Cmd
}

// NewBrowserLauncher creates the browser delivery collaborator.
func NewBrowserLauncher(exporter *HTMLExporter) *BrowserLauncher {
	return &BrowserLauncher{exporter: exporter}
}

// OpenInvoice exports the invoice and opens it in the default browser,
// returning the path of the exported file.
func (b *BrowserLauncher) OpenInvoice(ctx context.Context, identity entity.ReceiptIdentity) (string, error) {
	path, err := b.exporter.ExportInvoice(ctx, identity)
	if err != nil {
		return "", err
	}

	cmd := b.command(path)
	if cmd == nil {
		return "", fmt.Errorf("no browser launcher for platform %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("open %s in browser: %w", path, err)
	}
	// Reap the child so a finished opener does not linger as a zombie.
	go cmd.Wait()
	return path, nil
}

func (b *BrowserLauncher) command(path string) *exec.Cmd {
	if b.openCommand != nil {
		return b.openCommand(path)
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	case "linux":
		return exec.Command("xdg-open", path)
	}
	return nil
}
