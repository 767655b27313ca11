package delivery

import (
	"log"

	"github.com/sangkips/drivedesk-api/internal/application/service"
)

// LogNotifier reports delivery notifications on the server log. The API is
// headless, so user-facing notifications surface in the delivery result and
// are mirrored here for operators.
type LogNotifier struct{}

// NewLogNotifier creates a new log notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) Notify(kind service.NotificationKind, title, message string, options []string) int {
	log.Printf("[%s] %s: %s", kind, title, message)
	// No interactive surface to offer options on; callers treat the first
	// option as the default.
	return 0
}
