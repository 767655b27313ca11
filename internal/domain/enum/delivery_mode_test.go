package enum

import "testing"

func TestParseDeliveryMode(t *testing.T) {
	t.Parallel()

	cases := map[string]DeliveryMode{
		"print":   DeliveryModePrint,
		"browser": DeliveryModeBrowser,
		"file":    DeliveryModeFile,
	}
	for input, want := range cases {
		mode, err := ParseDeliveryMode(input)
		if err != nil {
			t.Errorf("ParseDeliveryMode(%q) failed: %v", input, err)
		}
		if mode != want {
			t.Errorf("ParseDeliveryMode(%q) = %v, want %v", input, mode, want)
		}
	}

	if _, err := ParseDeliveryMode("fax"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestDeliveryModeStringIsTotal(t *testing.T) {
	t.Parallel()

	if got := DeliveryModeBrowser.String(); got != "browser" {
		t.Errorf("String() = %q, want browser", got)
	}
	// Out-of-range values must not panic.
	if got := DeliveryMode(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
	if got := DeliveryMode(-1).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
