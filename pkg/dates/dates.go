package dates

import "strings"

// DisplayLayout is the canonical date form used on receipts: DD-MM-YYYY.
const DisplayLayout = "02-01-2006"

// Normalize converts the date encodings found in imported records into the
// canonical DD-MM-YYYY display form. Recognized inputs:
//
//	DD/MM/YYYY            (slash-separated, parts may be unpadded)
//	DD-MM-YYYY            (already canonical, returned unchanged)
//	YYYY-MM-DD            (ISO date)
//	YYYY-MM-DD HH:MM:SS   (ISO timestamp, time part discarded)
//
// Malformed or empty input yields "". Normalize never fails and is idempotent:
// feeding its own output back in returns the same value.
//
// The branch order below is deliberate. A two-digit first segment decides the
// "already canonical" case before the ISO fallback, which matches how existing
// records were written; do not replace this with a generic parser.
func Normalize(input string) string {
	if input == "" {
		return ""
	}

	if strings.Contains(input, "/") {
		parts := strings.Split(input, "/")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return ""
		}
		return pad2(parts[0]) + "-" + pad2(parts[1]) + "-" + parts[2]
	}

	if strings.Contains(input, "-") && len(strings.SplitN(input, "-", 2)[0]) == 2 {
		return input
	}

	// YYYY-MM-DD with an optional time suffix.
	datePart := input
	if idx := strings.IndexByte(input, ' '); idx >= 0 {
		datePart = input[:idx]
	}
	parts := strings.Split(datePart, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ""
	}
	return pad2(parts[2]) + "-" + pad2(parts[1]) + "-" + parts[0]
}

// pad2 left-pads a day or month component to two digits.
func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
