package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Carrier onboarding status enum values as persisted.
const (
	StatusPending      = "PENDING"
	StatusOnboarded    = "ONBOARDED"
	StatusNotOnboarded = "NOT_ONBOARDED"
)

var (
	nonDigitRe  = regexp.MustCompile(`\D`)
	timeTokenRe = regexp.MustCompile(`\d{2}:\d{2}:\d{2}`)
)

// clockLayouts are tried, in order, when a time cell is neither a recognized
// colon form nor an Excel 1900-01-01 placeholder.
var clockLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"3:04:05 PM",
	"3:04 PM",
	"15:04:05.000",
}

// TrimOrNull returns nil for an empty cell, otherwise the whitespace-trimmed
// string, or nil again if the trim leaves nothing.
func TrimOrNull(cell string) *string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	return &s
}

// Phone strips all non-digit characters and formats 10-digit US numbers as
// (AAA) BBB-CCCC. An 11-digit number with a leading 1 is treated as a US
// number with country code and formatted the same way. Anything else is
// returned as the raw digit string, or nil if no digits remain.
func Phone(cell string) *string {
	digits := nonDigitRe.ReplaceAllString(cell, "")

	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) == 10 {
		formatted := fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
		return &formatted
	}
	if digits == "" {
		return nil
	}
	return &digits
}

// Status maps a raw status cell to one of the three enum values. The
// NOT ONBOARDED check must run before the bare ONBOARDED check: the former
// contains the latter as a substring.
func Status(cell string) string {
	s := strings.ToUpper(strings.TrimSpace(cell))
	switch {
	case s == "":
		return StatusPending
	case strings.Contains(s, "NOT ONBOARDED"):
		return StatusNotOnboarded
	case strings.Contains(s, "ONBOARDED"):
		return StatusOnboarded
	default:
		return StatusPending
	}
}

// IntegerID coerces a cell to the string form of its integer portion.
// Spreadsheets store identifiers like MC numbers as floats, so "145632.0"
// becomes "145632". Returns nil for an empty cell or a failed coercion;
// the caller treats nil as an absent identifier, not an error.
func IntegerID(cell string) *string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	id := strconv.FormatInt(int64(f), 10)
	return &id
}

// Clock normalizes a time-of-day cell to HH:MM:SS.
//
// Excel stores pure times with the placeholder date 1900-01-01; when that
// fragment is present only the embedded HH:MM:SS token is kept. A bare
// HH:MM:SS passes through, HH:MM gains seconds, and anything else goes
// through best-effort layout parsing. Unparseable text is returned
// unchanged: pass-through, not a crash, so no data is dropped silently.
func Clock(cell string) *string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}

	if strings.Contains(s, "1900-01-01") {
		if token := timeTokenRe.FindString(s); token != "" {
			return &token
		}
	}

	if strings.Contains(s, ":") {
		switch strings.Count(s, ":") {
		case 2:
			return &s
		case 1:
			withSeconds := s + ":00"
			return &withSeconds
		}
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			formatted := t.Format("15:04:05")
			return &formatted
		}
	}

	return &s
}

// Miles coerces a numeric cell to a float. Returns nil for an empty cell or
// a failed coercion; a nil miles value is a skip condition for route rows.
func Miles(cell string) *float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Active interprets the spreadsheet spellings of a boolean flag.
// Unrecognized or empty cells are inactive.
func Active(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "true", "t", "1", "yes", "y", "x", "active":
		return true
	default:
		return false
	}
}
