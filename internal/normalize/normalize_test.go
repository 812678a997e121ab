package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimOrNull(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t ", nil},
		{"trimmed", "  Acme Freight  ", strptr("Acme Freight")},
		{"already clean", "Acme", strptr("Acme")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimOrNull(tt.in))
		})
	}
}

func TestPhone_TenDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare digits", "5551234567", "(555) 123-4567"},
		{"dashed", "555-123-4567", "(555) 123-4567"},
		{"dotted", "555.123.4567", "(555) 123-4567"},
		{"already formatted", "(555) 123-4567", "(555) 123-4567"},
		{"with extension noise", "555 123 4567 ", "(555) 123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phone(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestPhone_ElevenDigitsLeadingOne(t *testing.T) {
	// An 11-digit number with country code equals its 10-digit form.
	with := Phone("15551234567")
	without := Phone("5551234567")
	require.NotNil(t, with)
	require.NotNil(t, without)
	assert.Equal(t, *without, *with)
	assert.Equal(t, "(555) 123-4567", *with)
}

func TestPhone_Fallbacks(t *testing.T) {
	short := Phone("12345")
	require.NotNil(t, short)
	assert.Equal(t, "12345", *short, "odd lengths fall back to raw digits")

	eleven := Phone("25551234567")
	require.NotNil(t, eleven)
	assert.Equal(t, "25551234567", *eleven, "11 digits without leading 1 stays raw")

	assert.Nil(t, Phone(""), "empty cell is absent")
	assert.Nil(t, Phone("n/a"), "no digits at all is absent")
}

func TestStatus_Total(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", StatusPending},
		{"   ", StatusPending},
		{"Onboarded", StatusOnboarded},
		{"ONBOARDED", StatusOnboarded},
		{"onboarded - active", StatusOnboarded},
		{"Not Onboarded", StatusNotOnboarded},
		{"NOT ONBOARDED", StatusNotOnboarded},
		{"  not onboarded (lapsed)  ", StatusNotOnboarded},
		{"In Progress", StatusPending},
		{"garbage", StatusPending},
	}

	for _, tt := range tests {
		got := Status(tt.in)
		assert.Equal(t, tt.want, got, "Status(%q)", tt.in)
		assert.Contains(t,
			[]string{StatusPending, StatusOnboarded, StatusNotOnboarded}, got,
			"Status must always yield an enum value")
	}
}

func TestIntegerID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{"empty", "", nil},
		{"plain integer", "145632", strptr("145632")},
		{"float artifact", "145632.0", strptr("145632")},
		{"fractional dropped", "200.75", strptr("200")},
		{"not a number", "pending", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntegerID(tt.in))
		})
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{"empty", "", nil},
		{"excel placeholder date", "1900-01-01 08:15:00", strptr("08:15:00")},
		{"placeholder with extra token", "1900-01-01 00:00:00 08:15:00", strptr("00:00:00")},
		{"full time passes through", "08:15:00", strptr("08:15:00")},
		{"minutes gain seconds", "08:15", strptr("08:15:00")},
		{"datetime with three colon parts", "2023-05-01 08:15:00", strptr("2023-05-01 08:15:00")},
		{"unparseable passes through", "around eight", strptr("around eight")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clock(tt.in))
		})
	}
}

func TestClock_TwelveHourWithColon(t *testing.T) {
	// "8:15 PM" contains one colon, so the colon branch appends seconds
	// before layout parsing ever runs. Locking in the actual behavior:
	// the appended form keeps the meridiem suffix.
	got := Clock("8:15 PM")
	require.NotNil(t, got)
	assert.Equal(t, "8:15 PM:00", *got)
}

func TestMiles(t *testing.T) {
	assert.Nil(t, Miles(""))
	assert.Nil(t, Miles("unknown"))

	got := Miles("412.5")
	require.NotNil(t, got)
	assert.Equal(t, 412.5, *got)
}

func TestActive(t *testing.T) {
	for _, in := range []string{"TRUE", "true", "1", "Yes", "y", "X", "Active"} {
		assert.True(t, Active(in), "Active(%q)", in)
	}
	for _, in := range []string{"", "FALSE", "0", "no", "retired"} {
		assert.False(t, Active(in), "Active(%q)", in)
	}
}

func strptr(s string) *string { return &s }
