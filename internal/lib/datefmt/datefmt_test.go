package datefmt_test

import (
	"testing"
	"time"

	"bluearc/internal/lib/datefmt"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "regular date", in: "2025-08-20", want: "Aug 20, 2025"},
		{name: "single digit day is padded", in: "2025-08-05", want: "Aug 05, 2025"},
		{name: "year boundary", in: "2024-12-31", want: "Dec 31, 2024"},
		{name: "empty", in: "", want: ""},
		{name: "malformed", in: "20th of August", want: "20th of August"},
		{name: "impossible date", in: "2025-02-30", want: "2025-02-30"},
		{name: "timestamp is not a calendar date", in: "2025-08-20T10:00:00Z", want: "2025-08-20T10:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, datefmt.FormatDisplayDate(tt.in))
		})
	}
}

func TestFormatDisplayDate_IgnoresLocalZone(t *testing.T) {
	orig := time.Local
	t.Cleanup(func() { time.Local = orig })

	for _, zone := range []string{"Pacific/Kiritimati", "Pacific/Pago_Pago", "America/Los_Angeles"} {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			t.Skipf("zoneinfo unavailable: %v", err)
		}
		time.Local = loc

		assert.Equal(t, "Aug 20, 2025", datefmt.FormatDisplayDate("2025-08-20"), zone)
	}
}
