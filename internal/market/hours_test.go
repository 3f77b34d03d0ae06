package market

import (
	"testing"
	"time"
)

// TestIsStockMarketOpen tests NSE trading hours.
//
// WHY: The scheduler and status endpoint both key off this; an
// off-by-one at the session boundaries reports the market open when
// orders would never fill in reality.
func TestIsStockMarketOpen(t *testing.T) {
	ist := time.FixedZone("IST", int(5.5*60*60))
	at := func(day time.Time, hour, minute int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, ist)
	}
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, ist)
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, ist)
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, ist)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before the open", at(monday, 9, 14), false},
		{"at the open", at(monday, 9, 15), true},
		{"midday", at(monday, 12, 0), true},
		{"at the close", at(monday, 15, 30), true},
		{"after the close", at(monday, 15, 31), false},
		{"saturday midday", at(saturday, 12, 0), false},
		{"sunday midday", at(sunday, 12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStockMarketOpen(tt.at); got != tt.want {
				t.Errorf("IsStockMarketOpen(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}

	t.Run("converts other timezones to IST", func(t *testing.T) {
		// 05:00 UTC on a Monday is 10:30 IST, inside the session.
		utc := time.Date(2025, 6, 2, 5, 0, 0, 0, time.UTC)
		if !IsStockMarketOpen(utc) {
			t.Error("Expected open for 05:00 UTC Monday (10:30 IST)")
		}
	})
}

func TestIsCryptoMarketOpen(t *testing.T) {
	// Any instant will do: crypto never closes.
	if !IsCryptoMarketOpen(time.Date(2025, 6, 8, 3, 0, 0, 0, time.UTC)) {
		t.Error("Crypto market must always be open")
	}
}
