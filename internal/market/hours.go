package market

import "time"

// istLocation is the Asia/Kolkata timezone used by the NSE.
var istLocation = mustLoadLocation("Asia/Kolkata")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// Fallback to a fixed IST zone if tzdata is unavailable.
		return time.FixedZone("IST", int(5.5*60*60))
	}
	return loc
}

// IsStockMarketOpen reports whether the NSE is open at the given
// instant: 09:15 to 15:30 IST, Monday through Friday.
func IsStockMarketOpen(at time.Time) bool {
	ist := at.In(istLocation)
	switch ist.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	minutes := ist.Hour()*60 + ist.Minute()
	return minutes >= 9*60+15 && minutes <= 15*60+30
}

// IsCryptoMarketOpen reports whether crypto markets are open. They
// always are.
func IsCryptoMarketOpen(time.Time) bool { return true }
