package util

import "time"

// Now is the clock used by NowUTC; tests may swap it.
var Now = time.Now

// NowUTC returns the current clock reading in UTC.
func NowUTC() time.Time {
	return Now().UTC()
}
