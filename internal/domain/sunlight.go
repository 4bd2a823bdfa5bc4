package domain

import "time"

// SunlightWindow holds the sunrise and sunset times (naive UTC) for one
// timezone and date. Stateless, recomputed per request.
type SunlightWindow struct {
	SunriseUTC time.Time
	SunsetUTC  time.Time
}
