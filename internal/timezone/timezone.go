package timezone

import "time"

// DefaultTimezone is the clinic's local zone. Slot validation and id minting
// both read the clock through here so they agree on "now".
const DefaultTimezone = "Europe/Madrid"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
