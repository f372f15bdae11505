package models

import "fmt"

// Appointment is one booking in the clinic agenda. Records reaching the
// store have already passed the form validator; nothing here re-checks them.
type Appointment struct {
	ID string `json:"id"`

	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`

	Hour   int `json:"hour"`
	Minute int `json:"minute"`

	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"`

	Notes string `json:"notes"`
}

// Before compares the composite instant (year, month, day, hour, minute).
// The stored collection is kept sorted by this order.
func (a Appointment) Before(b Appointment) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	if a.Hour != b.Hour {
		return a.Hour < b.Hour
	}
	return a.Minute < b.Minute
}

// FormattedDateTime renders "d/m/yyyy hh:mm" for the agenda table, hour and
// minute zero-padded to two digits.
func (a Appointment) FormattedDateTime() string {
	return fmt.Sprintf("%d/%d/%d %02d:%02d", a.Day, a.Month, a.Year, a.Hour, a.Minute)
}

func (a Appointment) FullName() string {
	return a.FirstName + " " + a.LastName
}
