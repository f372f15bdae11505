package appointment

import "time"

// Clinic opening windows, in minutes since midnight.
const (
	MorningOpen    = 9 * 60
	MorningClose   = 14 * 60
	AfternoonOpen  = 16 * 60
	AfternoonClose = 20 * 60
)

const (
	ReasonNotInFuture  = "La cita debe ser en el futuro."
	ReasonWeekend      = "No se puede reservar citas los Sábados ni Domingos."
	ReasonOutsideHours = "Horario no disponible. El horario es L-V: 9:00-14:00 y 16:00-20:00."
)

type SlotCheck struct {
	OK     bool
	Reason string
}

// CheckSlot decides whether the candidate date and time is a bookable slot.
// Rules apply in order and the first failure wins: the slot must be strictly
// after now, fall on a weekday, and start inside one of the two opening
// windows. The candidate is built in now's location so both share a calendar.
func CheckSlot(year, month, day, hour, minute int, now time.Time) SlotCheck {
	slot := time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location())

	if !slot.After(now) {
		return SlotCheck{Reason: ReasonNotInFuture}
	}

	if wd := slot.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return SlotCheck{Reason: ReasonWeekend}
	}

	sinceMidnight := hour*60 + minute
	morning := sinceMidnight >= MorningOpen && sinceMidnight < MorningClose
	afternoon := sinceMidnight >= AfternoonOpen && sinceMidnight < AfternoonClose
	if !morning && !afternoon {
		return SlotCheck{Reason: ReasonOutsideHours}
	}

	return SlotCheck{OK: true}
}
