package validators

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	domain "github.com/davantedent/clinic-scheduler/internal/domain/appointment"
	"github.com/davantedent/clinic-scheduler/internal/models"
)

// Field keys of the booking form. Error maps are keyed by these and the
// widget maps them back onto its inputs. Combined date failures land on
// FieldDay and combined time failures on FieldHour, matching the form.
const (
	FieldDay        = "day"
	FieldHour       = "hour"
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldNationalID = "national_id"
	FieldPhone      = "phone"
	FieldBirthDate  = "birth_date"
)

// birthDateLayout matches what a date input submits.
const birthDateLayout = "2006-01-02"

const minYear = 2025

var (
	phoneRe      = regexp.MustCompile(`^\d{9}$`)
	nationalIDRe = regexp.MustCompile(`^\d{8}[A-Za-z]$`)
)

// RawBooking carries the form values exactly as submitted, all strings.
// A blank ID means "book a new appointment"; a filled one means "replace".
type RawBooking struct {
	ID         string `json:"id"`
	Day        string `json:"day"`
	Month      string `json:"month"`
	Year       string `json:"year"`
	Hour       string `json:"hour"`
	Minute     string `json:"minute"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"`
	Notes      string `json:"notes"`
}

type Result struct {
	Valid  bool
	Errors map[string]string
}

// Validate checks the whole form and accumulates every failing field rather
// than stopping at the first. The opening-hours check only runs once the
// five date and time fields are individually well formed.
func Validate(in RawBooking, now time.Time) Result {
	errs := map[string]string{}

	if strings.TrimSpace(in.BirthDate) == "" {
		errs[FieldBirthDate] = "La fecha de nacimiento es obligatoria."
	} else if born, err := time.ParseInLocation(birthDateLayout, in.BirthDate, now.Location()); err != nil {
		errs[FieldBirthDate] = "Formato de fecha de nacimiento incorrecto."
	} else if born.After(now) {
		errs[FieldBirthDate] = "La fecha de nacimiento no puede ser futura."
	}

	if !phoneRe.MatchString(in.Phone) {
		errs[FieldPhone] = "El teléfono debe contener exactamente 9 dígitos numéricos."
	}
	if !nationalIDRe.MatchString(in.NationalID) {
		errs[FieldNationalID] = "El DNI debe tener 8 números y una letra."
	}
	if strings.TrimSpace(in.FirstName) == "" {
		errs[FieldFirstName] = "El nombre es obligatorio."
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs[FieldLastName] = "Los apellidos son obligatorios."
	}

	day, dayErr := strconv.Atoi(strings.TrimSpace(in.Day))
	month, monthErr := strconv.Atoi(strings.TrimSpace(in.Month))
	year, yearErr := strconv.Atoi(strings.TrimSpace(in.Year))

	dateOK := dayErr == nil && day >= 1 && day <= 31 &&
		monthErr == nil && month >= 1 && month <= 12 &&
		yearErr == nil && year >= minYear
	if !dateOK {
		errs[FieldDay] = "Fecha inválida. Revisa día, mes y año."
	} else if max := daysInMonth(year, month); day > max {
		errs[FieldDay] = fmt.Sprintf("El mes %d del año %d solo tiene %d días.", month, year, max)
		dateOK = false
	}

	hour, hourErr := strconv.Atoi(strings.TrimSpace(in.Hour))
	minute, minuteErr := strconv.Atoi(strings.TrimSpace(in.Minute))
	timeOK := hourErr == nil && hour >= 0 && hour <= 23 &&
		minuteErr == nil && minute >= 0 && minute <= 59
	if !timeOK {
		errs[FieldHour] = "Hora o minuto inválido."
	}

	if dateOK && timeOK {
		if check := domain.CheckSlot(year, month, day, hour, minute, now); !check.OK {
			errs[FieldDay] = check.Reason
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func daysInMonth(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ToRecord converts a validated form into a storable record. A blank id gets
// a timestamp-derived one, the same way the widget mints ids.
func ToRecord(in RawBooking, now time.Time) models.Appointment {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = strconv.FormatInt(now.UnixMilli(), 10)
	}

	day, _ := strconv.Atoi(strings.TrimSpace(in.Day))
	month, _ := strconv.Atoi(strings.TrimSpace(in.Month))
	year, _ := strconv.Atoi(strings.TrimSpace(in.Year))
	hour, _ := strconv.Atoi(strings.TrimSpace(in.Hour))
	minute, _ := strconv.Atoi(strings.TrimSpace(in.Minute))

	return models.Appointment{
		ID:         id,
		Day:        day,
		Month:      month,
		Year:       year,
		Hour:       hour,
		Minute:     minute,
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		NationalID: strings.TrimSpace(in.NationalID),
		Phone:      strings.TrimSpace(in.Phone),
		BirthDate:  strings.TrimSpace(in.BirthDate),
		Notes:      strings.TrimSpace(in.Notes),
	}
}
