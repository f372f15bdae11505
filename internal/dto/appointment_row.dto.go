package dto

// AppointmentRowDTO is one row of the agenda table the widget renders:
// 1-based position, formatted date, patient identity and the id its
// edit/delete buttons act on.
type AppointmentRowDTO struct {
	Position   int    `json:"position"`
	DateTime   string `json:"date_time"`
	FullName   string `json:"full_name"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
	ID         string `json:"id"`
}
