package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davantedent/clinic-scheduler/internal/dto"
	"github.com/davantedent/clinic-scheduler/internal/httperr"
	"github.com/davantedent/clinic-scheduler/internal/httpresp"
	"github.com/davantedent/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/davantedent/clinic-scheduler/internal/usecase/appointment"
	"github.com/davantedent/clinic-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	upsert *ucAppointment.Upsert
	remove *ucAppointment.DeleteByID
	find   *ucAppointment.FindByID
	list   *ucAppointment.List
}

func NewAppointmentHandler(
	upsert *ucAppointment.Upsert,
	remove *ucAppointment.DeleteByID,
	find *ucAppointment.FindByID,
	list *ucAppointment.List,
) *AppointmentHandler {
	return &AppointmentHandler{
		upsert: upsert,
		remove: remove,
		find:   find,
		list:   list,
	}
}

// ======================================================
// SAVE (CREATE / UPDATE)
// ======================================================

// Save handles the booking form: validation first, upsert second. The body
// carries the raw string field values exactly as the form holds them; an
// empty id books a new appointment, a filled one replaces an existing one.
func (h *AppointmentHandler) Save(c *gin.Context) {
	var req validators.RawBooking
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	now := timezone.Now()

	result := validators.Validate(req, now)
	if !result.Valid {
		httperr.Validation(c, result.Errors)
		return
	}

	rec, err := h.upsert.Execute(c.Request.Context(), validators.ToRecord(req, now))
	if err != nil {
		httperr.Internal(c, "failed_to_save_appointment", "Error al guardar la cita.")
		return
	}

	httpresp.Created(c, rec)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	records := h.list.Execute(c.Request.Context())

	rows := make([]dto.AppointmentRowDTO, 0, len(records))
	for i, r := range records {
		rows = append(rows, dto.AppointmentRowDTO{
			Position:   i + 1,
			DateTime:   r.FormattedDateTime(),
			FullName:   r.FullName(),
			NationalID: r.NationalID,
			Phone:      r.Phone,
			ID:         r.ID,
		})
	}

	httpresp.List(c, rows)
}

// ======================================================
// GET (EDIT PREFILL)
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	rec, ok := h.find.Execute(c.Request.Context(), c.Param("id"))
	if !ok {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ======================================================
// DELETE
// ======================================================

// Delete always answers 204: removing an id that is already gone is a no-op.
// The confirmation dialog stays on the widget side.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Error al eliminar la cita.")
		return
	}

	c.Status(http.StatusNoContent)
}
