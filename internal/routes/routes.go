package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/davantedent/clinic-scheduler/internal/audit"
	"github.com/davantedent/clinic-scheduler/internal/handlers"
	"github.com/davantedent/clinic-scheduler/internal/store"
	ucAppointment "github.com/davantedent/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, st *store.AppointmentStore, log *logrus.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(log)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	upsertUC := ucAppointment.NewUpsert(st, auditDispatcher)
	deleteUC := ucAppointment.NewDeleteByID(st, auditDispatcher)
	findUC := ucAppointment.NewFindByID(st)
	listUC := ucAppointment.NewList(st)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		upsertUC,
		deleteUC,
		findUC,
		listUC,
	)

	api := r.Group("/api")
	{
		api.POST("/appointments", appointmentHandler.Save)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
	}
}
