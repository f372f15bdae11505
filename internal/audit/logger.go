package audit

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Event struct {
	ID       uuid.UUID
	Action   string
	Entity   string
	EntityID string
	Metadata map[string]any
}

// Logger writes audit events to the structured application log.
type Logger struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(ev Event) error {
	fields := logrus.Fields{
		"audit_id":  ev.ID.String(),
		"action":    ev.Action,
		"entity":    ev.Entity,
		"entity_id": ev.EntityID,
	}
	if ev.Metadata != nil {
		fields["metadata"] = ev.Metadata
	}

	l.log.WithFields(fields).Info("audit")
	return nil
}
