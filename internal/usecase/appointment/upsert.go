package appointment

import (
	"context"
	"strings"

	"github.com/davantedent/clinic-scheduler/internal/audit"
	domain "github.com/davantedent/clinic-scheduler/internal/domain/appointment"
	"github.com/davantedent/clinic-scheduler/internal/models"
)

type Upsert struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpsert(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Upsert {
	return &Upsert{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the record carrying the same id, or appends a new one.
// The caller is responsible for validation; nothing is re-checked here. The
// save re-sorts the collection, so order stays chronological either way.
func (uc *Upsert) Execute(
	ctx context.Context,
	rec models.Appointment,
) (models.Appointment, error) {

	rec.ID = strings.TrimSpace(rec.ID)

	records := uc.repo.LoadAll(ctx)

	replaced := false
	for i := range records {
		if records[i].ID == rec.ID {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}

	if err := uc.repo.SaveAll(ctx, records); err != nil {
		return models.Appointment{}, err
	}

	action := "appointment_created"
	if replaced {
		action = "appointment_updated"
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: rec.ID,
		Metadata: map[string]any{
			"date_time": rec.FormattedDateTime(),
		},
	})

	return rec, nil
}
