package appointment

import (
	"context"
	"strings"

	"github.com/davantedent/clinic-scheduler/internal/audit"
	domain "github.com/davantedent/clinic-scheduler/internal/domain/appointment"
)

type DeleteByID struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteByID(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteByID {
	return &DeleteByID{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes every record whose id matches (at most one under the
// upsert contract). An unknown id is a silent no-op, not an error.
func (uc *DeleteByID) Execute(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	records := uc.repo.LoadAll(ctx)

	kept := records[:0]
	removed := false
	for _, r := range records {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}

	if !removed {
		return nil
	}

	if err := uc.repo.SaveAll(ctx, kept); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})

	return nil
}
