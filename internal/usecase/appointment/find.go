package appointment

import (
	"context"
	"strings"

	domain "github.com/davantedent/clinic-scheduler/internal/domain/appointment"
	"github.com/davantedent/clinic-scheduler/internal/models"
)

type FindByID struct {
	repo domain.Repository
}

func NewFindByID(repo domain.Repository) *FindByID {
	return &FindByID{repo: repo}
}

// Execute looks a record up for edit-form prefill. Not finding one is a
// normal outcome.
func (uc *FindByID) Execute(ctx context.Context, id string) (models.Appointment, bool) {
	id = strings.TrimSpace(id)

	for _, r := range uc.repo.LoadAll(ctx) {
		if r.ID == id {
			return r, true
		}
	}
	return models.Appointment{}, false
}
