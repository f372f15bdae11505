package appointment

import (
	"context"

	domain "github.com/davantedent/clinic-scheduler/internal/domain/appointment"
	"github.com/davantedent/clinic-scheduler/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

// Execute returns the collection in its persisted chronological order.
func (uc *List) Execute(ctx context.Context) []models.Appointment {
	return uc.repo.LoadAll(ctx)
}
