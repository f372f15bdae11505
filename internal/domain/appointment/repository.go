package appointment

import (
	"context"

	"github.com/davantedent/clinic-scheduler/internal/models"
)

// Repository is the persisted, ordered appointment collection.
// Implementations keep records sorted ascending by composite instant across
// saves, and degrade an unreadable collection to an empty one.
type Repository interface {
	LoadAll(ctx context.Context) []models.Appointment
	SaveAll(ctx context.Context, records []models.Appointment) error
}
