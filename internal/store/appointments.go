package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/davantedent/clinic-scheduler/internal/models"
)

// DefaultTTL mirrors the one-year cookie the widget used.
const DefaultTTL = 365 * 24 * time.Hour

// AppointmentStore persists the whole appointment collection as one JSON
// blob, full replace on every save. It trusts its callers: records are
// validated before they get here.
type AppointmentStore struct {
	blob Blob
	ttl  time.Duration
	log  *logrus.Logger
}

func New(blob Blob, ttl time.Duration, log *logrus.Logger) *AppointmentStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &AppointmentStore{blob: blob, ttl: ttl, log: log}
}

// LoadAll returns the stored collection. An absent or unreadable slot yields
// an empty collection; the failure is logged, never surfaced to the caller.
func (s *AppointmentStore) LoadAll(ctx context.Context) []models.Appointment {
	raw, err := s.blob.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoData) {
			s.log.WithError(err).Warn("could not read appointment blob")
		}
		return []models.Appointment{}
	}

	var records []models.Appointment
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.WithError(err).Warn("corrupt appointment blob, treating as empty")
		return []models.Appointment{}
	}
	return records
}

// SaveAll sorts the collection ascending by composite instant and rewrites
// the slot. The sorted order is what gets persisted, not just displayed.
func (s *AppointmentStore) SaveAll(ctx context.Context, records []models.Appointment) error {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Before(records[j])
	})

	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.blob.Set(ctx, string(raw), s.ttl)
}
