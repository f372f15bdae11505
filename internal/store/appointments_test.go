package store_test

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davantedent/clinic-scheduler/internal/infra/blob"
	"github.com/davantedent/clinic-scheduler/internal/models"
	"github.com/davantedent/clinic-scheduler/internal/store"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func record(id string, year, month, day, hour, minute int) models.Appointment {
	return models.Appointment{
		ID:         id,
		Day:        day,
		Month:      month,
		Year:       year,
		Hour:       hour,
		Minute:     minute,
		FirstName:  "Ana",
		LastName:   "García",
		NationalID: "12345678A",
		Phone:      "612345678",
		BirthDate:  "1990-05-10",
	}
}

func TestLoadAllEmptySlot(t *testing.T) {
	st := store.New(blob.NewMemoryBlob(), 0, quietLogger())

	got := st.LoadAll(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadAllCorruptBlob(t *testing.T) {
	b := blob.NewMemoryBlob()
	b.Seed("{this is not json")

	st := store.New(b, 0, quietLogger())

	got := st.LoadAll(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSaveAllRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.New(blob.NewMemoryBlob(), 0, quietLogger())

	// deliberately out of order
	in := []models.Appointment{
		record("c", 2026, 1, 5, 16, 0),
		record("a", 2025, 7, 1, 9, 30),
		record("b", 2025, 7, 1, 9, 0),
	}
	require.NoError(t, st.SaveAll(ctx, in))

	got := st.LoadAll(ctx)

	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestSaveAllPersistsSortedOrder(t *testing.T) {
	ctx := context.Background()
	b := blob.NewMemoryBlob()
	st := store.New(b, 0, quietLogger())

	require.NoError(t, st.SaveAll(ctx, []models.Appointment{
		record("late", 2025, 12, 24, 10, 0),
		record("early", 2025, 6, 9, 10, 0),
	}))

	// the blob itself holds the sorted order, not just the read path
	raw, err := b.Get(ctx)
	require.NoError(t, err)

	var stored []models.Appointment
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, "early", stored[0].ID)
	assert.Equal(t, "late", stored[1].ID)
}

func TestSaveAllOverwrites(t *testing.T) {
	ctx := context.Background()
	st := store.New(blob.NewMemoryBlob(), 0, quietLogger())

	require.NoError(t, st.SaveAll(ctx, []models.Appointment{
		record("a", 2025, 7, 1, 9, 0),
		record("b", 2025, 7, 2, 9, 0),
	}))
	require.NoError(t, st.SaveAll(ctx, []models.Appointment{
		record("c", 2025, 7, 3, 9, 0),
	}))

	got := st.LoadAll(ctx)

	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestSaveAllKeepsFieldsVerbatim(t *testing.T) {
	ctx := context.Background()
	st := store.New(blob.NewMemoryBlob(), 0, quietLogger())

	rec := record("a", 2025, 7, 1, 9, 5)
	rec.Notes = "traer radiografía"
	require.NoError(t, st.SaveAll(ctx, []models.Appointment{rec}))

	got := st.LoadAll(ctx)

	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])
}
