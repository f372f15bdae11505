package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckSlot(t *testing.T) {
	// Sunday 2025-06-01 10:00
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		year   int
		month  int
		day    int
		hour   int
		minute int
		wantOK bool
		reason string
	}{
		{"monday morning", 2025, 6, 9, 10, 30, true, ""},
		{"monday afternoon", 2025, 6, 9, 17, 0, true, ""},
		{"monday siesta gap", 2025, 6, 9, 15, 0, false, ReasonOutsideHours},
		{"before opening", 2025, 6, 9, 8, 59, false, ReasonOutsideHours},
		{"morning open boundary", 2025, 6, 9, 9, 0, true, ""},
		{"last morning minute", 2025, 6, 9, 13, 59, true, ""},
		{"morning close boundary", 2025, 6, 9, 14, 0, false, ReasonOutsideHours},
		{"gap before afternoon", 2025, 6, 9, 15, 59, false, ReasonOutsideHours},
		{"afternoon open boundary", 2025, 6, 9, 16, 0, true, ""},
		{"last afternoon minute", 2025, 6, 9, 19, 59, true, ""},
		{"afternoon close boundary", 2025, 6, 9, 20, 0, false, ReasonOutsideHours},
		{"sunday inside hours", 2025, 6, 8, 10, 0, false, ReasonWeekend},
		{"saturday inside hours", 2025, 6, 7, 12, 0, false, ReasonWeekend},
		{"in the past", 2025, 5, 30, 10, 0, false, ReasonNotInFuture},
		// equal to now fails the future rule before the weekend rule
		{"exactly now", 2025, 6, 1, 10, 0, false, ReasonNotInFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckSlot(tt.year, tt.month, tt.day, tt.hour, tt.minute, now)
			assert.Equal(t, tt.wantOK, got.OK)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestCheckSlotIsDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	first := CheckSlot(2025, 6, 9, 10, 30, now)
	second := CheckSlot(2025, 6, 9, 10, 30, now)

	assert.Equal(t, first, second)
}
