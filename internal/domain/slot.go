package domain

import "github.com/elietedasilvas/BLZ-BookingService/pkg/types"

// Slot represents a computed, bookable time interval. Slots are derived from
// availability windows and never persisted; each one is exactly the service
// duration wide.
type Slot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

// Overlaps returns true if the slot overlaps the [start, end) interval.
// Half-open semantics: a slot ending exactly when an interval starts does not
// overlap, so back-to-back appointments are allowed.
func (s *Slot) Overlaps(start, end types.TimeString) bool {
	return s.StartTime.IsBefore(end) && s.EndTime.IsAfter(start)
}
