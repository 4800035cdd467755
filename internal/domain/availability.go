package domain

import (
	"time"

	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

// AvailabilityWindow represents a recurring weekly interval during which a
// professional accepts appointments. Windows are keyed by numeric day of week
// (0 = Sunday .. 6 = Saturday, matching time.Weekday) and replaced wholesale
// per (professional, day) on every schedule edit.
type AvailabilityWindow struct {
	ID             int64
	ProfessionalID int64
	DayOfWeek      int
	StartTime      types.TimeString
	EndTime        types.TimeString
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Contains returns true if the [start, end) interval lies fully inside the window
func (w *AvailabilityWindow) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.StartTime) && !end.IsAfter(w.EndTime)
}

// DayOfWeekFromDate возвращает числовой день недели даты (0 = воскресенье).
// Всегда используем числовое значение, а не локализованное имя дня.
func DayOfWeekFromDate(date time.Time) int {
	return int(date.Weekday())
}
