package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

func appt(start, end types.TimeString, status AppointmentStatus) *Appointment {
	return &Appointment{
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func TestIsIntervalFree(t *testing.T) {
	tests := []struct {
		name         string
		start, end   types.TimeString
		appointments []*Appointment
		want         bool
	}{
		{
			name:  "no appointments",
			start: "09:00", end: "09:45",
			appointments: nil,
			want:         true,
		},
		{
			name:  "exact overlap",
			start: "09:00", end: "09:45",
			appointments: []*Appointment{appt("09:00", "09:45", StatusScheduled)},
			want:         false,
		},
		{
			name:  "partial overlap at start",
			start: "09:45", end: "10:30",
			appointments: []*Appointment{appt("10:00", "10:45", StatusScheduled)},
			want:         false,
		},
		{
			name:  "partial overlap at end",
			start: "10:30", end: "11:15",
			appointments: []*Appointment{appt("10:00", "10:45", StatusScheduled)},
			want:         false,
		},
		{
			name:  "interval contains appointment",
			start: "09:00", end: "12:00",
			appointments: []*Appointment{appt("10:00", "10:45", StatusScheduled)},
			want:         false,
		},
		{
			name:  "appointment contains interval",
			start: "10:15", end: "10:30",
			appointments: []*Appointment{appt("10:00", "10:45", StatusScheduled)},
			want:         false,
		},
		{
			name:  "back-to-back after appointment",
			start: "10:45", end: "11:30",
			appointments: []*Appointment{appt("10:00", "10:45", StatusScheduled)},
			want:         true,
		},
		{
			name:  "back-to-back before appointment",
			start: "09:15", end: "10:00",
			appointments: []*Appointment{appt("10:00", "10:45", StatusScheduled)},
			want:         true,
		},
		{
			name:  "cancelled appointment does not occupy slot",
			start: "10:00", end: "10:45",
			appointments: []*Appointment{appt("10:00", "10:45", StatusCanceled)},
			want:         true,
		},
		{
			name:  "confirmed appointment occupies slot",
			start: "10:00", end: "10:45",
			appointments: []*Appointment{appt("10:00", "10:45", StatusConfirmed)},
			want:         false,
		},
		{
			name:  "one conflict among several appointments",
			start: "11:00", end: "11:45",
			appointments: []*Appointment{
				appt("09:00", "09:45", StatusScheduled),
				appt("10:00", "10:45", StatusCanceled),
				appt("11:30", "12:15", StatusScheduled),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIntervalFree(tt.start, tt.end, tt.appointments))
		})
	}
}

// Проверка занятости симметрична: если A пересекается с B, то B пересекается с A
func TestIsIntervalFree_Symmetry(t *testing.T) {
	a := appt("09:45", "10:30", StatusScheduled)
	b := appt("10:00", "10:45", StatusScheduled)

	assert.False(t, IsIntervalFree(a.StartTime, a.EndTime, []*Appointment{b}))
	assert.False(t, IsIntervalFree(b.StartTime, b.EndTime, []*Appointment{a}))
}

func TestSlot_Overlaps(t *testing.T) {
	slot := &Slot{StartTime: "09:45", EndTime: "10:30", DurationMinutes: 45}

	assert.True(t, slot.Overlaps("10:00", "10:45"))
	assert.False(t, slot.Overlaps("10:30", "11:15"))
	assert.False(t, slot.Overlaps("09:00", "09:45"))
}

func TestAvailabilityWindow_Contains(t *testing.T) {
	window := &AvailabilityWindow{StartTime: "09:00", EndTime: "13:00"}

	assert.True(t, window.Contains("09:00", "09:45"))
	assert.True(t, window.Contains("12:15", "13:00"))
	assert.False(t, window.Contains("08:45", "09:30"))
	assert.False(t, window.Contains("12:30", "13:15"))
}
