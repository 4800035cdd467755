package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

func window(start, end types.TimeString) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ProfessionalID: 1,
		StartTime:      start,
		EndTime:        end,
	}
}

func slotStarts(slots []domain.Slot) []string {
	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.StartTime.String()
	}
	return starts
}

func TestGenerateSlots(t *testing.T) {
	t.Run("45 minute service tiles 09:00-12:00 window", func(t *testing.T) {
		slots, err := generateSlots([]*domain.AvailabilityWindow{window("09:00", "12:00")}, 45)
		require.NoError(t, err)

		// Последний полный слот 11:15-12:00, для 12:00-12:45 места нет
		assert.Equal(t, []string{"09:00", "09:45", "10:30", "11:15"}, slotStarts(slots))
		for _, s := range slots {
			assert.Equal(t, 45, s.DurationMinutes)
		}
	})

	t.Run("window shorter than duration yields no slots", func(t *testing.T) {
		slots, err := generateSlots([]*domain.AvailabilityWindow{window("09:00", "09:30")}, 45)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("window exactly one duration yields one slot", func(t *testing.T) {
		slots, err := generateSlots([]*domain.AvailabilityWindow{window("09:00", "09:45")}, 45)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
		assert.Equal(t, types.TimeString("09:45"), slots[0].EndTime)
	})

	t.Run("multiple windows are tiled independently", func(t *testing.T) {
		windows := []*domain.AvailabilityWindow{
			window("09:00", "10:00"),
			window("14:00", "15:30"),
		}

		slots, err := generateSlots(windows, 30)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30", "14:00", "14:30", "15:00"}, slotStarts(slots))
	})

	t.Run("window reaching end of day", func(t *testing.T) {
		slots, err := generateSlots([]*domain.AvailabilityWindow{window("23:00", "24:00")}, 30)
		require.NoError(t, err)
		assert.Equal(t, []string{"23:00", "23:30"}, slotStarts(slots))
	})

	t.Run("zero duration is an error", func(t *testing.T) {
		_, err := generateSlots([]*domain.AvailabilityWindow{window("09:00", "12:00")}, 0)
		require.ErrorIs(t, err, ErrInvalidServiceDuration)
	})

	t.Run("negative duration is an error", func(t *testing.T) {
		_, err := generateSlots([]*domain.AvailabilityWindow{window("09:00", "12:00")}, -15)
		require.ErrorIs(t, err, ErrInvalidServiceDuration)
	})

	t.Run("no windows yields no slots", func(t *testing.T) {
		slots, err := generateSlots(nil, 45)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestFilterFreeSlots(t *testing.T) {
	slots, err := generateSlots([]*domain.AvailabilityWindow{window("09:00", "12:00")}, 45)
	require.NoError(t, err)

	t.Run("appointment excludes overlapping slots only", func(t *testing.T) {
		appointments := []*domain.Appointment{
			{StartTime: "10:00", EndTime: "10:45", Status: domain.StatusScheduled},
		}

		free := filterFreeSlots(slots, appointments)

		// 09:45-10:30 и 10:30-11:15 пересекаются с записью, 09:00 и 11:15 свободны
		assert.Equal(t, []string{"09:00", "11:15"}, slotStarts(free))
	})

	t.Run("back-to-back appointment does not exclude adjacent slot", func(t *testing.T) {
		appointments := []*domain.Appointment{
			{StartTime: "09:45", EndTime: "10:30", Status: domain.StatusScheduled},
		}

		free := filterFreeSlots(slots, appointments)
		assert.Equal(t, []string{"09:00", "10:30", "11:15"}, slotStarts(free))
	})

	t.Run("cancelled appointment frees its slot", func(t *testing.T) {
		appointments := []*domain.Appointment{
			{StartTime: "09:45", EndTime: "10:30", Status: domain.StatusCanceled},
		}

		free := filterFreeSlots(slots, appointments)
		assert.Len(t, free, len(slots))
	})
}

func TestFilterByNotice(t *testing.T) {
	slots, err := generateSlots([]*domain.AvailabilityWindow{window("09:00", "12:00")}, 45)
	require.NoError(t, err)

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	t.Run("other day is not filtered", func(t *testing.T) {
		now := time.Date(2025, 10, 14, 11, 0, 0, 0, time.UTC)

		filtered, err := filterByNotice(slots, date, now, 30)
		require.NoError(t, err)
		assert.Len(t, filtered, len(slots))
	})

	t.Run("same day removes slots inside the notice period", func(t *testing.T) {
		now := time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)

		// Минимально допустимое время 10:00 - слоты 09:00 и 09:45 отпадают
		filtered, err := filterByNotice(slots, date, now, 30)
		require.NoError(t, err)
		assert.Equal(t, []string{"10:30", "11:15"}, slotStarts(filtered))
	})

	t.Run("slot exactly at the notice boundary is allowed", func(t *testing.T) {
		now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

		filtered, err := filterByNotice(slots, date, now, 30)
		require.NoError(t, err)
		assert.Equal(t, []string{"10:30", "11:15"}, slotStarts(filtered))
	})

	t.Run("notice period past midnight leaves nothing", func(t *testing.T) {
		now := time.Date(2025, 10, 15, 23, 50, 0, 0, time.UTC)

		filtered, err := filterByNotice(slots, date, now, 30)
		require.NoError(t, err)
		assert.Empty(t, filtered)
	})
}
