package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	appointmentRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/appointment"
	policyRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/policy"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

// Фейки зависимостей

type fakeAppointmentStore struct {
	appointments []*domain.Appointment
}

func (s *fakeAppointmentStore) byID(id int64) *domain.Appointment {
	for _, appt := range s.appointments {
		if appt.ID == id {
			return appt
		}
	}
	return nil
}

func (s *fakeAppointmentStore) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if appt := s.byID(id); appt != nil {
		copied := *appt
		return &copied, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (s *fakeAppointmentStore) GetByProfessionalWithFilter(_ context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range s.appointments {
		if appt.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if !filter.IncludeInactive && !appt.IsActive() {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (s *fakeAppointmentStore) Reschedule(_ context.Context, id int64, date time.Time, startTime, endTime types.TimeString) error {
	appt := s.byID(id)
	if appt == nil {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Date = date
	appt.StartTime = startTime
	appt.EndTime = endTime
	appt.Status = domain.StatusRescheduled
	return nil
}

type fakeScheduleRepo struct {
	windows []*domain.AvailabilityWindow
}

func (f *fakeScheduleRepo) GetByProfessionalAndDay(_ context.Context, _ int64, _ int) ([]*domain.AvailabilityWindow, error) {
	return f.windows, nil
}

type fakePolicyRepo struct{}

func (fakePolicyRepo) GetWithFallback(_ context.Context, _ int64) (*domain.BookingPolicy, error) {
	return nil, policyRepo.ErrPolicyNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// 2025-10-15 - среда (day_of_week = 3), 2025-10-16 - четверг
var (
	oldDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	newDate = time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	testNow = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
)

func scheduledAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              1,
		ClientID:        100,
		ProfessionalID:  1,
		ServiceID:       10,
		Date:            oldDate,
		StartTime:       "10:00",
		EndTime:         "10:45",
		DurationMinutes: 45,
		Status:          domain.StatusScheduled,
		ServiceName:     "Corte de cabelo",
		ServicePrice:    35.0,
	}
}

func newTestUseCase(store *fakeAppointmentStore) *UseCase {
	schedule := &fakeScheduleRepo{
		windows: []*domain.AvailabilityWindow{
			{ProfessionalID: 1, DayOfWeek: 4, StartTime: "09:00", EndTime: "12:00"},
		},
	}
	uc := NewUseCase(store, schedule, fakePolicyRepo{}, fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func testRequest(start types.TimeString) *Request {
	return &Request{
		AppointmentID: 1,
		ClientID:      100,
		Date:          newDate,
		StartTime:     start,
	}
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("moves appointment to a free slot", func(t *testing.T) {
		store := &fakeAppointmentStore{appointments: []*domain.Appointment{scheduledAppointment()}}
		uc := newTestUseCase(store)

		resp, err := uc.Execute(context.Background(), testRequest("11:00"))
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, newDate, resp.Date)
		assert.Equal(t, types.TimeString("11:00"), resp.StartTime)
		assert.Equal(t, types.TimeString("11:45"), resp.EndTime)
		assert.Equal(t, string(domain.StatusRescheduled), resp.Status)

		// Та же строка, без новой записи
		require.Len(t, store.appointments, 1)
		assert.Equal(t, domain.StatusRescheduled, store.appointments[0].Status)
	})

	t.Run("own current slot does not conflict with itself", func(t *testing.T) {
		appt := scheduledAppointment()
		appt.Date = newDate
		store := &fakeAppointmentStore{appointments: []*domain.Appointment{appt}}
		uc := newTestUseCase(store)

		// Сдвиг на 30 минут: новый интервал 10:30-11:15 пересекается
		// со старым 10:00-10:45, но это та же запись
		resp, err := uc.Execute(context.Background(), testRequest("10:30"))
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("10:30"), resp.StartTime)
	})

	t.Run("target slot taken by another appointment", func(t *testing.T) {
		other := scheduledAppointment()
		other.ID = 2
		other.ClientID = 200
		other.Date = newDate
		other.StartTime = "11:00"
		other.EndTime = "11:45"
		store := &fakeAppointmentStore{appointments: []*domain.Appointment{scheduledAppointment(), other}}
		uc := newTestUseCase(store)

		_, err := uc.Execute(context.Background(), testRequest("11:00"))
		require.ErrorIs(t, err, ErrSlotTaken)

		// Исходная запись не изменилась
		assert.Equal(t, oldDate, store.appointments[0].Date)
		assert.Equal(t, domain.StatusScheduled, store.appointments[0].Status)
	})

	t.Run("appointment not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentStore{})

		_, err := uc.Execute(context.Background(), testRequest("11:00"))
		require.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("only the owner can reschedule", func(t *testing.T) {
		store := &fakeAppointmentStore{appointments: []*domain.Appointment{scheduledAppointment()}}
		uc := newTestUseCase(store)

		req := testRequest("11:00")
		req.ClientID = 200
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled appointment cannot be rescheduled", func(t *testing.T) {
		appt := scheduledAppointment()
		appt.Status = domain.StatusCanceled
		store := &fakeAppointmentStore{appointments: []*domain.Appointment{appt}}
		uc := newTestUseCase(store)

		_, err := uc.Execute(context.Background(), testRequest("11:00"))
		require.ErrorIs(t, err, ErrCannotReschedule)
	})

	t.Run("completed appointment cannot be rescheduled", func(t *testing.T) {
		appt := scheduledAppointment()
		appt.Status = domain.StatusCompleted
		store := &fakeAppointmentStore{appointments: []*domain.Appointment{appt}}
		uc := newTestUseCase(store)

		_, err := uc.Execute(context.Background(), testRequest("11:00"))
		require.ErrorIs(t, err, ErrCannotReschedule)
	})

	t.Run("new interval must fit availability windows", func(t *testing.T) {
		store := &fakeAppointmentStore{appointments: []*domain.Appointment{scheduledAppointment()}}
		uc := newTestUseCase(store)

		// 11:30 + 45 минут = 12:15, выходит за окно 09:00-12:00
		_, err := uc.Execute(context.Background(), testRequest("11:30"))
		require.ErrorIs(t, err, ErrOutOfWindow)
	})

	t.Run("same day in a western timezone is not past", func(t *testing.T) {
		// Дата запроса - полночь UTC, текущее время - локальная зона западнее
		// UTC: тот же календарный день не должен считаться прошедшим
		store := &fakeAppointmentStore{appointments: []*domain.Appointment{scheduledAppointment()}}
		uc := newTestUseCase(store)
		saoPaulo := time.FixedZone("UTC-3", -3*60*60)
		uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 16, 9, 0, 0, 0, saoPaulo)}

		resp, err := uc.Execute(context.Background(), testRequest("11:00"))
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("11:00"), resp.StartTime)
	})

	t.Run("new date in the past", func(t *testing.T) {
		store := &fakeAppointmentStore{appointments: []*domain.Appointment{scheduledAppointment()}}
		uc := newTestUseCase(store)
		uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)}

		_, err := uc.Execute(context.Background(), testRequest("11:00"))
		require.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("no windows on the new day", func(t *testing.T) {
		store := &fakeAppointmentStore{appointments: []*domain.Appointment{scheduledAppointment()}}
		uc := newTestUseCase(store)
		uc.scheduleRepo = &fakeScheduleRepo{}

		_, err := uc.Execute(context.Background(), testRequest("11:00"))
		require.ErrorIs(t, err, ErrProfessionalUnavailable)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentStore{})

		req := testRequest("11:00")
		req.AppointmentID = 0
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
