package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	policyRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/policy"
	catalogClient "github.com/elietedasilvas/BLZ-BookingService/internal/integrations/catalogservice"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/ptr"
)

// Фейки зависимостей

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

type fakeScheduleRepo struct {
	windows []*domain.AvailabilityWindow
	err     error
}

func (f *fakeScheduleRepo) GetByProfessionalAndDay(_ context.Context, _ int64, _ int) ([]*domain.AvailabilityWindow, error) {
	return f.windows, f.err
}

type fakePolicyRepo struct {
	policy *domain.BookingPolicy
	err    error
}

func (f *fakePolicyRepo) GetWithFallback(_ context.Context, _ int64) (*domain.BookingPolicy, error) {
	return f.policy, f.err
}

type fakeCatalogClient struct {
	professional    *catalogClient.Professional
	professionalErr error
	service         *catalogClient.Service
	serviceErr      error
}

func (f *fakeCatalogClient) GetProfessional(_ context.Context, _ int64) (*catalogClient.Professional, error) {
	return f.professional, f.professionalErr
}

func (f *fakeCatalogClient) GetService(_ context.Context, _ int64) (*catalogClient.Service, error) {
	return f.service, f.serviceErr
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

// Хелперы сборки

type testDeps struct {
	appointments *fakeAppointmentRepo
	schedule     *fakeScheduleRepo
	policy       *fakePolicyRepo
	catalog      *fakeCatalogClient
}

func defaultDeps() *testDeps {
	return &testDeps{
		appointments: &fakeAppointmentRepo{},
		schedule: &fakeScheduleRepo{
			windows: []*domain.AvailabilityWindow{
				{ProfessionalID: 1, DayOfWeek: 3, StartTime: "09:00", EndTime: "12:00"},
			},
		},
		policy: &fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		catalog: &fakeCatalogClient{
			professional: &catalogClient.Professional{ID: 1, Name: "Carlos", Role: "barber", Active: true},
			service: &catalogClient.Service{
				ID:              10,
				Name:            "Corte de cabelo",
				DurationMinutes: 45,
				Price:           ptr.Ptr(35.0),
				Active:          true,
				ProfessionalIDs: []int64{1},
			},
		},
	}
}

func newTestUseCase(deps *testDeps, now time.Time) *UseCase {
	uc := NewUseCase(deps.appointments, deps.schedule, deps.policy, deps.catalog, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// 2025-10-15 - среда (day_of_week = 3)
var (
	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
)

func testRequest() *Request {
	return &Request{ProfessionalID: 1, ServiceID: 10, Date: testDate}
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("returns tiled slots for a free day", func(t *testing.T) {
		uc := newTestUseCase(defaultDeps(), testNow)

		resp, err := uc.Execute(context.Background(), testRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ProfessionalID)
		assert.Equal(t, 45, resp.DurationMinutes)
		assert.Equal(t, []string{"09:00", "09:45", "10:30", "11:15"}, slotStarts(resp.Slots))
	})

	t.Run("existing appointment hides overlapping slots", func(t *testing.T) {
		deps := defaultDeps()
		deps.appointments.appointments = []*domain.Appointment{
			{StartTime: "10:00", EndTime: "10:45", Status: domain.StatusScheduled},
		}

		uc := newTestUseCase(deps, testNow)

		resp, err := uc.Execute(context.Background(), testRequest())
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "11:15"}, slotStarts(resp.Slots))
	})

	t.Run("no availability windows yields empty list, not error", func(t *testing.T) {
		deps := defaultDeps()
		deps.schedule.windows = nil

		uc := newTestUseCase(deps, testNow)

		resp, err := uc.Execute(context.Background(), testRequest())
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("fully booked day yields empty list", func(t *testing.T) {
		deps := defaultDeps()
		deps.appointments.appointments = []*domain.Appointment{
			{StartTime: "09:00", EndTime: "12:00", Status: domain.StatusConfirmed},
		}

		uc := newTestUseCase(deps, testNow)

		resp, err := uc.Execute(context.Background(), testRequest())
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("repeated execution returns the same slots", func(t *testing.T) {
		uc := newTestUseCase(defaultDeps(), testNow)

		first, err := uc.Execute(context.Background(), testRequest())
		require.NoError(t, err)

		second, err := uc.Execute(context.Background(), testRequest())
		require.NoError(t, err)
		assert.Equal(t, first.Slots, second.Slots)
	})

	t.Run("professional not found", func(t *testing.T) {
		deps := defaultDeps()
		deps.catalog.professionalErr = catalogClient.ErrProfessionalNotFound

		uc := newTestUseCase(deps, testNow)

		_, err := uc.Execute(context.Background(), testRequest())
		require.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("service not found", func(t *testing.T) {
		deps := defaultDeps()
		deps.catalog.serviceErr = catalogClient.ErrServiceNotFound

		uc := newTestUseCase(deps, testNow)

		_, err := uc.Execute(context.Background(), testRequest())
		require.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("service not offered by this professional", func(t *testing.T) {
		deps := defaultDeps()
		deps.catalog.service.ProfessionalIDs = []int64{2, 3}

		uc := newTestUseCase(deps, testNow)

		_, err := uc.Execute(context.Background(), testRequest())
		require.ErrorIs(t, err, ErrServiceNotOffered)
	})

	t.Run("catalog outage maps to upstream unavailable", func(t *testing.T) {
		deps := defaultDeps()
		deps.catalog.professionalErr = catalogClient.ErrUnavailable

		uc := newTestUseCase(deps, testNow)

		_, err := uc.Execute(context.Background(), testRequest())
		require.ErrorIs(t, err, ErrUpstreamUnavailable)
	})

	t.Run("date in the past", func(t *testing.T) {
		uc := newTestUseCase(defaultDeps(), time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC))

		_, err := uc.Execute(context.Background(), testRequest())
		require.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("same day in a western timezone is not past", func(t *testing.T) {
		// Дата запроса - полночь UTC, текущее время - локальная зона западнее
		// UTC: тот же календарный день не должен считаться прошедшим
		saoPaulo := time.FixedZone("UTC-3", -3*60*60)
		uc := newTestUseCase(defaultDeps(), time.Date(2025, 10, 15, 9, 0, 0, 0, saoPaulo))

		resp, err := uc.Execute(context.Background(), testRequest())
		require.NoError(t, err)
		// Сегодняшний день: действует минимальное время до записи (30 минут от 09:00)
		assert.Equal(t, []string{"09:45", "10:30", "11:15"}, slotStarts(resp.Slots))
	})

	t.Run("date beyond advance booking limit", func(t *testing.T) {
		deps := defaultDeps()
		deps.policy.err = nil
		deps.policy.policy = &domain.BookingPolicy{AdvanceBookingDays: 7, MinBookingNoticeMinutes: 30}

		// Запрошенная дата на 8 дней позже "сегодня"
		uc := newTestUseCase(deps, time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC))

		_, err := uc.Execute(context.Background(), testRequest())
		require.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("same-day request respects booking notice", func(t *testing.T) {
		deps := defaultDeps()
		deps.policy.err = nil
		deps.policy.policy = &domain.BookingPolicy{AdvanceBookingDays: 0, MinBookingNoticeMinutes: 60}

		// Сейчас 09:30, минимально допустимое время 10:30
		uc := newTestUseCase(deps, time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC))

		resp, err := uc.Execute(context.Background(), testRequest())
		require.NoError(t, err)
		assert.Equal(t, []string{"10:30", "11:15"}, slotStarts(resp.Slots))
	})

	t.Run("invalid input is rejected before any calls", func(t *testing.T) {
		uc := newTestUseCase(defaultDeps(), testNow)

		_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 0, ServiceID: 10, Date: testDate})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
