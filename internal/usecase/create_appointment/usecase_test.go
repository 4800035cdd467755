package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	policyRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/policy"
	catalogClient "github.com/elietedasilvas/BLZ-BookingService/internal/integrations/catalogservice"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/ptr"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

// Фейки зависимостей.
// fakeAppointmentStore хранит записи в памяти; fakeTxManager сериализует
// транзакции мьютексом, так что проверка занятости и вставка выполняются
// атомарно относительно друг друга - как в serializable-транзакции БД.

type fakeAppointmentStore struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	nextID       int64
}

func (s *fakeAppointmentStore) GetByProfessionalWithFilter(_ context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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

func (s *fakeAppointmentStore) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *appt
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.appointments = append(s.appointments, &stored)
	return &stored, nil
}

type fakeScheduleRepo struct {
	windows []*domain.AvailabilityWindow
}

func (f *fakeScheduleRepo) GetByProfessionalAndDay(_ context.Context, _ int64, _ int) ([]*domain.AvailabilityWindow, error) {
	return f.windows, nil
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

type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
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

type testDeps struct {
	store    *fakeAppointmentStore
	schedule *fakeScheduleRepo
	policy   *fakePolicyRepo
	catalog  *fakeCatalogClient
}

func defaultDeps() *testDeps {
	return &testDeps{
		store: &fakeAppointmentStore{},
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
	uc := NewUseCase(deps.store, deps.schedule, deps.policy, deps.catalog, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// 2025-10-15 - среда (day_of_week = 3)
var (
	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
)

func testRequest(start types.TimeString) *Request {
	return &Request{
		ClientID:       100,
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           testDate,
		StartTime:      start,
	}
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("creates appointment in a free slot", func(t *testing.T) {
		deps := defaultDeps()
		uc := newTestUseCase(deps, testNow)

		resp, err := uc.Execute(context.Background(), testRequest("10:00"))
		require.NoError(t, err)

		assert.NotZero(t, resp.ID)
		assert.Equal(t, int64(100), resp.ClientID)
		assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
		assert.Equal(t, types.TimeString("10:45"), resp.EndTime)
		assert.Equal(t, 45, resp.DurationMinutes)
		assert.Equal(t, string(domain.StatusScheduled), resp.Status)
		assert.Equal(t, "Corte de cabelo", resp.ServiceName)
		assert.Equal(t, 35.0, resp.ServicePrice)

		require.Len(t, deps.store.appointments, 1)
	})

	t.Run("overlapping appointment is rejected", func(t *testing.T) {
		deps := defaultDeps()
		uc := newTestUseCase(deps, testNow)

		_, err := uc.Execute(context.Background(), testRequest("10:00"))
		require.NoError(t, err)

		// 10:30 пересекается с 10:00-10:45
		_, err = uc.Execute(context.Background(), testRequest("10:30"))
		require.ErrorIs(t, err, ErrSlotTaken)
		assert.Len(t, deps.store.appointments, 1)
	})

	t.Run("back-to-back appointment is allowed", func(t *testing.T) {
		deps := defaultDeps()
		uc := newTestUseCase(deps, testNow)

		_, err := uc.Execute(context.Background(), testRequest("10:00"))
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), testRequest("10:45"))
		require.NoError(t, err)
		assert.Len(t, deps.store.appointments, 2)
	})

	t.Run("cancelled appointment frees the slot", func(t *testing.T) {
		deps := defaultDeps()
		deps.store.appointments = []*domain.Appointment{
			{ID: 1, ProfessionalID: 1, StartTime: "10:00", EndTime: "10:45", Status: domain.StatusCanceled},
		}
		deps.store.nextID = 1
		uc := newTestUseCase(deps, testNow)

		_, err := uc.Execute(context.Background(), testRequest("10:00"))
		require.NoError(t, err)
	})

	t.Run("interval must fit inside an availability window", func(t *testing.T) {
		uc := newTestUseCase(defaultDeps(), testNow)

		// 11:30 + 45 минут = 12:15, выходит за окно 09:00-12:00
		_, err := uc.Execute(context.Background(), testRequest("11:30"))
		require.ErrorIs(t, err, ErrOutOfWindow)
	})

	t.Run("no windows on this day", func(t *testing.T) {
		deps := defaultDeps()
		deps.schedule.windows = nil
		uc := newTestUseCase(deps, testNow)

		_, err := uc.Execute(context.Background(), testRequest("10:00"))
		require.ErrorIs(t, err, ErrProfessionalUnavailable)
	})

	t.Run("date in the past", func(t *testing.T) {
		uc := newTestUseCase(defaultDeps(), time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC))

		_, err := uc.Execute(context.Background(), testRequest("10:00"))
		require.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("same day in a western timezone is not past", func(t *testing.T) {
		// Дата запроса - полночь UTC, текущее время - локальная зона западнее
		// UTC: тот же календарный день не должен считаться прошедшим
		saoPaulo := time.FixedZone("UTC-3", -3*60*60)
		uc := newTestUseCase(defaultDeps(), time.Date(2025, 10, 15, 9, 0, 0, 0, saoPaulo))

		resp, err := uc.Execute(context.Background(), testRequest("10:00"))
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	})

	t.Run("date beyond advance booking limit", func(t *testing.T) {
		deps := defaultDeps()
		deps.policy.err = nil
		deps.policy.policy = &domain.BookingPolicy{AdvanceBookingDays: 7, MinBookingNoticeMinutes: 30}
		uc := newTestUseCase(deps, time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC))

		_, err := uc.Execute(context.Background(), testRequest("10:00"))
		require.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("same-day booking violating notice", func(t *testing.T) {
		deps := defaultDeps()
		deps.policy.err = nil
		deps.policy.policy = &domain.BookingPolicy{AdvanceBookingDays: 0, MinBookingNoticeMinutes: 60}

		// Сейчас 09:30, запись на 10:00 - за 30 минут при требуемых 60
		uc := newTestUseCase(deps, time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC))

		_, err := uc.Execute(context.Background(), testRequest("10:00"))
		require.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("professional not found", func(t *testing.T) {
		deps := defaultDeps()
		deps.catalog.professionalErr = catalogClient.ErrProfessionalNotFound
		uc := newTestUseCase(deps, testNow)

		_, err := uc.Execute(context.Background(), testRequest("10:00"))
		require.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("service not offered by this professional", func(t *testing.T) {
		deps := defaultDeps()
		deps.catalog.service.ProfessionalIDs = []int64{2}
		uc := newTestUseCase(deps, testNow)

		_, err := uc.Execute(context.Background(), testRequest("10:00"))
		require.ErrorIs(t, err, ErrServiceNotOffered)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(defaultDeps(), testNow)

		req := testRequest("10:00")
		req.ClientID = 0
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

// Два конкурентных бронирования одного слота: ровно одно успешно,
// второе получает ErrSlotTaken.
func TestUseCase_Execute_ConcurrentSameSlot(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps, testNow)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := testRequest("10:00")
			req.ClientID = int64(100 + i)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var succeeded, taken int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSlotTaken):
			taken++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one booking must win")
	assert.Equal(t, 1, taken, "the loser must get a slot-taken rejection")
	assert.Len(t, deps.store.appointments, 1)
}
