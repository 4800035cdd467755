package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	catalogClient "github.com/elietedasilvas/BLZ-BookingService/internal/integrations/catalogservice"
	"github.com/elietedasilvas/BLZ-BookingService/internal/service/schedule/models"
)

// Фейки зависимостей

type fakeScheduleRepo struct {
	windows []*domain.AvailabilityWindow

	replacedProfessionalID int64
	replacedDayOfWeek      int
	replacedWindows        []*domain.AvailabilityWindow
}

func (f *fakeScheduleRepo) GetByProfessional(_ context.Context, _ int64) ([]*domain.AvailabilityWindow, error) {
	return f.windows, nil
}

func (f *fakeScheduleRepo) GetByProfessionalAndDay(_ context.Context, _ int64, _ int) ([]*domain.AvailabilityWindow, error) {
	return f.windows, nil
}

func (f *fakeScheduleRepo) ReplaceDay(_ context.Context, professionalID int64, dayOfWeek int, windows []*domain.AvailabilityWindow) error {
	f.replacedProfessionalID = professionalID
	f.replacedDayOfWeek = dayOfWeek
	f.replacedWindows = windows
	return nil
}

type fakeCatalogClient struct {
	professional *catalogClient.Professional
	err          error
}

func (f *fakeCatalogClient) GetProfessional(_ context.Context, _ int64) (*catalogClient.Professional, error) {
	return f.professional, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeScheduleRepo, catalog *fakeCatalogClient) *Service {
	if catalog == nil {
		catalog = &fakeCatalogClient{
			professional: &catalogClient.Professional{ID: 1, Name: "Carlos", Role: "barber", Active: true},
		}
	}
	return NewService(repo, catalog, fakeTxManager{}, noopLogger{})
}

func replaceDayRequest(windows ...models.WindowInput) *models.ReplaceDayRequest {
	return &models.ReplaceDayRequest{
		UserID:         1,
		ProfessionalID: 1,
		DayOfWeek:      3,
		Windows:        windows,
	}
}

func windowStrings(windows []models.WindowResponse) []string {
	result := make([]string, 0, len(windows))
	for _, w := range windows {
		result = append(result, w.StartTime+"-"+w.EndTime)
	}
	return result
}

func TestService_ReplaceDay(t *testing.T) {
	t.Run("replaces day with sorted windows", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := newTestService(repo, nil)

		// Окна подаются не по порядку - сервис сортирует по началу
		resp, err := svc.ReplaceDay(context.Background(), replaceDayRequest(
			models.WindowInput{StartTime: "14:00", EndTime: "18:00"},
			models.WindowInput{StartTime: "09:00", EndTime: "13:00"},
		))
		require.NoError(t, err)

		assert.Equal(t, 3, resp.DayOfWeek)
		assert.Equal(t, []string{"09:00-13:00", "14:00-18:00"}, windowStrings(resp.Windows))

		require.Len(t, repo.replacedWindows, 2)
		assert.Equal(t, int64(1), repo.replacedProfessionalID)
		assert.Equal(t, 3, repo.replacedDayOfWeek)
	})

	t.Run("empty window list makes the day off", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := newTestService(repo, nil)

		resp, err := svc.ReplaceDay(context.Background(), replaceDayRequest())
		require.NoError(t, err)
		assert.Empty(t, resp.Windows)
		assert.Empty(t, repo.replacedWindows)
	})

	t.Run("back-to-back windows are allowed", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, nil)

		resp, err := svc.ReplaceDay(context.Background(), replaceDayRequest(
			models.WindowInput{StartTime: "09:00", EndTime: "13:00"},
			models.WindowInput{StartTime: "13:00", EndTime: "18:00"},
		))
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00-13:00", "13:00-18:00"}, windowStrings(resp.Windows))
	})

	t.Run("overlapping windows are rejected", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, nil)

		_, err := svc.ReplaceDay(context.Background(), replaceDayRequest(
			models.WindowInput{StartTime: "09:00", EndTime: "13:00"},
			models.WindowInput{StartTime: "12:30", EndTime: "18:00"},
		))
		require.ErrorIs(t, err, ErrOverlappingWindows)
	})

	t.Run("window with start after end is rejected", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, nil)

		_, err := svc.ReplaceDay(context.Background(), replaceDayRequest(
			models.WindowInput{StartTime: "13:00", EndTime: "09:00"},
		))
		require.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("zero-length window is rejected", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, nil)

		_, err := svc.ReplaceDay(context.Background(), replaceDayRequest(
			models.WindowInput{StartTime: "09:00", EndTime: "09:00"},
		))
		require.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("malformed time is rejected", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, nil)

		_, err := svc.ReplaceDay(context.Background(), replaceDayRequest(
			models.WindowInput{StartTime: "9am", EndTime: "13:00"},
		))
		require.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("midnight upper bound is allowed", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, nil)

		resp, err := svc.ReplaceDay(context.Background(), replaceDayRequest(
			models.WindowInput{StartTime: "20:00", EndTime: "24:00"},
		))
		require.NoError(t, err)
		assert.Equal(t, []string{"20:00-24:00"}, windowStrings(resp.Windows))
	})

	t.Run("invalid day of week", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, nil)

		req := replaceDayRequest(models.WindowInput{StartTime: "09:00", EndTime: "13:00"})
		req.DayOfWeek = 7
		_, err := svc.ReplaceDay(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidDayOfWeek)
	})

	t.Run("only the professional can edit their schedule", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, nil)

		req := replaceDayRequest(models.WindowInput{StartTime: "09:00", EndTime: "13:00"})
		req.UserID = 2
		_, err := svc.ReplaceDay(context.Background(), req)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown professional", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogClient{err: catalogClient.ErrProfessionalNotFound})

		_, err := svc.ReplaceDay(context.Background(), replaceDayRequest(
			models.WindowInput{StartTime: "09:00", EndTime: "13:00"},
		))
		require.ErrorIs(t, err, ErrProfessionalNotFound)
	})
}

func TestService_GetWeek(t *testing.T) {
	t.Run("groups windows by day with all seven days present", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			windows: []*domain.AvailabilityWindow{
				{ProfessionalID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "13:00"},
				{ProfessionalID: 1, DayOfWeek: 1, StartTime: "14:00", EndTime: "18:00"},
				{ProfessionalID: 1, DayOfWeek: 5, StartTime: "10:00", EndTime: "16:00"},
			},
		}
		svc := newTestService(repo, nil)

		resp, err := svc.GetWeek(context.Background(), 1)
		require.NoError(t, err)

		require.Len(t, resp.Days, 7)
		assert.Equal(t, []string{"09:00-13:00", "14:00-18:00"}, windowStrings(resp.Days[1].Windows))
		assert.Equal(t, []string{"10:00-16:00"}, windowStrings(resp.Days[5].Windows))
		assert.Empty(t, resp.Days[0].Windows)
		assert.Empty(t, resp.Days[6].Windows)
	})

	t.Run("unknown professional", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogClient{err: catalogClient.ErrProfessionalNotFound})

		_, err := svc.GetWeek(context.Background(), 42)
		require.ErrorIs(t, err, ErrProfessionalNotFound)
	})
}
