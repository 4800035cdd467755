package get_available_slots

import (
	"fmt"
	"time"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

// generateSlots нарезает окна доступности на слоты длительностью услуги.
// В каждом окне курсор стартует с начала окна и двигается с шагом duration:
// слот [cursor, cursor+duration) добавляется, пока целиком помещается в окно.
// Слоты получаются встык, без пересечений и без "скользящих" вариантов.
//
// Окна обрабатываются независимо в порядке времени начала; окно короче
// длительности услуги даёт ноль слотов - это не ошибка. Пересекающиеся окна
// одного дня (ошибка административных данных) здесь не нормализуются -
// корректность набора окон обеспечивается при редактировании расписания.
func generateSlots(windows []*domain.AvailabilityWindow, durationMinutes int) ([]domain.Slot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidServiceDuration, durationMinutes)
	}

	slots := make([]domain.Slot, 0)

	for _, window := range windows {
		cursor := window.StartTime

		for {
			slotEnd, err := cursor.AddMinutes(durationMinutes)
			if err != nil {
				// Вышли за пределы суток - дальше слоты не помещаются
				break
			}
			if slotEnd.IsAfter(window.EndTime) {
				break
			}

			slots = append(slots, domain.Slot{
				StartTime:       cursor,
				EndTime:         slotEnd,
				DurationMinutes: durationMinutes,
			})

			cursor = slotEnd
		}
	}

	return slots, nil
}

// filterFreeSlots оставляет только слоты, не пересекающиеся ни с одной
// активной записью. Проверка занятости общая с путём записи -
// domain.IsIntervalFree, чтобы семантика пересечения не расходилась.
func filterFreeSlots(slots []domain.Slot, appointments []*domain.Appointment) []domain.Slot {
	free := make([]domain.Slot, 0, len(slots))

	for _, slot := range slots {
		if domain.IsIntervalFree(slot.StartTime, slot.EndTime, appointments) {
			free = append(free, slot)
		}
	}

	return free
}

// filterByNotice убирает слоты, нарушающие минимальное время до записи.
// Для дат, отличных от сегодняшней, фильтрация не нужна.
func filterByNotice(slots []domain.Slot, requestDate, now time.Time, minNoticeMinutes int) ([]domain.Slot, error) {
	if !isSameDay(requestDate, now) {
		return slots, nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minNoticeMinutes)
	if err != nil {
		// Минимально допустимое время за пределами суток - сегодня уже ничего не забронировать
		return []domain.Slot{}, nil
	}

	filtered := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if !slot.StartTime.IsBefore(minAllowedTime) {
			filtered = append(filtered, slot)
		}
	}

	return filtered, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return dayStart(date).Before(dayStart(now))
}

// dayStart возвращает начало календарного дня значения, нормализованное в UTC.
// Дата запроса парсится как полночь UTC, а текущее время может быть в локальной
// зоне - сравнивать моменты напрямую нельзя, только календарные дни
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
