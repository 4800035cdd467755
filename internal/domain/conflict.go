package domain

import "github.com/elietedasilvas/BLZ-BookingService/pkg/types"

// IsIntervalFree проверяет, что интервал [start, end) не пересекается ни с
// одной активной записью. Единственная реализация проверки занятости:
// её используют и путь показа слотов, и путь создания/переноса записи,
// чтобы семантика пересечения не могла разойтись.
//
// Пересечение считается по полуоткрытым интервалам со строгими неравенствами:
// запись, заканчивающаяся ровно в начале интервала (или начинающаяся ровно в
// его конце), пересечением НЕ является - записи встык допустимы.
//
// Примеры:
// - Интервал 09:45-10:30, запись 10:00-10:45 → занято (пересечение 10:00-10:30)
// - Интервал 10:45-11:30, запись 10:00-10:45 → свободно (граничат)
func IsIntervalFree(start, end types.TimeString, appointments []*Appointment) bool {
	for _, appt := range appointments {
		// Отменённые записи слот не занимают
		if !appt.IsActive() {
			continue
		}

		if appt.StartTime.IsBefore(end) && appt.EndTime.IsAfter(start) {
			return false
		}
	}

	return true
}
