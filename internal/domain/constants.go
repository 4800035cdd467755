package domain

// Default booking policy values
const (
	DefaultAdvanceBookingDays      = 0  // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 30 // полчаса
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours

	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday

	MinAdvanceBookingDays   = 0
	MaxAdvanceBookingDays   = 365
	MinBookingNoticeMinutes = 0
	MaxBookingNoticeMinutes = 10080 // 1 week

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот.
// Используется при подсчёте доступных слотов.
var InactiveStatuses = []AppointmentStatus{
	StatusCanceled,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusRescheduled,
}

// ValidStatuses все допустимые статусы записи
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCanceled,
	StatusRescheduled,
}
