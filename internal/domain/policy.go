package domain

import "time"

// BookingPolicy represents booking-window rules for a professional.
// A row with ProfessionalID = NULL is the salon-wide default; per-professional
// rows override it.
type BookingPolicy struct {
	ID                      int64
	ProfessionalID          *int64 // NULL = правило для всего салона
	AdvanceBookingDays      int    // 0 = без ограничения
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsSalonWide returns true if this is the salon-wide default policy
func (p *BookingPolicy) IsSalonWide() bool {
	return p.ProfessionalID == nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance
// appointments can be booked
func (p *BookingPolicy) HasAdvanceBookingLimit() bool {
	return p.AdvanceBookingDays > 0
}

// DefaultBookingPolicy возвращает политику по умолчанию, когда в БД нет ни
// персональной, ни общесалонной записи
func DefaultBookingPolicy() *BookingPolicy {
	return &BookingPolicy{
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}
