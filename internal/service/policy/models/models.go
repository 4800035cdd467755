package models

import (
	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
)

// Request модели

// UpsertPolicyRequest запрос на создание или обновление политики бронирования.
// ProfessionalID = nil означает общесалонную политику
type UpsertPolicyRequest struct {
	UserID                  int64  `json:"userId"`
	ProfessionalID          *int64 `json:"professionalId,omitempty"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
}

// ToDomainPolicy конвертирует request в domain модель
func (r *UpsertPolicyRequest) ToDomainPolicy() *domain.BookingPolicy {
	return &domain.BookingPolicy{
		ProfessionalID:          r.ProfessionalID,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}
}

// Response модели

// PolicyResponse ответ с политикой бронирования
type PolicyResponse struct {
	ProfessionalID          *int64 `json:"professionalId,omitempty"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
	SalonWide               bool   `json:"salonWide"`
}

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.BookingPolicy) *PolicyResponse {
	if p == nil {
		return nil
	}

	return &PolicyResponse{
		ProfessionalID:          p.ProfessionalID,
		AdvanceBookingDays:      p.AdvanceBookingDays,
		MinBookingNoticeMinutes: p.MinBookingNoticeMinutes,
		SalonWide:               p.IsSalonWide(),
	}
}
