package update_booking_policy

import (
	"github.com/elietedasilvas/BLZ-BookingService/internal/service/policy/models"
)

// UpdatePolicyRequest HTTP request model.
// ProfessionalID = null задает общесалонную политику
type UpdatePolicyRequest struct {
	ProfessionalID          *int64 `json:"professionalId,omitempty"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdatePolicyRequest) ToServiceRequest(userID int64) *models.UpsertPolicyRequest {
	return &models.UpsertPolicyRequest{
		UserID:                  userID,
		ProfessionalID:          r.ProfessionalID,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}
}
