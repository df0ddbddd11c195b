package request

import (
	"strings"
	"time"

	"parkspot/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	LocationID       uuid.UUID `json:"location_id" binding:"required"`
	CheckIn          time.Time `json:"check_in" binding:"required"`
	CheckOut         time.Time `json:"check_out" binding:"required"`
	PromoCode        *string   `json:"promo_code,omitempty"`
	QuotedTotalCents *int64    `json:"quoted_total_cents,omitempty"`
}

func (r CreateReservationRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		LocationID:       r.LocationID,
		CheckIn:          r.CheckIn,
		CheckOut:         r.CheckOut,
		PromoCode:        r.GetPromoCode(),
		QuotedTotalCents: r.QuotedTotalCents,
	}
}
