package response

import (
	"time"

	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID  `json:"id"`
	LocationID    uuid.UUID  `json:"locationId"`
	LocationName  string     `json:"locationName"`
	UserID        uuid.UUID  `json:"userId"`
	CheckIn       time.Time  `json:"checkIn"`
	CheckOut      time.Time  `json:"checkOut"`
	Status        string     `json:"status"`
	SubtotalCents int64      `json:"subtotalCents"`
	DiscountCents int64      `json:"discountCents"`
	TaxCents      int64      `json:"taxCents"`
	FeeCents      int64      `json:"feeCents"`
	TotalCents    int64      `json:"totalCents"`
	PromotionID   *uuid.UUID `json:"promotionId,omitempty"`
	PromotionCode *string    `json:"promotionCode,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID           uuid.UUID `json:"id"`
	LocationID   uuid.UUID `json:"locationId"`
	LocationName string    `json:"locationName"`
	CheckIn      time.Time `json:"checkIn"`
	CheckOut     time.Time `json:"checkOut"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"totalCents"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            rm.ID,
		LocationID:    rm.LocationID,
		LocationName:  rm.LocationName,
		UserID:        rm.UserID,
		CheckIn:       rm.CheckIn,
		CheckOut:      rm.CheckOut,
		Status:        rm.Status,
		SubtotalCents: rm.SubtotalCents,
		DiscountCents: rm.DiscountCents,
		TaxCents:      rm.TaxCents,
		FeeCents:      rm.FeeCents,
		TotalCents:    rm.TotalCents,
		PromotionID:   rm.PromotionID,
		PromotionCode: rm.PromotionCode,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:           rm.ID,
		LocationID:   rm.LocationID,
		LocationName: rm.LocationName,
		CheckIn:      rm.CheckIn,
		CheckOut:     rm.CheckOut,
		Status:       rm.Status,
		TotalCents:   rm.TotalCents,
		CreatedAt:    rm.CreatedAt,
	}
}
