//go:build unit || e2e

package builder

import (
	"time"

	domreservation "parkspot/internal/domain/reservation"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	LocationID    uuid.UUID
	LocationName  string
	UserID        uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Status        string
	SubtotalCents int64
	DiscountCents int64
	TaxCents      int64
	FeeCents      int64
	TotalCents    int64
	PromotionID   *uuid.UUID
	PromotionCode *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewReservationBuilder defaults to a confirmed two-day stay starting
// tomorrow, priced without any promotion.
func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	checkIn := now.Add(24 * time.Hour).Truncate(time.Hour)
	return &ReservationBuilder{
		ID:            uuid.New(),
		LocationID:    uuid.New(),
		LocationName:  "Downtown Garage",
		UserID:        uuid.New(),
		CheckIn:       checkIn,
		CheckOut:      checkIn.Add(48 * time.Hour),
		Status:        string(domreservation.StatusConfirmed),
		SubtotalCents: 5000,
		TaxCents:      400,
		FeeCents:      300,
		TotalCents:    5700,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		LocationID:    b.LocationID,
		LocationName:  b.LocationName,
		UserID:        b.UserID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Status:        b.Status,
		SubtotalCents: b.SubtotalCents,
		DiscountCents: b.DiscountCents,
		TaxCents:      b.TaxCents,
		FeeCents:      b.FeeCents,
		TotalCents:    b.TotalCents,
		PromotionID:   b.PromotionID,
		PromotionCode: b.PromotionCode,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:           b.ID,
		LocationID:   b.LocationID,
		LocationName: b.LocationName,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Status:       b.Status,
		TotalCents:   b.TotalCents,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:         b.ID,
		LocationID: b.LocationID,
		UserID:     b.UserID,
		Status:     b.Status,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		TotalCents: b.TotalCents,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		LocationID: b.LocationID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		PromoCode:  b.PromotionCode,
	}
}

func (b *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithLocationID(locationID uuid.UUID) *ReservationBuilder {
	b.LocationID = locationID
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(status domreservation.Status) *ReservationBuilder {
	b.Status = string(status)
	return b
}

func (b *ReservationBuilder) WithTotalCents(cents int64) *ReservationBuilder {
	b.TotalCents = cents
	return b
}

func (b *ReservationBuilder) WithPromotion(id uuid.UUID, code string) *ReservationBuilder {
	b.PromotionID = &id
	b.PromotionCode = &code
	return b
}

func (b *ReservationBuilder) AsEnded() *ReservationBuilder {
	now := time.Now()
	b.CheckIn = now.Add(-72 * time.Hour)
	b.CheckOut = now.Add(-24 * time.Hour)
	return b
}
