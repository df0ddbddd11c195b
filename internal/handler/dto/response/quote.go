package response

import (
	"time"

	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	LocationID     uuid.UUID   `json:"locationId"`
	LocationName   string      `json:"locationName"`
	CheckIn        time.Time   `json:"checkIn"`
	CheckOut       time.Time   `json:"checkOut"`
	Available      bool        `json:"available"`
	AvailableSpots int32       `json:"availableSpots"`
	SubtotalCents  int64       `json:"subtotalCents"`
	TaxCents       int64       `json:"taxCents"`
	FeeCents       int64       `json:"feeCents"`
	DiscountCents  int64       `json:"discountCents"`
	TotalCents     int64       `json:"totalCents"`
	AppliedRuleIDs []uuid.UUID `json:"appliedRuleIds"`
	PromotionCode  *string     `json:"promotionCode,omitempty"`
}

type PromotionOptionResponse struct {
	ID                     uuid.UUID `json:"id"`
	Code                   string    `json:"code"`
	Type                   string    `json:"type"`
	PotentialDiscountCents int64     `json:"potentialDiscountCents"`
	IsApplicable           bool      `json:"isApplicable"`
	Reason                 *string   `json:"reason,omitempty"`
}

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		LocationID:     rm.LocationID,
		LocationName:   rm.LocationName,
		CheckIn:        rm.CheckIn,
		CheckOut:       rm.CheckOut,
		Available:      rm.Available,
		AvailableSpots: rm.AvailableSpots,
		SubtotalCents:  rm.SubtotalCents,
		TaxCents:       rm.TaxCents,
		FeeCents:       rm.FeeCents,
		DiscountCents:  rm.DiscountCents,
		TotalCents:     rm.TotalCents,
		AppliedRuleIDs: rm.AppliedRuleIDs,
		PromotionCode:  rm.PromotionCode,
	}
}

func FromPromotionOption(rm queries.PromotionOption) PromotionOptionResponse {
	return PromotionOptionResponse{
		ID:                     rm.ID,
		Code:                   rm.Code,
		Type:                   rm.Type,
		PotentialDiscountCents: rm.PotentialDiscountCents,
		IsApplicable:           rm.IsApplicable,
		Reason:                 rm.Reason,
	}
}
