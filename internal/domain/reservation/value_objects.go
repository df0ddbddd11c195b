package reservation

import (
	"errors"
	"fmt"
	"time"
)

// Stay is the half-open interval [checkIn, checkOut) a spot is occupied.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if !checkIn.Before(checkOut) {
		return Stay{}, errors.New("check-in must be before check-out")
	}

	return Stay{
		checkIn:  checkIn,
		checkOut: checkOut,
	}, nil
}

func (s Stay) CheckIn() time.Time {
	return s.checkIn
}

func (s Stay) CheckOut() time.Time {
	return s.checkOut
}

func (s Stay) Duration() time.Duration {
	return s.checkOut.Sub(s.checkIn)
}

// Overlaps uses strict half-open semantics: [a,b) and [c,d) overlap iff
// a < d and c < b. Back-to-back stays sharing a boundary do not overlap.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

func (s Stay) HasEnded(now time.Time) bool {
	return !now.Before(s.checkOut)
}

func (s Stay) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.RFC3339), s.checkOut.Format(time.RFC3339))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegativeMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub floors at zero; a discount can never push a price negative.
func (m Money) Sub(other Money) Money {
	remaining := m.cents - other.cents
	if remaining < 0 {
		remaining = 0
	}
	return Money{cents: remaining}
}
