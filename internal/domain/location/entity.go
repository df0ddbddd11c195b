package location

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveSpots = errors.New("total spots must be positive")
	ErrNegativePrice    = errors.New("base price cannot be negative")
	ErrEmptyName        = errors.New("location name cannot be empty")
	ErrNotBookable      = errors.New("location is not accepting reservations")
)

type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusPending     Status = "pending"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string { return string(s) }

// Location is a parking facility with a fixed number of interchangeable
// spots and a base daily rate. Time-scoped price adjustments live in Rule.
type Location struct {
	id             uuid.UUID
	name           string
	totalSpots     int32
	basePriceCents int64
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewLocation(id uuid.UUID, name string, totalSpots int32, basePriceCents int64, status Status) (*Location, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if totalSpots <= 0 {
		return nil, ErrNonPositiveSpots
	}
	if basePriceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Location{
		id:             id,
		name:           name,
		totalSpots:     totalSpots,
		basePriceCents: basePriceCents,
		status:         status,
	}, nil
}

func ReconstructLocation(
	id uuid.UUID,
	name string,
	totalSpots int32,
	basePriceCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Location {
	return &Location{
		id:             id,
		name:           name,
		totalSpots:     totalSpots,
		basePriceCents: basePriceCents,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (l *Location) IsBookable() bool {
	return l.status == StatusActive
}

func (l *Location) ID() uuid.UUID         { return l.id }
func (l *Location) Name() string          { return l.name }
func (l *Location) TotalSpots() int32     { return l.totalSpots }
func (l *Location) BasePriceCents() int64 { return l.basePriceCents }
func (l *Location) Status() Status        { return l.status }
func (l *Location) CreatedAt() time.Time  { return l.createdAt }
func (l *Location) UpdatedAt() time.Time  { return l.updatedAt }
