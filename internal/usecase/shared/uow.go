package shared

import (
	"context"
	"time"

	"parkspot/internal/domain/claim"
	"parkspot/internal/domain/reservation"

	"github.com/google/uuid"
)

// UnitOfWork is the only way commands touch the store. Location capacity and
// promotion usage counters are mutated exclusively inside Tx callbacks; read
// paths never write.
type UnitOfWork interface {
	// Within: read-committed transaction with retry for ordinary writes
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: the commit path; overlap re-check and insert must
	// observe one consistent snapshot
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: validation reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Promotions() PromotionRepository
	Disputes() DisputeRepository
	Refunds() RefundRepository
	AuditLog() AuditRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
}

type PromotionRepository interface {
	// Redeem increments used_count only while it stays within usage_limit;
	// a conflict kind signals the last use was already taken.
	Redeem(ctx context.Context, promotionID uuid.UUID) error
}

type DisputeRepository interface {
	Create(ctx context.Context, d *claim.Dispute) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status claim.DisputeStatus) error
}

type RefundRepository interface {
	Create(ctx context.Context, r *claim.RefundRequest) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status claim.RefundStatus) error
}

type AuditRepository interface {
	Append(ctx context.Context, entry *claim.AuditEntry) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key. inserted is true when this call created the
	// row; false means the key already exists and the caller must decide
	// between replay and conflict.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (inserted bool, err error)
	UpdateStatusCompleted(ctx context.Context, key, userID uuid.UUID, responseHash string, resultReservationID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
