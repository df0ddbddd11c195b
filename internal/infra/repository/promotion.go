package repository

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/infra/db"

	"github.com/google/uuid"
)

// redeemPromotionSQL only advances the counter while it stays within the
// limit; concurrent takers of the last use lose on the row condition, not on
// a lock timeout.
const redeemPromotionSQL = `
UPDATE promotions
SET used_count = used_count + 1, updated_at = now()
WHERE id = $1
  AND active
  AND (usage_limit IS NULL OR used_count < usage_limit)`

type PromotionRepository struct {
	db db.DBTX
}

func NewPromotionRepository(dbtx db.DBTX) *PromotionRepository {
	return &PromotionRepository{db: dbtx}
}

func (r *PromotionRepository) Redeem(ctx context.Context, promotionID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, redeemPromotionSQL, promotionID)
	if err != nil {
		return infra.WrapRepoErr("failed to redeem promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion has no remaining uses", nil, infra.KindConflict)
	}
	return nil
}
