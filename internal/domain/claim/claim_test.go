//go:build unit

package claim_test

import (
	"testing"

	"parkspot/internal/domain/claim"
	"parkspot/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispute(t *testing.T) {
	t.Run("opens in OPEN with a trimmed reason", func(t *testing.T) {
		d, err := claim.NewDispute(uuid.New(), uuid.New(), "  spot occupied  ")
		require.NoError(t, err)

		assert.Equal(t, claim.DisputeOpen, d.Status())
		assert.Equal(t, "spot occupied", d.Reason())
		assert.NotEqual(t, uuid.Nil, d.ID())
	})

	t.Run("rejects an empty reason", func(t *testing.T) {
		_, err := claim.NewDispute(uuid.New(), uuid.New(), "   ")
		assert.ErrorIs(t, err, claim.ErrEmptyReason)
	})
}

func TestDisputeTransitions(t *testing.T) {
	cases := []struct {
		name  string
		from  claim.DisputeStatus
		to    claim.DisputeStatus
		errIs error
	}{
		{name: "open to in progress", from: claim.DisputeOpen, to: claim.DisputeInProgress},
		{name: "in progress to resolved", from: claim.DisputeInProgress, to: claim.DisputeResolved},
		{name: "open cannot skip to resolved", from: claim.DisputeOpen, to: claim.DisputeResolved, errIs: claim.ErrInvalidTransition},
		{name: "resolved is terminal", from: claim.DisputeResolved, to: claim.DisputeInProgress, errIs: claim.ErrInvalidTransition},
		{name: "no moving backwards", from: claim.DisputeInProgress, to: claim.DisputeOpen, errIs: claim.ErrInvalidTransition},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewDisputeBuilder().WithStatus(c.from)
			d := claim.ReconstructDispute(b.ID, b.ReservationID, b.RequesterID, b.Reason, c.from, b.CreatedAt, b.UpdatedAt)

			err := d.TransitionTo(c.to)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.to, d.Status())
			} else {
				assert.ErrorIs(t, err, c.errIs)
				assert.Equal(t, c.from, d.Status())
			}
		})
	}
}

func TestNewRefundRequest(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		r, err := claim.NewRefundRequest(uuid.New(), uuid.New(), 2500, "left early")
		require.NoError(t, err)
		assert.Equal(t, claim.RefundPending, r.Status())
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		_, err := claim.NewRefundRequest(uuid.New(), uuid.New(), 0, "left early")
		assert.ErrorIs(t, err, claim.ErrNonPositiveAmount)

		_, err = claim.NewRefundRequest(uuid.New(), uuid.New(), -100, "left early")
		assert.ErrorIs(t, err, claim.ErrNonPositiveAmount)
	})

	t.Run("rejects an empty reason", func(t *testing.T) {
		_, err := claim.NewRefundRequest(uuid.New(), uuid.New(), 2500, "")
		assert.ErrorIs(t, err, claim.ErrEmptyReason)
	})
}

func TestRefundTransitions(t *testing.T) {
	reconstruct := func(status claim.RefundStatus) *claim.RefundRequest {
		b := builder.NewRefundBuilder().WithStatus(status)
		return claim.ReconstructRefundRequest(b.ID, b.ReservationID, b.RequesterID, b.AmountCents, b.Reason, status, b.CreatedAt, b.UpdatedAt)
	}

	t.Run("pending can be approved", func(t *testing.T) {
		r := reconstruct(claim.RefundPending)
		require.NoError(t, r.Approve())
		assert.Equal(t, claim.RefundApproved, r.Status())
	})

	t.Run("pending can be rejected", func(t *testing.T) {
		r := reconstruct(claim.RefundPending)
		require.NoError(t, r.Reject())
		assert.Equal(t, claim.RefundRejected, r.Status())
	})

	t.Run("only approved refunds can be processed", func(t *testing.T) {
		r := reconstruct(claim.RefundApproved)
		require.NoError(t, r.MarkProcessed())
		assert.Equal(t, claim.RefundProcessed, r.Status())

		assert.ErrorIs(t, reconstruct(claim.RefundPending).MarkProcessed(), claim.ErrInvalidTransition)
		assert.ErrorIs(t, reconstruct(claim.RefundRejected).MarkProcessed(), claim.ErrInvalidTransition)
	})

	t.Run("decided refunds cannot be re-decided", func(t *testing.T) {
		assert.ErrorIs(t, reconstruct(claim.RefundApproved).Approve(), claim.ErrInvalidTransition)
		assert.ErrorIs(t, reconstruct(claim.RefundRejected).Approve(), claim.ErrInvalidTransition)
		assert.ErrorIs(t, reconstruct(claim.RefundApproved).Reject(), claim.ErrInvalidTransition)
		assert.ErrorIs(t, reconstruct(claim.RefundProcessed).Reject(), claim.ErrInvalidTransition)
	})
}

func TestParseStatuses(t *testing.T) {
	_, err := claim.ParseDisputeStatus("ESCALATED")
	assert.ErrorIs(t, err, claim.ErrInvalidDisputeStat)

	_, err = claim.ParseRefundStatus("SETTLED")
	assert.ErrorIs(t, err, claim.ErrInvalidRefundStat)
}
