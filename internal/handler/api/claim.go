package api

import (
	"net/http"

	"parkspot/internal/domain/claim"
	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	claimCommands commands.ClaimCommands
	claimQueries  queries.ClaimQueries
}

func NewClaimHandler(claimCommands commands.ClaimCommands, claimQueries queries.ClaimQueries) *ClaimHandler {
	return &ClaimHandler{
		claimCommands: claimCommands,
		claimQueries:  claimQueries,
	}
}

// @Summary Submit dispute
// @Description Open a dispute against one of the caller's reservations
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitDisputeRequest true "Dispute request"
// @Success 201 {object} resdto.DisputeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /disputes [post]
func (h *ClaimHandler) SubmitDispute(c *gin.Context) {
	actor, _, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.SubmitDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.claimCommands.SubmitDispute(c.Request.Context(), actor, commands.SubmitDisputeInput{
		ReservationID: req.ReservationID,
		Reason:        req.Reason,
	})
	if err != nil {
		respondCommandError(c, err, "Reservation not found")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDisputeView(view))
}

// @Summary Transition dispute
// @Description Staff-only single-step move along OPEN -> IN_PROGRESS -> RESOLVED
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Param request body reqdto.TransitionDisputeRequest true "Target status"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /disputes/{id}/transition [post]
func (h *ClaimHandler) TransitionDispute(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid dispute ID format",
		})
		return
	}

	actor, role, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.TransitionDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	next, err := claim.ParseDisputeStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown dispute status",
		})
		return
	}

	if err := h.claimCommands.TransitionDispute(c.Request.Context(), actor, role, id, next); err != nil {
		respondCommandError(c, err, "Dispute not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get dispute
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Success 200 {object} resdto.DisputeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /disputes/{id} [get]
func (h *ClaimHandler) GetDispute(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid dispute ID format",
		})
		return
	}

	actor, role, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.claimQueries.GetDispute(c.Request.Context(), actor, role, id)
	if err != nil {
		respondQueryError(c, err, "Dispute not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromDisputeView(view))
}

// @Summary Request refund
// @Description Open a refund request against one of the caller's reservations
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RequestRefundRequest true "Refund request"
// @Success 201 {object} resdto.RefundResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /refunds [post]
func (h *ClaimHandler) RequestRefund(c *gin.Context) {
	actor, _, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.RequestRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.claimCommands.RequestRefund(c.Request.Context(), actor, commands.RequestRefundInput{
		ReservationID: req.ReservationID,
		AmountCents:   req.AmountCents,
		Reason:        req.Reason,
	})
	if err != nil {
		respondCommandError(c, err, "Reservation not found")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRefundView(view))
}

// @Summary Decide refund
// @Description Staff-only approval or rejection; optionally cancels the reservation on approval
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Refund ID"
// @Param request body reqdto.DecideRefundRequest true "Decision"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /refunds/{id}/decide [post]
func (h *ClaimHandler) DecideRefund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid refund ID format",
		})
		return
	}

	actor, role, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.DecideRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input := commands.DecideRefundInput{
		Approve:           *req.Approve,
		CancelReservation: req.CancelReservation,
	}
	if err := h.claimCommands.DecideRefund(c.Request.Context(), actor, role, id, input); err != nil {
		respondCommandError(c, err, "Refund request not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark refund processed
// @Description Staff-only settlement confirmation for an approved refund
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Refund ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /refunds/{id}/processed [post]
func (h *ClaimHandler) MarkRefundProcessed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid refund ID format",
		})
		return
	}

	actor, role, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.claimCommands.MarkRefundProcessed(c.Request.Context(), actor, role, id); err != nil {
		respondCommandError(c, err, "Refund request not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get refund
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Refund ID"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /refunds/{id} [get]
func (h *ClaimHandler) GetRefund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid refund ID format",
		})
		return
	}

	actor, role, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.claimQueries.GetRefund(c.Request.Context(), actor, role, id)
	if err != nil {
		respondQueryError(c, err, "Refund request not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRefundView(view))
}

// @Summary Get claim audit trail
// @Description Staff-only transition history of a dispute or refund
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Subject kind (dispute or refund)"
// @Param id path string true "Subject ID"
// @Success 200 {array} resdto.AuditEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /claims/{kind}/{id}/audit [get]
func (h *ClaimHandler) GetAuditTrail(c *gin.Context) {
	kind := claim.SubjectKind(c.Param("kind"))
	if kind != claim.SubjectDispute && kind != claim.SubjectRefund {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown subject kind",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid subject ID format",
		})
		return
	}

	_, role, ok := requireActor(c)
	if !ok {
		return
	}

	entries, err := h.claimQueries.AuditTrail(c.Request.Context(), role, kind, id)
	if err != nil {
		respondQueryError(c, err, "Audit trail not found")
		return
	}

	response := make([]*resdto.AuditEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = resdto.FromAuditEntryView(entry)
	}
	c.JSON(http.StatusOK, response)
}
