package api

import (
	"net/http"

	"parkspot/internal/handler/middleware"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func requireActor(c *gin.Context) (uuid.UUID, jwt.Role, bool) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, "", false
	}
	return actor, role, true
}

func respondQueryError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errs.Is(err, queries.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	case infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundMsg,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func respondCommandError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errs.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	case errs.Is(err, commands.ErrReservationNotFound),
		errs.Is(err, commands.ErrDisputeNotFound),
		errs.Is(err, commands.ErrRefundNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundMsg,
		})
	case errs.Is(err, commands.ErrInvalidClaimTransition),
		errs.Is(err, commands.ErrRefundExceedsTotal),
		errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
