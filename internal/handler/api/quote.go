package api

import (
	"net/http"
	"time"

	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	quoteQueries     queries.QuoteQueries
	promotionQueries queries.PromotionQueries
}

func NewQuoteHandler(quoteQueries queries.QuoteQueries, promotionQueries queries.PromotionQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteQueries:     quoteQueries,
		promotionQueries: promotionQueries,
	}
}

// @Summary Get quote
// @Description Price and availability for a candidate stay; advisory, nothing is held
// @Tags quotes
// @Produce json
// @Param id path string true "Location ID"
// @Param check_in query string true "Check-in (RFC3339)"
// @Param check_out query string true "Check-out (RFC3339)"
// @Param promo_code query string false "Promotion code"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /locations/{id}/quote [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	checkIn, checkOut, ok := parseStayParams(c)
	if !ok {
		return
	}

	in := queries.QuoteInput{
		LocationID: locationID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}
	if code := c.Query("promo_code"); code != "" {
		in.PromoCode = &code
	}

	view, err := h.quoteQueries.GetQuote(c.Request.Context(), in)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidStay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-in must be before check-out",
			})
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location or promotion not found",
			})
		case errs.Is(err, queries.ErrInvalidPromotion):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary List applicable promotions
// @Description Active promotions ranked by the discount they would yield for the stay
// @Tags quotes
// @Produce json
// @Param id path string true "Location ID"
// @Param check_in query string true "Check-in (RFC3339)"
// @Param check_out query string true "Check-out (RFC3339)"
// @Success 200 {array} resdto.PromotionOptionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /locations/{id}/promotions [get]
func (h *QuoteHandler) ListPromotions(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	checkIn, checkOut, ok := parseStayParams(c)
	if !ok {
		return
	}

	options, err := h.promotionQueries.ListApplicable(c.Request.Context(), queries.ApplicablePromotionsInput{
		LocationID: locationID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidStay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-in must be before check-out",
			})
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]resdto.PromotionOptionResponse, len(options))
	for i, opt := range options {
		response[i] = resdto.FromPromotionOption(opt)
	}
	c.JSON(http.StatusOK, response)
}

func parseStayParams(c *gin.Context) (checkIn, checkOut time.Time, ok bool) {
	checkIn, err := time.Parse(time.RFC3339, c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_in format, expected RFC3339",
		})
		return time.Time{}, time.Time{}, false
	}
	checkOut, err = time.Parse(time.RFC3339, c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_out format, expected RFC3339",
		})
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}
