package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkspot/internal/handler/api"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	quoteHandler *api.QuoteHandler,
	reservationHandler *api.ReservationHandler,
	claimHandler *api.ClaimHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, quoteHandler, reservationHandler, claimHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	quoteHandler *api.QuoteHandler,
	reservationHandler *api.ReservationHandler,
	claimHandler *api.ClaimHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		locations := apiGroup.Group("/locations")
		{
			// Quotes are advisory and unauthenticated
			addRoutes(locations, []route{
				{Method: http.MethodGet, Path: "/:id/quote", Handler: quoteHandler.GetQuote},
				{Method: http.MethodGet, Path: "/:id/promotions", Handler: quoteHandler.ListPromotions},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: reservationHandler.CompleteReservation},
			})
		}

		disputes := apiGroup.Group("/disputes")
		disputes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(disputes, []route{
				{Method: http.MethodPost, Path: "", Handler: claimHandler.SubmitDispute},
				{Method: http.MethodGet, Path: "/:id", Handler: claimHandler.GetDispute},
				{Method: http.MethodPost, Path: "/:id/transition", Handler: claimHandler.TransitionDispute},
			})
		}

		refunds := apiGroup.Group("/refunds")
		refunds.Use(authMiddleware.RequireAuth())
		{
			addRoutes(refunds, []route{
				{Method: http.MethodPost, Path: "", Handler: claimHandler.RequestRefund},
				{Method: http.MethodGet, Path: "/:id", Handler: claimHandler.GetRefund},
				{Method: http.MethodPost, Path: "/:id/decide", Handler: claimHandler.DecideRefund},
				{Method: http.MethodPost, Path: "/:id/processed", Handler: claimHandler.MarkRefundProcessed},
			})
		}

		claims := apiGroup.Group("/claims")
		claims.Use(authMiddleware.RequireAuth())
		{
			addRoutes(claims, []route{
				{Method: http.MethodGet, Path: "/:kind/:id/audit", Handler: claimHandler.GetAuditTrail},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
