package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinema-booking/internal/handler/api"
	"cinema-booking/internal/handler/middleware"
	"cinema-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, bookingHandler *api.BookingHandler, catalogHandler *api.CatalogHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, catalogHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, catalogHandler *api.CatalogHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		shows := apiGroup.Group("/shows")
		{
			addRoutes(shows, []route{
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateShow},
				{Method: http.MethodGet, Path: "/:id/seats", Handler: bookingHandler.GetAvailableSeats},
				{Method: http.MethodPost, Path: "/:id/seats/lock", Handler: bookingHandler.LockSeats},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
