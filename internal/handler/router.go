package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"meet-scheduler/internal/handler/api"
	"meet-scheduler/internal/handler/middleware"
	"meet-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, availabilityHandler *api.AvailabilityHandler, bookingHandler *api.BookingHandler, adminHandler *api.AdminHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, availabilityHandler, bookingHandler, adminHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, availabilityHandler *api.AvailabilityHandler, bookingHandler *api.BookingHandler, adminHandler *api.AdminHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.GetSlots},
			{Method: http.MethodGet, Path: "/meeting-types", Handler: availabilityHandler.GetMeetingTypes},
			{Method: http.MethodPost, Path: "/book", Handler: bookingHandler.Book},
			{Method: http.MethodPost, Path: "/cancel", Handler: bookingHandler.Cancel},
			{Method: http.MethodGet, Path: "/booking", Handler: bookingHandler.GetBooking},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/approve", Handler: adminHandler.Approve},
				{Method: http.MethodPost, Path: "/deny", Handler: adminHandler.Deny},
				{Method: http.MethodGet, Path: "/request", Handler: adminHandler.GetRequest},
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
