package handlers

import (
	_ "home_service_booking/docs" // registers the OpenAPI description
	"home_service_booking/internal/logger"
	"home_service_booking/internal/service"
	"home_service_booking/internal/session"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services, wizard sessions and logging.
type Handler struct {
	services *service.Service
	sessions *session.Registry
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, sessions *session.Registry, log *logger.Logger) *Handler {
	return &Handler{services: services, sessions: sessions, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	router.GET("/ws/availability", h.wsAvailability)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.GET("/status", h.authStatus)
		auth.POST("/register", h.register)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/catalog", h.listCatalog)
		h.registerAvailabilityRoutes(api)
		h.registerBookingRoutes(api)
		h.registerAdminRoutes(api)
	}
}

func (h *Handler) registerAvailabilityRoutes(api *gin.RouterGroup) {
	av := api.Group("/availability")
	{
		av.GET("/days", h.listDays)
		av.GET("/slots", h.listSlots)
	}
}

func (h *Handler) registerBookingRoutes(api *gin.RouterGroup) {
	sessions := api.Group("/booking/sessions")
	{
		sessions.POST("", h.createSession)
		sessions.GET("/:id", h.getSession)
		sessions.DELETE("/:id", h.deleteSession)
		sessions.POST("/:id/info", h.submitInfo)
		sessions.POST("/:id/day", h.chooseDay)
		sessions.POST("/:id/slots", h.chooseSlots)
		sessions.GET("/:id/review", h.review)
		sessions.POST("/:id/confirm", h.confirm)
		sessions.POST("/:id/back", h.back)
		sessions.POST("/:id/reset", h.reset)
	}
}

func (h *Handler) registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", h.adminMiddleware)
	{
		admin.GET("/appointments", h.listAppointments)
		admin.PATCH("/appointments/:id/status", h.updateStatus)
		admin.PUT("/costs", h.updateCosts)
		admin.POST("/rain-day", h.rainDay)
	}
}
