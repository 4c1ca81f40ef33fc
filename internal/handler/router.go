package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"drivebook/internal/handler/api"
	"drivebook/internal/handler/middleware"
	"drivebook/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	courseHandler *api.CourseHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	uploadHandler *api.UploadHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, courseHandler, bookingHandler, adminHandler, uploadHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	logger := middleware.NewLogger(cfg.Log)
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.Locale())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	courseHandler *api.CourseHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	uploadHandler *api.UploadHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		courses := apiGroup.Group("/courses")
		{
			addRoutes(courses, []route{
				{Method: http.MethodGet, Path: "", Handler: courseHandler.ListCourses},
				{Method: http.MethodGet, Path: "/:id", Handler: courseHandler.GetCourse},
			})
		}

		// Guests can book; OptionalAuth attaches the user when a token
		// is present but never rejects the request.
		public := apiGroup.Group("")
		public.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(public, []route{
				{Method: http.MethodPost, Path: "/orders", Handler: bookingHandler.CreateOrder},
				{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodPost, Path: "/uploads", Handler: uploadHandler.Upload},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/courses", Handler: adminHandler.CreateCourse},
				{Method: http.MethodPost, Path: "/courses/:id/slots", Handler: adminHandler.AddSlots},
				{Method: http.MethodPut, Path: "/courses/:id/form", Handler: adminHandler.ReplaceForm},
				{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: adminHandler.GetBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/verify-payment", Handler: adminHandler.VerifyBookingPayment},
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
