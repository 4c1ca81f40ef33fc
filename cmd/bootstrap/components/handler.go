package components

import (
	"drivebook/internal/handler"
	"drivebook/internal/handler/api"
	"drivebook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCourseHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		api.NewUploadHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
