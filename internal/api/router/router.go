package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/medication-reminder/internal/api/handlers/logentry"
	"github.com/aliskhannn/medication-reminder/internal/api/handlers/user"
)

func New(userHandler *user.Handler, logHandler *logentry.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	users := api.Group("/users")
	users.POST("", userHandler.Register)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.GET("/:id/summary", userHandler.Summary)
	users.POST("/:id/remind", userHandler.Remind)

	users.POST("/:id/logs", logHandler.Create)
	users.GET("/:id/logs", logHandler.List)

	return e
}
