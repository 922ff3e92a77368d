package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"exercise-tracker/internal/app"
	"exercise-tracker/internal/bootstrap"
	"exercise-tracker/internal/cache"
	rabbitmqClient "exercise-tracker/internal/platform/rabbitmq"
	"exercise-tracker/internal/transport/http/handler"
	"exercise-tracker/internal/transport/http/middleware"
	"exercise-tracker/web"
)

func NewRouter(a *bootstrap.App) *gin.Engine {
	gin.SetMode(a.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(a.Logger), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	indexPage := web.IndexPage()
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
	})
	router.StaticFS("/public", http.FS(web.Public()))

	healthHandler := handler.NewHealthHandler(a)
	router.GET("/healthz", healthHandler.Check)

	var logCache app.LogCache
	if a.Redis != nil {
		logCache = cache.NewLogCache(a.Redis, a.Config.LogCacheTTL())
	}
	var publisher app.EventPublisher
	if a.MQConn != nil {
		publisher = rabbitmqClient.NewEventPublisher(a.MQConn, a.Config.RabbitMQ.ExerciseQueue)
	}

	timeout := a.Config.StorageTimeout()
	userService := app.NewUserService(a.Storage.Users, timeout)
	exerciseService := app.NewExerciseService(a.Storage.Users, a.Storage.Exercises, logCache, publisher, timeout, a.Logger)
	userHandler := handler.NewUserHandler(userService, a.Logger)
	exerciseHandler := handler.NewExerciseHandler(exerciseService, a.Logger)

	api := router.Group("/api")
	usersGroup := api.Group("/users")
	usersGroup.POST("", userHandler.Create)
	usersGroup.GET("", userHandler.List)
	usersGroup.POST("/:id/exercises", exerciseHandler.Create)
	usersGroup.GET("/:id/logs", exerciseHandler.Logs)

	router.NoRoute(notFoundHandler(web.NotFoundPage()))

	return router
}
