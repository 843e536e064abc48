// @title Push Notification API
// @version 1.0
// @description Presence-aware notification delivery: every notification is
// @description persisted first, then pushed over the recipient's live WebSocket
// @description connection when one is registered.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pushnotify/cmd/api/middleware"
	"pushnotify/controllers"
	_ "pushnotify/docs"
	"pushnotify/logger"
	"pushnotify/metrics"
	"pushnotify/models"
	"pushnotify/realtime"
	"pushnotify/services/dispatch"
	"pushnotify/services/presence"
	"pushnotify/services/store"
	usersvc "pushnotify/services/user"
	"pushnotify/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load(".env", "../../.env", "../.env")

	zlog, err := logger.InitLogger()
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer zlog.Sync()

	db, err := storage.NewConnection(storage.Config{
		Host:     os.Getenv("MYSQL_HOST"),
		Port:     os.Getenv("MYSQL_PORT"),
		User:     os.Getenv("MYSQL_USER"),
		Password: os.Getenv("MYSQL_PASSWORD"),
		DBName:   os.Getenv("MYSQL_DB"),
	})
	if err != nil {
		zlog.Fatal("Error connecting to database", zap.Error(err))
	}
	db.AutoMigrate(&models.User{}, &models.Notification{})

	metrics.InitAPIMetrics()

	registry := presence.NewRegistry()
	notifStore := store.New(db)
	userService := usersvc.New(db)
	dispatcher := dispatch.New(notifStore, registry, userService, zlog)
	hub := realtime.NewHub(registry, notifStore, zlog)

	userController := controllers.NewUserController(userService)
	notificationController := controllers.NewNotificationController(dispatcher, notifStore, userService)

	router := gin.Default()
	router.Use(middleware.MetricsMiddleware())

	SetupRoutes(router, userController, notificationController, hub, middleware.AuthMiddleware(userService))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	srv := &http.Server{Addr: addr, Handler: router}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("listen", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.String("addr", addr))

	<-ctx.Done()
	_ = srv.Shutdown(context.Background())
}
