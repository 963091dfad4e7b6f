package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"blog-service/api/router"
	"blog-service/config"
	"blog-service/db"
	_ "blog-service/docs" // swag generated package
	"blog-service/internal/logger"
	"blog-service/repositories"
	"blog-service/services"
)

// @title           Blog Service API
// @version         1.0
// @description     CRUD REST API for blog posts backed by MongoDB
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Startup aborts when the store is unreachable; nothing else is fatal.
	handle, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}
	logger.Log.Infof("connected to MongoDB at %s", cfg.DatabaseURL)

	repo := repositories.NewPostRepository(handle.Database())
	svc := services.NewPostService(repo)
	r := router.New(svc, handle.Ping)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: cors.AllowAll().Handler(r),
	}

	go func() {
		logger.Log.Infof("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("server shutdown: %v", err)
	}
	if err := handle.Close(shutdownCtx); err != nil {
		logger.Log.Errorf("store close: %v", err)
	}
}
