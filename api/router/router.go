package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-service/api/handlers"
	"blog-service/api/middleware"
	_ "blog-service/docs"
	"blog-service/services"
)

// New wires the engine. health may be nil when no store ping is available
// (e.g. the in-memory store), in which case /health always reports ok.
func New(svc *services.PostService, health func(ctx context.Context) error) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.Metrics())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if health != nil {
			if err := health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/posts", handlers.ListPostsHandler(svc))
	r.POST("/posts", handlers.CreatePostHandler(svc))
	r.GET("/posts/:id", handlers.GetPostHandler(svc))
	r.PUT("/posts/:id", handlers.UpdatePostHandler(svc))
	r.DELETE("/posts/:id", handlers.DeletePostHandler(svc))

	return r
}
