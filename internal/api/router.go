package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/fares-backend-go/internal/config"
	"github.com/jengzang/fares-backend-go/internal/handler"
	"github.com/jengzang/fares-backend-go/internal/middleware"
)

// Handlers bundles the HTTP handlers mounted by the router
type Handlers struct {
	Trips    *handler.TripHandler
	Ingest   *handler.IngestHandler
	Training *handler.TrainingHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Fares Backend API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))
	{
		// 行程特征接口
		trips := api.Group("/trips")
		{
			trips.GET("", h.Trips.GetTrips)
			trips.GET("/stats", h.Trips.GetStatistics)
			trips.GET("/stats/fares", h.Trips.GetFareDistribution)
			trips.GET("/heatmap", h.Trips.GetHeatmap)
		}

		// 数据摄入接口
		ingest := api.Group("/ingest")
		{
			ingest.POST("", h.Ingest.StartJob)
			ingest.GET("/jobs", h.Ingest.ListJobs)
			ingest.GET("/jobs/:id", h.Ingest.GetJob)
		}

		// 模型训练接口
		training := api.Group("/training")
		{
			training.POST("/runs", h.Training.StartRun)
			training.GET("/runs", h.Training.ListRuns)
			training.GET("/runs/:id", h.Training.GetRun)
		}
	}

	return r
}
