package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oceanus/vessel-records-backend/internal/config"
	"github.com/oceanus/vessel-records-backend/internal/handler"
	"github.com/oceanus/vessel-records-backend/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, movements *handler.MovementHandler, reports *handler.ReportHandler) *gin.Engine {
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
			"message": "Vessel Records Backend API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	if cfg.RateLimit > 0 {
		api.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))
	}
	if cfg.RequireAuth {
		api.Use(middleware.JWTAuth(cfg.JWTSecret))
	}
	{
		// 船只移动接口
		api.GET("/vessel-movements", movements.GetVesselMovements)
		api.GET("/harbor-movements", movements.GetHarborMovements)
		api.POST("/aggregate-vessel-movements", movements.AggregateVesselMovements)
		api.POST("/vessel-time-series", movements.VesselTimeSeries)
		api.POST("/vessel-similarity-embedding", movements.VesselSimilarityEmbedding)
		api.POST("/vessel-travel-distance", movements.VesselTravelDistance)

		// 商品报告接口
		api.GET("/commodity-distributions", reports.GetCommodityDistributions)
		api.GET("/commodity-ledger", reports.GetCommodityLedger)
		api.GET("/vessel-commodity-union", reports.GetVesselCommodityUnion)
		api.GET("/commodity-fishing-locations", reports.GetCommodityFishingLocations)
		api.GET("/locations", reports.GetLocations)
	}

	return r
}
