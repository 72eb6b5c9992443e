package main

import (
	"log"

	"github.com/oceanus/vessel-records-backend/internal/api"
	"github.com/oceanus/vessel-records-backend/internal/catalog"
	"github.com/oceanus/vessel-records-backend/internal/config"
	"github.com/oceanus/vessel-records-backend/internal/handler"
	"github.com/oceanus/vessel-records-backend/internal/ledger"
	"github.com/oceanus/vessel-records-backend/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 加载数据目录（或预导入的 sqlite 数据库）
	var cat *catalog.Catalog
	if cfg.DBPath != "" {
		var err error
		cat, err = catalog.LoadSQLite(cfg.DBPath)
		if err != nil {
			log.Fatal("Failed to load dataset db:", err)
		}
	} else {
		cat = catalog.LoadDataset(cfg.DataDir)
	}

	// 构建移动台账（进程生命周期内只计算一次）
	led := ledger.Build(cat)

	movements := handler.NewMovementHandler(service.NewMovementService(cat, led))
	reports := handler.NewReportHandler(service.NewReportService(cat, led))

	// 初始化路由
	router := api.SetupRouter(cfg, movements, reports)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
