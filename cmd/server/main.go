package main

import (
	"log"

	"github.com/jengzang/fares-backend-go/internal/api"
	"github.com/jengzang/fares-backend-go/internal/config"
	"github.com/jengzang/fares-backend-go/internal/database"
	"github.com/jengzang/fares-backend-go/internal/dataset"
	"github.com/jengzang/fares-backend-go/internal/handler"
	"github.com/jengzang/fares-backend-go/internal/pipeline"
	"github.com/jengzang/fares-backend-go/internal/repository"
	"github.com/jengzang/fares-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.NewMigrationManager(db).RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// 仓库
	tripRepo := repository.NewTripRepository(db)
	jobRepo := repository.NewJobRepository(db)
	runRepo := repository.NewRunRepository(db)

	// 服务
	reader := dataset.NewCSVReader(cfg.PartitionSize)
	ingestSvc := service.NewIngestService(jobRepo, tripRepo, reader, pipeline.DefaultConfig(), cfg.IngestWorkers)
	tripSvc := service.NewTripService(tripRepo)
	trainingSvc := service.NewTrainingService(runRepo, tripRepo, service.DefaultTrainers())

	// 初始化路由
	router := api.SetupRouter(cfg, api.Handlers{
		Trips:    handler.NewTripHandler(tripSvc),
		Ingest:   handler.NewIngestHandler(ingestSvc),
		Training: handler.NewTrainingHandler(trainingSvc),
	})

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
