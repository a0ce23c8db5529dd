// @title Clue Quest Backend API
// @version 1.0
// @description Session-based backend for the multi-team clue quest escape game.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"clue_quest_backend/internal/app"
	"clue_quest_backend/internal/config"
	"clue_quest_backend/pkg/configwatcher"
	"clue_quest_backend/pkg/logger"
	"flag"
	"log"
	"path/filepath"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移")
	seed := flag.Bool("seed", false, "启动时强制重新载入关卡目录")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly
	cfg.ReseedLevels = *seed

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	if cfg.Server.Mode == "debug" {
		go configwatcher.WatchConfig(filepath.Join("configs", "config.yaml"), func(newCfg *config.Config) {
			logger.Log.Info("Config reloaded")
			*cfg = *newCfg
		})
	}

	application.Run()
}
