package app

import (
	"clue_quest_backend/internal/config"
	"clue_quest_backend/internal/controller"
	"clue_quest_backend/internal/repository"
	"clue_quest_backend/internal/service"
	"clue_quest_backend/pkg/database"
	"clue_quest_backend/pkg/logger"
	"clue_quest_backend/pkg/monitoring"
	"clue_quest_backend/pkg/security"
	"clue_quest_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	team     *repository.TeamRepository
	level    *repository.LevelRepository
	progress *repository.ProgressRepository
}

type services struct {
	sessions *service.SessionService
	auth     *service.AuthService
	game     *service.GameService
	resolver *service.TeamResolver
	storage  *service.StorageService
	seed     *service.SeedService
}

type controllers struct {
	auth   *controller.AuthController
	game   *controller.GameController
	level  *controller.LevelController
	health *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		team:     repository.NewTeamRepository(db),
		level:    repository.NewLevelRepository(db),
		progress: repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	hasher := service.BcryptHasher{}

	s.sessions = service.NewSessionService(service.NewRedisSessionStore(rdb), cfg)
	s.auth = service.NewAuthService(repos.team, s.sessions, hasher, cfg)
	s.game = service.NewGameService(repos.team, repos.level, repos.progress, hasher)
	s.resolver = service.NewTeamResolver(repos.team, s.sessions)
	s.storage = service.NewStorageService(cfg)
	s.seed = service.NewSeedService(repos.level)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	isRelease := a.Config.Server.Mode == "release"
	return &controllers{
		auth:   controller.NewAuthController(s.auth, isRelease),
		game:   controller.NewGameController(s.game),
		level:  controller.NewLevelController(repos.level, repos.team, s.storage, a.Config),
		health: controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, repos, db)

	if err := services.seed.EnsureCatalog(cfg.Game.CatalogPath, cfg.ReseedLevels); err != nil {
		logger.Log.Fatal("Failed to seed level catalog", zap.Error(err))
	}

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("clue-quest", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
