package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutor_dashboard_backend/internal/config"
	"tutor_dashboard_backend/internal/controller"
	"tutor_dashboard_backend/internal/repository"
	"tutor_dashboard_backend/internal/service"
	"tutor_dashboard_backend/pkg/logger"
	"tutor_dashboard_backend/pkg/monitoring"
	"tutor_dashboard_backend/pkg/security"
	"tutor_dashboard_backend/pkg/sheets"
	"tutor_dashboard_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Store  repository.Store
	Cache  *repository.TableCache
}

type repositories struct {
	tutor      *repository.TutorRepository
	student    *repository.StudentRepository
	schedule   *repository.ScheduleRepository
	plan       *repository.PlanRepository
	curriculum *repository.CurriculumRepository
}

type services struct {
	auth     *service.AuthService
	schedule *service.ScheduleService
	plan     *service.PlanService
}

type controllers struct {
	auth   *controller.AuthController
	class  *controller.ClassController
	plan   *controller.PlanController
	health *controller.HealthController
}

func (a *App) initRepositories(store repository.Store, cache *repository.TableCache) *repositories {
	return &repositories{
		tutor:      repository.NewTutorRepository(cache),
		student:    repository.NewStudentRepository(cache),
		schedule:   repository.NewScheduleRepository(store, cache),
		plan:       repository.NewPlanRepository(store, cache),
		curriculum: repository.NewCurriculumRepository(cache),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		auth:     service.NewAuthService(repos.tutor, cfg),
		schedule: service.NewScheduleService(repos.schedule, repos.student),
		plan:     service.NewPlanService(repos.plan, repos.curriculum),
	}
}

func (a *App) initControllers(s *services, store repository.Store) *controllers {
	return &controllers{
		auth:   controller.NewAuthController(s.auth),
		class:  controller.NewClassController(s.schedule),
		plan:   controller.NewPlanController(s.plan),
		health: controller.NewHealthController(store),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ApplyConfig absorbs a hot-reloaded config; only live tunables are swapped.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Cache.SetTTL(cfg.Cache.TTL)
	logger.Log.Info("config reloaded", zap.Duration("cache_ttl", cfg.Cache.TTL))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	store, err := sheets.New(context.Background(), &cfg.Sheets)
	if err != nil {
		logger.Log.Fatal("Failed to connect to spreadsheet backend", zap.Error(err))
	}

	cache := repository.NewTableCache(store, cfg.Cache.TTL)

	app := &App{
		Config: cfg,
		Store:  store,
		Cache:  cache,
	}

	repos := app.initRepositories(store, cache)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, store)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("tutor-dashboard", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
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
