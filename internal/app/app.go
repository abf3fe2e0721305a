package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/dealerdesk/dealerdesk/internal/config"
	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/jobs"
	"github.com/dealerdesk/dealerdesk/internal/middleware"
	"github.com/dealerdesk/dealerdesk/internal/module/auth"
	"github.com/dealerdesk/dealerdesk/internal/module/company"
	"github.com/dealerdesk/dealerdesk/internal/module/dealer"
	"github.com/dealerdesk/dealerdesk/internal/module/product"
	"github.com/dealerdesk/dealerdesk/internal/module/registry"
	"github.com/dealerdesk/dealerdesk/internal/module/sale"
	"github.com/dealerdesk/dealerdesk/internal/module/stock"
	"github.com/dealerdesk/dealerdesk/internal/module/user"
	"github.com/dealerdesk/dealerdesk/internal/remote"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine    *gin.Engine
	db        *gorm.DB
	logger    *logger.Logger
	cfg       *config.Config
	scheduler *jobs.Scheduler
	jwtSvc    jwt.Service
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, database, domain repositories, services, handlers,
// middleware, background jobs, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database with connection pool.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only.
	if cfg.Server.Mode == gin.DebugMode {
		if err := db.AutoMigrate(
			&domain.Company{},
			&domain.Dealer{},
			&domain.Product{},
			&domain.Stock{},
			&domain.Sale{},
			&domain.User{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Manual dependency injection: repository → service → handler.
	companyRepo := company.NewRepository(db)
	dealerRepo := dealer.NewRepository(db)
	productRepo := product.NewRepository(db)
	stockRepo := stock.NewRepository(db)
	saleRepo := sale.NewRepository(db)
	userRepo := user.NewRepository(db)

	companySvc := company.NewService(companyRepo)
	dealerSvc := dealer.NewService(dealerRepo, companyRepo)
	productSvc := product.NewService(productRepo, companyRepo)
	stockSvc := stock.NewService(stockRepo, dealerRepo, productRepo)
	saleSvc := sale.NewService(saleRepo, dealerRepo, productRepo)
	userSvc := user.NewService(userRepo)

	modules := []Module{
		company.NewModule(company.NewHandler(companySvc)),
		dealer.NewModule(dealer.NewHandler(dealerSvc)),
		product.NewModule(product.NewHandler(productSvc)),
		stock.NewModule(stock.NewHandler(stockSvc)),
		sale.NewModule(sale.NewHandler(saleSvc)),
		user.NewModule(user.NewHandler(userSvc)),
	}

	// 5. Optional token auth. When disabled every endpoint is open, which
	// is only acceptable behind a trusted reverse proxy.
	var jwtSvc jwt.Service
	if cfg.Auth.Enabled {
		jwtSvc, err = jwt.New(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("setup jwt service: %w", err)
		}
		authSvc := auth.NewService(jwtSvc, userRepo, cfg.TokenExpiryDuration())
		modules = append(modules, auth.NewModule(auth.NewHandler(authSvc)))
	} else {
		log.Warn("auth disabled: all endpoints are unauthenticated")
	}

	// 6. Optional upstream registry proxy.
	if cfg.Registry.Enabled {
		client, err := remote.NewClient(cfg.Registry.BaseURL, cfg.RegistryTimeoutDuration())
		if err != nil {
			return nil, fmt.Errorf("setup registry client: %w", err)
		}
		modules = append(modules, registry.NewModule(registry.NewHandler(client, cfg.Registry.CacheSize)))
	}

	// 7. Create Gin engine with custom middleware (not gin.Default()).
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	corsConfig := resolveCORSConfig(cfg.Server.Mode, &cfg.Server.CORS)
	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	// 8. Background jobs.
	scheduler := jobs.NewScheduler(log.Logger)
	if cfg.Jobs.ExpiryScan.Enabled {
		scan := jobs.NewExpiryScan(saleRepo, log.Logger)
		if err := scheduler.Register("warranty_expiry_scan", cfg.Jobs.ExpiryScan.Schedule, scan.Run); err != nil {
			return nil, fmt.Errorf("schedule expiry scan: %w", err)
		}
	}

	// 9. Register all routes.
	deps := &RouteDeps{
		Modules: modules,
		DB:      db,
	}
	if cfg.Auth.Enabled {
		deps.AuthMiddleware = middleware.Auth(jwtSvc, publicPaths(cfg))
	}
	if err := RegisterRoutes(engine, deps); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine:    engine,
		db:        db,
		logger:    log,
		cfg:       cfg,
		scheduler: scheduler,
		jwtSvc:    jwtSvc,
	}, nil
}

// publicPaths returns the endpoints reachable without a token. Login and
// registration are always public; config can extend the list.
func publicPaths(cfg *config.Config) []string {
	paths := []string{"/health", "/api/v1/auth/login", "/api/v1/auth/register"}
	return append(paths, cfg.Auth.PublicPaths...)
}

func resolveCORSConfig(mode string, cors *config.CORSConfig) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(cors.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cors.AllowOrigins
	} else if mode == gin.ReleaseMode {
		// No allowlist configured in release mode: deny cross-origin requests.
		corsConfig.AllowOrigins = []string{}
	}
	if len(cors.AllowMethods) > 0 {
		corsConfig.AllowMethods = cors.AllowMethods
	}
	if len(cors.AllowHeaders) > 0 {
		corsConfig.AllowHeaders = cors.AllowHeaders
	}
	corsConfig.AllowCredentials = cors.AllowCredentials
	if d, err := time.ParseDuration(cors.MaxAge); err == nil && d > 0 {
		corsConfig.MaxAge = strconv.Itoa(int(d.Seconds()))
	}

	return corsConfig
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout, stops the job
// scheduler, and closes the database connection.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	if a.scheduler != nil {
		a.scheduler.Start()
	}

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log().Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	select {
	case <-ctx.Done():
		a.log().Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.log().Error("server shutdown error", slog.Any("error", err))
		}
	}

	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.jwtSvc != nil {
		a.jwtSvc.Close()
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log().Error("database close error", slog.Any("error", err))
			} else {
				a.log().Info("database connection closed")
			}
		}
	}

	a.log().Info("server stopped")
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}

	return runErr
}

// log returns the app logger, falling back to slog's default so Run never
// nil-panics in partially constructed test apps.
func (a *App) log() *slog.Logger {
	if a.logger != nil {
		return a.logger.Logger
	}
	return slog.Default()
}
