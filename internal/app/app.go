package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
	"github.com/simp-lee/logger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/tyredepot/admin/internal/config"
	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/middleware"
	"github.com/tyredepot/admin/internal/module/auth"
	"github.com/tyredepot/admin/internal/module/catalog"
	"github.com/tyredepot/admin/internal/module/content"
	"github.com/tyredepot/admin/internal/module/order"
	"github.com/tyredepot/admin/internal/module/schedule"
	"github.com/tyredepot/admin/internal/module/settings"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine  *gin.Engine
	db      *gorm.DB
	logger  *logger.Logger
	cfg     *config.Config
	limiter *middleware.RateLimiter
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
// It sets up logging, the database, every business module (repository →
// service → handler → module), middleware, and routes.
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

	// 2. Setup database (includes connection pool configuration).
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
			&domain.Admin{},
			&domain.Order{},
			&domain.Payment{},
			&domain.Brand{},
			&domain.Product{},
			&domain.Blog{},
			&domain.Banner{},
			&domain.TimeSlot{},
			&domain.Holiday{},
			&domain.Appointment{},
			&domain.Service{},
			&domain.Tax{},
			&domain.Measurement{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Token service shared by the auth module and the auth middleware.
	jwtSvc, err := jwt.New(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("setup jwt service: %w", err)
	}

	// 5. Rate limiting for the unauthenticated login endpoints.
	var limiter *middleware.RateLimiter
	var loginRateLimit gin.HandlerFunc
	if cfg.Server.RateLimit.Enabled {
		rlConfig := middleware.DefaultRateLimiterConfig()
		rlConfig.RPS = rate.Limit(cfg.Server.RateLimit.RPS)
		rlConfig.Burst = cfg.Server.RateLimit.Burst
		limiter = middleware.NewRateLimiter(rlConfig)
		loginRateLimit = limiter.Middleware()
	}

	// 6. Manual dependency injection: repository → service → handler → module.
	adminRepo := auth.NewAdminRepository(db)
	authSvc := auth.NewService(jwtSvc, adminRepo, auth.LogSender{}, cfg.TokenExpiry(), cfg.TempTokenExpiry(), cfg.OTPTTL())
	authModule := auth.NewModule(auth.NewHandler(authSvc), loginRateLimit)

	orderRepo := order.NewOrderRepository(db)
	orderModule := order.NewModule(order.NewOrderHandler(order.NewOrderService(orderRepo)))

	brandRepo := catalog.NewBrandRepository(db)
	productRepo := catalog.NewProductRepository(db)
	catalogModule := catalog.NewModule(
		catalog.NewBrandHandler(catalog.NewBrandService(brandRepo, productRepo), cfg.Assets.BaseURL),
		catalog.NewProductHandler(catalog.NewProductService(productRepo, brandRepo), cfg.Assets.BaseURL),
	)

	contentModule := content.NewModule(
		content.NewBlogHandler(content.NewBlogService(content.NewBlogRepository(db)), cfg.Assets.BaseURL),
		content.NewBannerHandler(content.NewBannerService(content.NewBannerRepository(db)), cfg.Assets.BaseURL),
	)

	slotRepo := schedule.NewTimeSlotRepository(db)
	holidayRepo := schedule.NewHolidayRepository(db)
	scheduleModule := schedule.NewModule(
		schedule.NewAppointmentHandler(schedule.NewAppointmentService(schedule.NewAppointmentRepository(db), slotRepo, holidayRepo)),
		schedule.NewTimeSlotHandler(schedule.NewTimeSlotService(slotRepo)),
		schedule.NewHolidayHandler(schedule.NewHolidayService(holidayRepo)),
	)

	settingsModule := settings.NewModule(settings.NewHandler(settings.NewService(
		settings.NewServiceRepository(db),
		settings.NewTaxRepository(db),
		settings.NewMeasurementRepository(db),
	)))

	// 7. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// Build CORS config from application settings.
	// In release mode, when no allowlist is configured, default to deny cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	// 8. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules: []Module{
			authModule,
			orderModule,
			catalogModule,
			contentModule,
			scheduleModule,
			settingsModule,
		},
		DB:   db,
		Auth: middleware.Auth(jwtSvc),
	}); err != nil {
		if limiter != nil {
			limiter.Stop()
		}
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine:  engine,
		db:      db,
		logger:  log,
		cfg:     cfg,
		limiter: limiter,
	}, nil
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout and closes the
// database connection.
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

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		if a.logger != nil {
			a.logger.Info("server started", slog.String("addr", addr))
		} else {
			slog.Info("server started", slog.String("addr", addr))
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		if a.logger != nil {
			a.logger.Info("shutdown signal received")
		} else {
			slog.Info("shutdown signal received")
		}
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if a.logger != nil {
				a.logger.Error("server shutdown error", slog.Any("error", err))
			} else {
				slog.Error("server shutdown error", slog.Any("error", err))
			}
		}
	}

	if a.limiter != nil {
		a.limiter.Stop()
	}

	// Close database connection.
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				if a.logger != nil {
					a.logger.Error("database close error", slog.Any("error", err))
				} else {
					slog.Error("database close error", slog.Any("error", err))
				}
			} else {
				if a.logger != nil {
					a.logger.Info("database connection closed")
				} else {
					slog.Info("database connection closed")
				}
			}
		}
	}

	if a.logger != nil {
		a.logger.Info("server stopped")
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	} else {
		slog.Info("server stopped")
	}

	if runErr != nil {
		return runErr
	}

	return nil
}
