package bootstrap

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/locvowork/companyset/internal/config"
	"github.com/locvowork/companyset/internal/errors"
	"github.com/locvowork/companyset/internal/handler"
	"github.com/locvowork/companyset/internal/logger"
	"github.com/locvowork/companyset/internal/repository"
	"github.com/locvowork/companyset/internal/seed"
	"github.com/locvowork/companyset/internal/service"
	"github.com/locvowork/companyset/pkg/simpleexcel"
)

type App struct {
	Echo    *echo.Echo
	Company *service.CompanyService
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{
		Echo: e,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return errors.Wrap(err, "failed to load env config")
	}
	cfg := config.DefaultEnvConfig

	// Initialize logging
	logger.InitLogging(cfg.LOG_FILE_PATH, cfg.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	company, err := repository.NewCompanySet(cfg.COMPANY_CAPACITY)
	if err != nil {
		return errors.Wrap(err, "failed to create company")
	}

	if cfg.SEED_FILE != "" {
		res, err := seed.LoadFile(cfg.SEED_FILE, company)
		if err != nil {
			return errors.Wrap(err, "failed to seed company")
		}
		logger.InfoLog(ctx, "Seeded %d employees (%d rejected) from %s", res.Added, res.Rejected, cfg.SEED_FILE)
	}

	if cfg.EXPORT_TEMPLATE != "" {
		if _, err := simpleexcel.NewDataExporterFromYamlFile(cfg.EXPORT_TEMPLATE); err != nil {
			return errors.Wrap(err, "failed to load export template")
		}
	}

	// Initialize dependencies
	a.Company = service.NewCompanyService(company)
	empHandler := handler.NewEmployeeHandler(a.Company, cfg.EXPORT_TEMPLATE)

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(empHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(empHandler *handler.EmployeeHandler) {
	handler.RegisterRoutes(a.Echo, empHandler)
}

func (a *App) Run() error {
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}

// Serve runs the HTTP server until it fails or ctx is done, then shuts it
// down gracefully.
func (a *App) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- a.Run() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.InfoLog(ctx, "Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.Shutdown(shutdownCtx)
	}
}

// Shutdown stops the HTTP server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
