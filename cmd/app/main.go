package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hubops/api"
	"hubops/cmd"
	hubhttp "hubops/internal/adapters/in/http"
	"hubops/internal/adapters/out/locks"
	"hubops/internal/adapters/out/postgres"
	"hubops/internal/core/ports"

	"github.com/bsm/redislock"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env", ".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := configs.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect database")
	}
	if err = postgres.Migrate(gormDB); err != nil {
		logger.WithError(err).Fatal("failed to migrate schema")
	}

	locker, closeLocker, err := newLocker(configs, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect redis")
	}
	defer closeLocker()

	app, err := cmd.NewCompositionRoot(configs, gormDB, locker, logger)
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.WithError(err).Fatal("failed to start jobs")
	}
	defer jobManager.StopAll()

	e, err := newEcho(app, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to build http server")
	}
	startWebServer(e, configs.HTTPPort, logger)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err = db.Use(otelgorm.NewPlugin()); err != nil {
		return nil, err
	}
	return db, nil
}

// newLocker returns the Redis-backed locker when REDIS_ADDR is set and an
// in-process one otherwise.
func newLocker(configs cmd.Config, logger *logrus.Logger) (ports.ScopeLocker, func(), error) {
	if configs.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set; allocation locks are in process")
		return locks.NewKeyedMutex(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}

	locker := locks.NewRedisLocker(redislock.New(rdb), locks.RedisLockerConfig{}, logger)
	return locker, func() { _ = rdb.Close() }, nil
}

func newEcho(app cmd.CompositionRoot, logger *logrus.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.WARN)
	e.Validator = hubhttp.NewRequestValidator()

	validate, err := hubhttp.OpenAPIValidator(api.OpenAPI)
	if err != nil {
		return nil, err
	}
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(hubhttp.Tracing("hubops"))
	e.Use(hubhttp.RequestLogger(logger))
	e.Use(validate)

	app.CreateHTTPServer().Register(e)
	hubhttp.RegisterSwagger(e)
	return e, nil
}

func startWebServer(e *echo.Echo, port string, logger *logrus.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("http server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("http server shutdown failed")
	}
}
