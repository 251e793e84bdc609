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

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-account-service/internal/core/auth"
	"go-account-service/internal/core/cache"
	"go-account-service/internal/core/config"
	"go-account-service/internal/core/database"
	"go-account-service/internal/core/logger"
	"go-account-service/internal/core/server"
	"go-account-service/internal/domain"
	"go-account-service/internal/repo"
	"go-account-service/internal/service"
	"go-account-service/internal/transport/http/handler"
	"go-account-service/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.Account{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	accountRepo := repo.NewAccountRepo(db)
	accounts := service.NewAccountService(accountRepo)
	gate := service.NewCredentialGate(accounts)

	// seed the default account before taking traffic
	ctx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	created, err := service.EnsureBootstrapAccount(ctx, accounts, cfg.Bootstrap.Email, cfg.Bootstrap.Password)
	cancelSeed()
	if err != nil {
		log.Fatal("bootstrap account", zap.Error(err))
	}
	if created {
		log.Info("default account created", zap.String("email", cfg.Bootstrap.Email))
	}

	h := handler.NewAccountHandler(accounts, gate, jwter)
	if cfg.Redis.Addr != "" {
		h = h.WithCache(
			cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB),
			time.Duration(cfg.Redis.CacheTTLSec)*time.Second,
		)
		log.Info("account cache enabled", zap.String("redis", cfg.Redis.Addr))
	}

	r := router.NewAPIEngine(log, h, jwter)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("account api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := server.StartHTTP(srv, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("account api start FAILED", zap.Error(err))
		}
	}()
	log.Info("account api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("account api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File != "" {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
