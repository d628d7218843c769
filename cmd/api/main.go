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

	"go-portfolio-api/internal/core/auth"
	"go-portfolio-api/internal/core/config"
	"go-portfolio-api/internal/core/logger"
	"go-portfolio-api/internal/core/mongodb"
	"go-portfolio-api/internal/core/server"
	"go-portfolio-api/internal/repo"
	"go-portfolio-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON,
			cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	// Mongo：建连失败才 Fatal；ping 不通只告警，驱动按操作惰性重连
	store, err := mongodb.Connect(context.Background(), mongodb.Opts{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: time.Duration(cfg.Mongo.ConnectTimeoutSec) * time.Second,
	})
	if err != nil {
		log.Fatal("mongo client build failed", zap.Error(err))
	}
	if err := store.Ping(context.Background()); err != nil {
		log.Error("mongo ping failed, serving anyway", zap.Error(err))
	} else {
		log.Info("mongo connected", zap.String("db", cfg.Mongo.Database))
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	projects := repo.NewProjectRepo(store.DB)
	skills := repo.NewSkillRepo(store.DB)
	users := repo.NewUserRepo(store.DB)
	if err := users.EnsureIndexes(context.Background()); err != nil {
		log.Error("ensure user indexes failed", zap.Error(err))
	}

	r := router.NewAPIEngine(log, jwter, projects, skills, users)

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
	log.Info("portfolio api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("portfolio api start FAILED", zap.Error(err))
		}
	}()
	log.Info("portfolio api started SUCCESS")

	// 优雅关闭：先排空 HTTP，再断开存储
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = store.Close(ctx)
	log.Info("portfolio api stopped gracefully")
}
