package main

import (
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"taskmanager_backend/internal/app/config"
	"taskmanager_backend/internal/app/di"
	"taskmanager_backend/internal/app/router"
	authadapters "taskmanager_backend/internal/feature/auth/adapters"
	authhandler "taskmanager_backend/internal/feature/auth/transport/handler"
	authusecase "taskmanager_backend/internal/feature/auth/usecase"
	taskhandler "taskmanager_backend/internal/feature/tasks/transport/handler"
	taskusecase "taskmanager_backend/internal/feature/tasks/usecase"
	"taskmanager_backend/internal/platform/db"
	jwtmw "taskmanager_backend/internal/platform/jwt"
	platformredis "taskmanager_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	gormDB := db.OpenDB(cfg.DB)

	// Redis (optional; tasks are served straight from the DB without it)
	var rdb *redisv9.Client
	if cfg.Redis.Host != "" {
		if tmp, err := platformredis.NewRedisClient(cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Running without the task-list cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(gormDB)
	taskRepo := di.NewTaskRepository(rdb, gormDB, cfg.Redis)

	// Platform services
	tokenService := jwtmw.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	mailer := di.NewResetMailer(cfg.Email)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, tokenService, mailer, cfg.PublicBaseURL, cfg.ResetTokenTTL)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	r := router.NewRouter(authH, taskH, tokenService, userRepo)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
