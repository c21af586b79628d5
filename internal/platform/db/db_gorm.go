// Package db opens the GORM database connection used by the repositories.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskmanager_backend/internal/app/config"
	authentity "taskmanager_backend/internal/feature/auth/domain/entity"
	taskentity "taskmanager_backend/internal/feature/tasks/domain/entity"
)

// OpenDB connects to Postgres, retrying for up to a minute so the server can
// start before the database is ready. TranslateError is enabled so the
// repositories can match gorm.ErrDuplicatedKey regardless of driver.
func OpenDB(cfg config.DBConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&taskentity.Task{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
