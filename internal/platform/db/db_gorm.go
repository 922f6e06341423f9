// Package db opens the GORM database connection for the service.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "finance_backend/internal/feature/auth/domain/entity"
	portfolioadapters "finance_backend/internal/feature/portfolio/adapters"
	quotesadapters "finance_backend/internal/feature/quotes/adapters"
	symbolentity "finance_backend/internal/feature/symbols/domain/entity"
)

// OpenDB connects to MySQL using DB_* environment variables. When DB_NAME
// is unset it falls back to a local SQLite file so the documented local run
// (no external services) still works. Cloud SQL is reached through a unix
// socket when INSTANCE_CONNECTION_NAME is set.
func OpenDB() *gorm.DB {
	name := os.Getenv("DB_NAME")

	var (
		db  *gorm.DB
		err error
	)

	if name == "" {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "./finance.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatalf("sqlite open failed: %v", err)
		}
		log.Println("USING_SQLITE:", path)
		migrate(db)
		return db
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	instance := os.Getenv("INSTANCE_CONNECTION_NAME")

	var dsn string
	if instance != "" {
		dsn = fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			user, pass, instance, name)
	} else {
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			user, pass, host, port, name)
	}

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		migrate(db)
	}

	return db
}

// migrate creates or updates the schema for all persisted models.
func migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&authentity.User{},
		&symbolentity.Symbol{},
		&quotesadapters.CandleModel{},
		&portfolioadapters.HoldingModel{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
}
