package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"mesero_server/config"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// DB wraps the bun database handle with lifecycle helpers.
type DB struct {
	*bun.DB
}

var instance *DB

// Connect establishes a connection to the database using centralized configuration
func Connect() (*DB, error) {
	logger := config.GetLogger()
	dbCfg := config.GetConfig().Database

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		dbCfg.User, dbCfg.Password, dbCfg.Host, dbCfg.Port, dbCfg.Name, dbCfg.SSLMode)

	sqldb, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqldb.SetMaxOpenConns(dbCfg.MaxConns)
	sqldb.SetMaxIdleConns(dbCfg.MinConns)
	sqldb.SetConnMaxLifetime(dbCfg.MaxLifetime)
	sqldb.SetConnMaxIdleTime(dbCfg.MaxIdleTime)

	db := bun.NewDB(sqldb, pgdialect.New())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to database successfully")

	return &DB{db}, nil
}

// Initialize sets up the global database instance using centralized configuration
func Initialize() error {
	db, err := Connect()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	instance = db
	return nil
}

// GetInstance returns the global database instance
func GetInstance() *DB {
	if instance == nil {
		log.Fatal("Database instance is not initialized. Call Initialize() first.")
	}
	return instance
}

// CloseInstance closes the global database instance
func CloseInstance() error {
	if instance != nil {
		return instance.Close()
	}
	return nil
}

// Health checks the database connection health
func (db *DB) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}
