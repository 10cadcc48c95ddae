package database

import (
	"log"
	"time"

	"mangestic/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect opens the MySQL handle and configures the connection pool.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// Connections older than an hour are re-established before use,
	// which keeps us clear of MySQL's wait_timeout.
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
	return db, nil
}

// MigrateTables creates the user, challenge and solve tables.
func MigrateTables(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Challenge{}, &models.Solve{})
}
