package client

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"edumath-pro/internal/model"
)

func InitSqliteClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&model.StoreEntry{},
		&model.PaymentAttempt{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
