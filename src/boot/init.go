package boot

import (
	"erbs/src/db"
	"erbs/src/models"
	"log"

	"gorm.io/gorm"
)

// InitDb opens the store and applies the idempotent schema migration. An
// existing store file is reused as-is.
func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Slot{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}
