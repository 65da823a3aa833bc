package database

import (
	"log"

	"gearshift-backend/internal/config"
	"gearshift-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// TranslateError lets the unique indexes act as the source of truth for
	// conflicts: a race past the handler pre-check still comes back as
	// gorm.ErrDuplicatedKey and maps to 409.
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("database connected, migration complete")
}

// Migrate creates or updates the full schema. Tests run it against an
// in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Account{},
		&models.Verification{},
		&models.Customer{},
		&models.Vehicle{},
		&models.Job{},
		&models.InventoryItem{},
		&models.LabourItem{},
		&models.Estimate{},
		&models.EstimateLine{},
		&models.WorkLog{},
		&models.PartsUsage{},
		&models.Order{},
		&models.Payment{},
		&models.Invoice{},
		&models.Notification{},
		&models.PdfTemplate{},
	)
}
