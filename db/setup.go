package db

import (
	"github.com/timecapsule-dev/timecapsule/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey so conflicts can be mapped to 409s.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.JournalEntry{},
		&models.BucketListItem{},
		&models.FutureLetter{},
		&models.Favorite{},
		&models.Capsule{},
		&models.CapsuleMembership{},
		&models.CapsuleJournal{},
		&models.CapsuleBucketItem{},
		&models.CapsuleLetter{},
		&models.CapsuleFavorite{},
		&models.SharedItem{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
