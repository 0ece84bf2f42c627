package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yoones-dev/portfolio-api/internal/models"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	// TranslateError maps driver unique-constraint violations onto
	// gorm.ErrDuplicatedKey, which is what closes the duplicate-name race
	// under concurrent creates.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	return Migrate(DB)
}

// Migrate registers the join table and creates any missing tables. Split
// out from MigrateDatabase so tests can run it against their own handle.
func Migrate(database *gorm.DB) error {
	if err := database.SetupJoinTable(&models.Project{}, "Frameworks", &models.ProjectFramework{}); err != nil {
		return err
	}

	entities := []interface{}{
		&models.User{},
		&models.Framework{},
		&models.Project{},
		&models.Message{},
	}

	migrator := database.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := database.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
