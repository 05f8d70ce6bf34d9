package database

import (
	"strings"

	"github.com/Davidkingreuben/Dreamcoach/internal/config"
	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database handle. PostgreSQL when the URL says so,
// otherwise a local SQLite file — the default for the single-user setup.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Dream{},
		&models.DailyCheckIn{},
		&models.LegacyCheckIn{},
		&models.GraceDay{},
		&models.PersonalBest{},
		&models.Badge{},
		&models.XPEvent{},
		&models.DreamXP{},
		&models.WeeklySummary{},
		&models.DreamTeam{},
		&models.TeamMember{},
		&models.TeamSignal{},
		&models.EventLog{},
	)
}
