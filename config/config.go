package config

import (
	"os"
	"strings"

	"party-room-api/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// GetEnv reads an environment variable with a fallback
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// CORSOrigins returns the allowed browser origins. Defaults cover the local
// dev servers the frontend runs on.
func CORSOrigins() []string {
	raw := GetEnv("CORS_ORIGINS",
		"http://localhost:3000,http://localhost:5173,http://localhost:5174")
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

// InitDB opens the SQLite database and migrates the schema
func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(GetEnv("DB_PATH", "party_rooms.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	if err := AutoMigrate(DB); err != nil {
		logrus.Fatal("Failed to migrate database: ", err)
	}

	logrus.Info("Database connected and migrated")
}

// AutoMigrate creates/updates all tables. Exported so tests can migrate
// an in-memory database through the same path.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Room{},
		&models.Family{},
		&models.Member{},
		&models.Dish{},
		&models.Drink{},
		&models.WishlistItem{},
		&models.DrinkWishlistItem{},
	)
}
