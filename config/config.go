package config

import (
	"fmt"

	"food-delivery-api/models"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type HTTP struct {
	Port int
}

type Database struct {
	Path string
}

type Mail struct {
	From    string
	HostURL string
}

type Config struct {
	Environment string
	HTTP        HTTP
	Database    Database
	Mail        Mail
}

// Load reads configuration from config.yaml (if present) with
// FOOD_DELIVERY_* env overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("FOOD_DELIVERY")
	v.AutomaticEnv()

	v.SetDefault("environment", "development")
	v.SetDefault("http.port", 8080)
	v.SetDefault("database.path", "food_delivery.db")
	v.SetDefault("mail.from", "no-reply@food-delivery.example")
	v.SetDefault("mail.hosturl", "http://localhost:8080")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// InitDB opens the sqlite database and migrates all models.
func InitDB(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Restaurant{},
	); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	DB = db
	return nil
}
