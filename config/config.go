package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Adeyinka-05/RealtyNest/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	// Commission policy. Rates are fractions of the sale amount and are
	// deliberately env-injected rather than hard-coded.
	DirectCommissionRate   float64
	ReferralCommissionRate float64

	// When true, approving a payout that would drive the requester's
	// available balance negative is refused; when false it is only logged.
	PayoutStrictBalance bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// A missing .env file is fine in deployed environments where the
	// variables are set directly.
	_ = godotenv.Load()

	config := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       os.Getenv("PORT"),
		Env:        os.Getenv("ENV"),

		DirectCommissionRate:   parseRate(os.Getenv("DIRECT_COMMISSION_RATE"), 0.05),
		ReferralCommissionRate: parseRate(os.Getenv("REFERRAL_COMMISSION_RATE"), 0.01),
		PayoutStrictBalance:    os.Getenv("PAYOUT_STRICT_BALANCE") != "false",
	}

	return config, nil
}

// parseRate parses a commission rate, falling back to a default when the
// variable is unset or not a valid fraction.
func parseRate(value string, fallback float64) float64 {
	if value == "" {
		return fallback
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil || rate < 0 || rate > 1 {
		return fallback
	}
	return rate
}

// InitDB initializes the database connection
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	// Auto-migrate the schema
	err = DB.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.BankDetail{},
		&models.Referral{},
		&models.Property{},
		&models.Receipt{},
		&models.Commission{},
		&models.Payout{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}
