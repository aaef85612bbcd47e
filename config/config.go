package config

import (
	"fmt"
	stdlog "log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port      string
	JWTSecret []byte

	// Postgres connection pieces, assembled into a DSN.
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// SMTP settings for OTP delivery.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	OTPTTL time.Duration
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load reads .env if present and builds the configuration. A missing .env
// is fine in production where variables come from the environment itself.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		stdlog.Println("No .env file found, using environment variables")
	}

	cfg := Config{
		Port:         getenv("PORT", "5000"),
		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
		DBHost:       getenv("DB_HOST", "localhost"),
		DBUser:       getenv("DB_USER", "postgres"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getenv("DB_NAME", "e_voting"),
		DBPort:       getenv("DB_PORT", "5432"),
		SMTPHost:     getenv("SMTP_HOST", "localhost"),
		SMTPPort:     getenvInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     os.Getenv("MAIL_FROM"),
		OTPTTL:       time.Duration(getenvInt("OTP_TTL_MINUTES", 5)) * time.Minute,
	}

	if len(cfg.JWTSecret) == 0 {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

// DSN assembles the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// ConnectDatabase opens the postgres connection. The GORM logger is kept
// silent; only errors reach the output.
func ConnectDatabase(cfg Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		stdlog.New(os.Stdout, "", stdlog.LstdFlags),
		logger.Config{
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return db, nil
}
