package configs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

type Config struct {
	Port string

	DatabaseDSN     string
	DBSlowThreshold time.Duration
	DBLogLevel      gormLogger.LogLevel

	JWTSecret         string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	CORSOrigins    string
	RateLimitMax   int
	RequestTimeout time.Duration
	LogTimezone    string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env tidak ditemukan, menggunakan ENV dari sistem")
	} else {
		log.Println("[INFO] .env file berhasil dimuat")
	}
}

// Load reads the process environment (after LoadEnv) into a Config.
func Load() Config {
	return Config{
		Port:              GetEnv("PORT", "3000"),
		DatabaseDSN:       databaseDSN(),
		DBSlowThreshold:   getDuration("DB_SLOW_THRESHOLD", 200*time.Millisecond),
		DBLogLevel:        parseLogLevel(GetEnv("DB_LOG_LEVEL", "warn")),
		JWTSecret:         GetEnv("JWT_SECRET"),
		AdminUsername:     GetEnv("ADMIN_USERNAME"),
		AdminPassword:     GetEnv("ADMIN_PASSWORD"),
		AdminPasswordHash: GetEnv("ADMIN_PASSWORD_HASH"),
		CORSOrigins:       GetEnv("CORS_ORIGINS", "*"),
		RateLimitMax:      getInt("RATE_LIMIT_MAX", 100),
		RequestTimeout:    getDuration("REQUEST_TIMEOUT", 5*time.Second),
		LogTimezone:       GetEnv("LOG_TIMEZONE", "Asia/Jerusalem"),
	}
}

// Validate reports every missing required setting at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET belum diset"))
	}
	if strings.TrimSpace(c.AdminUsername) == "" {
		errs = append(errs, errors.New("ADMIN_USERNAME belum diset"))
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD atau ADMIN_PASSWORD_HASH belum diset"))
	}
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		errs = append(errs, errors.New("DB_DSN atau DB_HOST/DB_NAME belum diset"))
	}
	return errors.Join(errs...)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func databaseDSN() string {
	if dsn := strings.TrimSpace(GetEnv("DB_DSN")); dsn != "" {
		return dsn
	}
	host, name := GetEnv("DB_HOST"), GetEnv("DB_NAME")
	if host == "" || name == "" {
		return ""
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=dancestudio&options=-c statement_timeout=3000",
		GetEnv("DB_USER"),
		GetEnv("DB_PASSWORD"),
		host,
		GetEnv("DB_PORT", "5432"),
		name,
		GetEnv("DB_SSLMODE", "disable"),
	)
}

func getInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[WARN] %s=%q bukan angka, pakai default %d", key, v, def)
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("[WARN] %s=%q bukan durasi, pakai default %s", key, v, def)
	}
	return def
}

func parseLogLevel(s string) gormLogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(cfg Config) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: cfg.DBSlowThreshold,
		LogLevel:      cfg.DBLogLevel,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error && !errors.Is(err, gormLogger.ErrRecordNotFound):
		sql, rows := fc()
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		sql, rows := fc()
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		sql, rows := fc()
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
