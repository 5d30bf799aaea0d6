package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string
	CORSOrigins    []string

	// ArchiveDelayDays < 0 disables automatic archival; 0 archives tasks the
	// moment they complete.
	ArchiveDelayDays int
	ReminderLeadDays int

	EmailAPIURL string
	EmailAPIKey string
	EmailSender string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		DbHost:           getEnv("MYSQL_HOST", "db"),
		DbPort:           getEnv("MYSQL_PORT", "3306"),
		DbUser:           getEnv("MYSQL_USER", "trymax"),
		DbPassword:       getEnv("MYSQL_PASSWORD", "trymax"),
		DbName:           getEnv("MYSQL_DATABASE", "trymax"),
		DbParams:         getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies:   splitList(os.Getenv("TRUSTED_PROXIES")),
		CORSOrigins:      splitList(os.Getenv("CORS_ORIGINS")),
		ArchiveDelayDays: getEnvInt("ARCHIVE_DELAY_DAYS", -1),
		ReminderLeadDays: getEnvInt("REMINDER_LEAD_DAYS", domain.DefaultReminderLeadDays),
		EmailAPIURL:      os.Getenv("EMAIL_API_URL"),
		EmailAPIKey:      os.Getenv("EMAIL_API_KEY"),
		EmailSender:      getEnv("EMAIL_SENDER", "no-reply@trymax.cloud"),
	}
}

// ArchivePolicy translates the configured delay into the domain policy.
func (c *Config) ArchivePolicy() domain.ArchivePolicy {
	if c.ArchiveDelayDays < 0 {
		return domain.ArchivePolicy{}
	}
	return domain.ArchivePolicy{
		Enabled: true,
		Delay:   time.Duration(c.ArchiveDelayDays) * 24 * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
