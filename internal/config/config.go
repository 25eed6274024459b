package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory    = "memory"
	StorageFile      = "file"
	StorageMySQL     = "mysql"
	StoragePostgres  = "postgres"
	StorageFirestore = "firestore"
)

type Config struct {
	AppPort           string
	AppName           string
	TranslationFolder string

	StorageDriver    string
	StorageNamespace string
	SchemaVersion    string
	StorageFile      string
	SeedDemoUsers    bool

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbParams   string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirestoreCollection      string

	SessionSecret string
	SessionTTL    time.Duration

	TrustedProxies     []string
	CorsAllowedOrigins []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	driver := strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile))

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		AppName:           getEnv("APP_NAME", "taskdesk"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),

		StorageDriver:    driver,
		StorageNamespace: getEnv("STORAGE_NAMESPACE", "taskAppDay2"),
		SchemaVersion:    getEnv("STORAGE_SCHEMA_VERSION", "2.0"),
		StorageFile:      getEnv("STORAGE_FILE", "data/taskdesk.json"),
		SeedDemoUsers:    getBool("SEED_DEMO_USERS", true),

		DbHost:     getDbEnv(driver, "HOST", "db"),
		DbPort:     getDbEnv(driver, "PORT", defaultDbPort(driver)),
		DbUser:     getDbEnv(driver, "USER", "taskdesk"),
		DbPassword: getDbEnv(driver, "PASSWORD", "taskdesk"),
		DbName:     getDbEnv(driver, "DATABASE", "taskdesk"),
		DbParams:   getDbEnv(driver, "PARAMS", defaultDbParams(driver)),

		FirestoreProjectID:       os.Getenv("FIRESTORE_PROJECT_ID"),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirestoreCollection:      getEnv("FIRESTORE_COLLECTION", "kv_entries"),

		SessionSecret: getEnv("SESSION_SECRET", "taskdesk-dev-secret"),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),

		TrustedProxies:     parseList(os.Getenv("TRUSTED_PROXIES")),
		CorsAllowedOrigins: parseList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getDbEnv reads MYSQL_* or POSTGRES_* depending on the storage driver.
func getDbEnv(driver, suffix, fallback string) string {
	prefix := "MYSQL_"
	if driver == StoragePostgres {
		prefix = "POSTGRES_"
	}
	return getEnv(prefix+suffix, fallback)
}

func defaultDbPort(driver string) string {
	if driver == StoragePostgres {
		return "5432"
	}
	return "3306"
}

func defaultDbParams(driver string) string {
	if driver == StoragePostgres {
		return "sslmode=disable"
	}
	return "parseTime=true"
}

func getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
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
