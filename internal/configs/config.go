package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	// URL is optional: when empty the application boots on the in-memory
	// store, which is the zero-configuration development default.
	URL string
}

type RESTConfig struct {
	Port string
}

type AdminConfig struct {
	Username string
	Password string
	Email    string
}

type UploadsConfig struct {
	Dir string
}

type SessionConfig struct {
	TTL time.Duration
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	AppName      string
	Database     DBConfig
	Rest         RESTConfig
	Admin        AdminConfig
	Uploads      UploadsConfig
	Session      SessionConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig reads the configuration from environment variables, loading a
// .env file first when one is present. A missing .env is not an error — the
// service must boot with no configuration at all.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: no .env file loaded (%v), using process environment", err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "aqar-service")
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	cfg.Rest.Port = getEnvAsString("PORT", "8080")

	cfg.Admin.Username = getEnvAsString("ADMIN_USERNAME", "admin")
	cfg.Admin.Password = getEnvAsString("ADMIN_PASSWORD", "admin123")
	cfg.Admin.Email = getEnvAsString("ADMIN_EMAIL", "admin@aqar.local")

	cfg.Uploads.Dir = getEnvAsString("UPLOAD_DIR", "public/uploads")

	sessionMinutes := getEnvAsInt("SESSION_TTL_MINUTES", 720)
	cfg.Session.TTL = time.Duration(sessionMinutes) * time.Minute

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
