package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Environment holds the settings the service reads from the process environment
type Environment struct {
	Port           string
	DBDriver       string
	DBURL          string
	AllowedOrigins []string
	JWTSecret      string
	SeedCategories bool
	DBLogLevel     string
}

func defaultDBURL(driver string) string {
	switch driver {
	case "sqlite":
		return "trivia.db"
	case "mysql":
		return "root@tcp(localhost:3306)/trivia?charset=utf8mb4&parseTime=True&loc=Local"
	default:
		return "postgres://localhost:5432/trivia"
	}
}

// Load reads the environment through viper, applying defaults for anything unset.
func Load() Environment {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SEED_CATEGORIES", true)
	v.SetDefault("DB_LOG_LEVEL", "warn")

	driver := strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER")))
	v.SetDefault("DB_URL", defaultDBURL(driver))

	var origins []string
	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return Environment{
		Port:           v.GetString("PORT"),
		DBDriver:       driver,
		DBURL:          v.GetString("DB_URL"),
		AllowedOrigins: origins,
		JWTSecret:      v.GetString("JWT_SECRET_KEY"),
		SeedCategories: v.GetBool("SEED_CATEGORIES"),
		DBLogLevel:     strings.ToLower(v.GetString("DB_LOG_LEVEL")),
	}
}
