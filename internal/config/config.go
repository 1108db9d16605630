package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config is assembled from environment variables (and an optional config
// file pointed at by CONFIG_FILE).
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	Port string
	// BaseURL is the public URL verification/reset links are built
	// against.
	BaseURL string
}

type DatabaseConfig struct {
	// URL is the Postgres connection string. Empty selects the in-memory
	// store.
	URL string
}

type RedisConfig struct {
	// URL enables the Asynq email queue when set.
	URL string
}

type AuthConfig struct {
	BcryptCost int
	SessionTTL time.Duration
	ResetTTL   time.Duration
	// RequireVerification blocks login for accounts that have not
	// confirmed their email.
	RequireVerification bool
}

type CatalogConfig struct {
	// GameIDs is the curated Steam app ID pool.
	GameIDs []int
}

// Load reads configuration with sane development defaults.
func Load() (*Config, error) {
	viper.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		viper.SetConfigFile(p)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			BaseURL: getEnvOrDefault("BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			URL: viper.GetString("DATABASE_URL"),
		},
		Redis: RedisConfig{
			URL: viper.GetString("REDIS_URL"),
		},
		Auth: AuthConfig{
			BcryptCost:          viper.GetInt("BCRYPT_COST"),
			SessionTTL:          viper.GetDuration("SESSION_TTL"),
			ResetTTL:            viper.GetDuration("RESET_TOKEN_TTL"),
			RequireVerification: viper.GetBool("REQUIRE_VERIFICATION"),
		},
		Catalog: CatalogConfig{
			GameIDs: viper.GetIntSlice("GAME_IDS"),
		},
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 12
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = 7 * 24 * time.Hour
	}
	if cfg.Auth.ResetTTL <= 0 {
		cfg.Auth.ResetTTL = time.Hour
	}
	if len(cfg.Catalog.GameIDs) == 0 {
		cfg.Catalog.GameIDs = defaultGameIDs()
	}
	return cfg, nil
}

// defaultGameIDs is the out-of-the-box catalog pool, a spread of genres
// and price points.
func defaultGameIDs() []int {
	return []int{
		570,     // Dota 2
		730,     // Counter-Strike 2
		440,     // Team Fortress 2
		1086940, // Baldur's Gate 3
		1245620, // Elden Ring
		292030,  // The Witcher 3
		1091500, // Cyberpunk 2077
		413150,  // Stardew Valley
		105600,  // Terraria
		648800,  // Raft
		1145360, // Hades
		962130,  // Grounded
	}
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
