package config

import (
	"mesero_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "Mesero_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8081"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
				AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
				AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length", "Authorization"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
				MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
			},
			Storage: &structs.StorageConfig{
				Backend:  getEnvAsString("STORAGE_BACKEND", "postgres"),
				SeedDemo: getEnvAsBool("STORAGE_SEED_DEMO", true),
			},
			Database: &structs.DatabaseConfig{
				Host:        getEnvAsString("DB_HOST", "localhost"),
				Port:        getEnvAsInt("DB_PORT", 5432),
				User:        getEnvAsString("DB_USER", "postgres"),
				Password:    getEnvAsString("DB_PASSWORD", "password"),
				Name:        getEnvAsString("DB_NAME", "mesero_db"),
				SSLMode:     getEnvAsString("DB_SSL_MODE", "disable"),
				MaxConns:    getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:    getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime: getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime: getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
			},
			Cache: &structs.CacheConfig{
				Enabled:  getEnvAsBool("CACHE_ENABLED", false),
				Address:  getEnvAsString("CACHE_ADDRESS", "localhost:6379"),
				Username: getEnvAsString("CACHE_USERNAME", ""),
				Password: getEnvAsString("CACHE_PASSWORD", ""),
				DB:       getEnvAsInt("CACHE_DB", 0),
				TTL:      getEnvAsTimeDuration("CACHE_TTL", 5*time.Minute),
			},
			Auth: &structs.AuthConfig{
				AccessTokenSecret: getEnvAsString("AUTH_ACCESS_TOKEN_SECRET", "default_access_secret"),
				AccessTokenExpiry: getEnvAsTimeDuration("AUTH_ACCESS_TOKEN_EXPIRY", 12*time.Hour),
			},
			Email: &structs.EmailConfig{
				APIKey:     getEnvAsString("EMAIL_API_KEY", ""),
				From:       getEnvAsString("EMAIL_FROM", "Mesero <noreply@mesero.local>"),
				AdminEmail: getEnvAsString("EMAIL_ADMIN", ""),
			},
			Events: &structs.EventsConfig{
				URL:      getEnvAsString("EVENTS_AMQP_URL", ""),
				Exchange: getEnvAsString("EVENTS_EXCHANGE", "mesero.events"),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
