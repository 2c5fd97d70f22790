package structs

import "time"

type Config struct {
	Server   *ServerConfig
	Cors     *CorsConfig
	Storage  *StorageConfig
	Database *DatabaseConfig
	Cache    *CacheConfig
	Auth     *AuthConfig
	Email    *EmailConfig
	Events   *EventsConfig
}

type ServerConfig struct {
	AppName        string
	Environment    string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// StorageConfig selects the backend behind the store interfaces: "postgres"
// or "memory". The memory backend can be seeded with demo data for local work.
type StorageConfig struct {
	Backend  string
	SeedDemo bool
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxLifetime time.Duration
	MaxIdleTime time.Duration
}

type CacheConfig struct {
	Enabled  bool
	Address  string
	Username string
	Password string
	DB       int
	TTL      time.Duration
}

type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
}

type EmailConfig struct {
	APIKey     string
	From       string
	AdminEmail string
}

type EventsConfig struct {
	URL      string
	Exchange string
}
