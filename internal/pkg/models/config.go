package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
	Gateway  GatewayConfig
	Store    StoreConfig
	Redis    RedisConfig
	NSQ      NSQConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	AppName     string
	LicenseKey  string
	ForwardLogs bool
}

// GatewayConfig contains SSLCommerz gateway configuration
type GatewayConfig struct {
	BaseURL         string
	StoreID         string
	StorePassword   string
	CallbackBaseURL string
	SessionTimeout  int // seconds, session creation and manual checks
	PollTimeout     int // seconds, verification on the status read path
}

// StoreConfig selects the transaction store backend
type StoreConfig struct {
	Driver     string // "memory" or "redis"
	TTLSeconds int    // redis only; 0 keeps records forever
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string // empty disables event publishing
}
