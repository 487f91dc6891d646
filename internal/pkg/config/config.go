package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/walletlogs/payment-relay/internal/pkg/models"
)

// InitConfig loads configuration from environment variables, optionally
// seeded from an env file when running locally (APP_ENV=local).
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if v.GetString("APP_ENV") == "" || v.GetString("APP_ENV") == "local" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	setDefaults(v)
	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "payment-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "1.0.0")

	v.SetDefault("SERVER_PORT", 3000)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("GATEWAY_BASE_URL", "https://sandbox.sslcommerz.com")
	v.SetDefault("GATEWAY_CALLBACK_BASE_URL", "http://localhost:3000")
	v.SetDefault("GATEWAY_SESSION_TIMEOUT", 10)
	v.SetDefault("GATEWAY_POLL_TIMEOUT", 5)

	v.SetDefault("STORE_DRIVER", "memory")
	v.SetDefault("STORE_TTL_SECONDS", 0)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// NewRelic config
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Gateway config
	configs.Gateway.BaseURL = v.GetString("GATEWAY_BASE_URL")
	configs.Gateway.StoreID = v.GetString("GATEWAY_STORE_ID")
	configs.Gateway.StorePassword = v.GetString("GATEWAY_STORE_PASSWORD")
	configs.Gateway.CallbackBaseURL = v.GetString("GATEWAY_CALLBACK_BASE_URL")
	configs.Gateway.SessionTimeout = v.GetInt("GATEWAY_SESSION_TIMEOUT")
	configs.Gateway.PollTimeout = v.GetInt("GATEWAY_POLL_TIMEOUT")

	// Store config
	configs.Store.Driver = v.GetString("STORE_DRIVER")
	configs.Store.TTLSeconds = v.GetInt("STORE_TTL_SECONDS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")

	return configs
}
