package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Breaker  BreakerConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration. An empty secret leaves the
// API unauthenticated.
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// BreakerConfig tunes the circuit breaker around the reward service
type BreakerConfig struct {
	FailureThreshold uint32
	TimeoutSeconds   int
	IntervalSeconds  int
	MaxRequests      uint32
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// A .env file is optional; real environments set variables directly
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(GetEnv("CONFIG_PATH", "."))
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", GetEnv("PORT", "8080"))
	viper.SetDefault("Server.AllowedHosts", GetEnvAsSlice("ALLOWED_HOSTS", ",", []string{"localhost:3000"}))
	viper.SetDefault("MongoDB.URI", GetEnv("MONGODB_URI", "mongodb://localhost:27017"))
	viper.SetDefault("MongoDB.Database", GetEnv("MONGODB_DATABASE", "rewards"))
	viper.SetDefault("JWT.Secret", GetEnv("JWT_SECRET", ""))
	viper.SetDefault("JWT.ExpiresIn", GetEnvAsInt("JWT_EXPIRES_IN", 24*60*60)) // 24 hours
	viper.SetDefault("Breaker.FailureThreshold", 5)
	viper.SetDefault("Breaker.TimeoutSeconds", 30)
	viper.SetDefault("Breaker.IntervalSeconds", 60)
	viper.SetDefault("Breaker.MaxRequests", 1)
	viper.SetDefault("LogLevel", GetEnv("LOG_LEVEL", "info"))
}
