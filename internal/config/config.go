package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	JWT       JWTConfig
	Pricing   PricingConfig
	Listing   ListingConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type JWTConfig struct {
	Secret       string
	AccessExpiry int // in minutes
}

// PricingConfig holds the order-summary knobs. The defaults reproduce
// the marketplace rules: free delivery above 1000, otherwise a flat 50
// fee, and a 5% tax on the subtotal.
type PricingConfig struct {
	FreeDeliveryThreshold float64
	DeliveryFee           float64
	TaxRate               float64
}

type ListingConfig struct {
	MaxImageBytes int64
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerWindow int
	Window            time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func Load() *Config {
	// A local .env is optional; the environment always wins.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("JWT_SECRET", "dev-only-secret")
	viper.SetDefault("JWT_ACCESS_EXPIRY", 60)
	viper.SetDefault("PRICING_FREE_DELIVERY_THRESHOLD", 1000.0)
	viper.SetDefault("PRICING_DELIVERY_FEE", 50.0)
	viper.SetDefault("PRICING_TAX_RATE", 0.05)
	viper.SetDefault("LISTING_MAX_IMAGE_BYTES", 5*1024*1024)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: viper.GetInt("JWT_ACCESS_EXPIRY"),
		},
		Pricing: PricingConfig{
			FreeDeliveryThreshold: viper.GetFloat64("PRICING_FREE_DELIVERY_THRESHOLD"),
			DeliveryFee:           viper.GetFloat64("PRICING_DELIVERY_FEE"),
			TaxRate:               viper.GetFloat64("PRICING_TAX_RATE"),
		},
		Listing: ListingConfig{
			MaxImageBytes: viper.GetInt64("LISTING_MAX_IMAGE_BYTES"),
		},
		RateLimit: RateLimitConfig{
			Enabled:           viper.GetBool("RATE_LIMIT_ENABLED"),
			RequestsPerWindow: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Window:            time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
	}
}
