package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	// External booking/payment API.
	BookingAPIURL     string `mapstructure:"BOOKING_API_URL"`
	BookingAPITimeout int    `mapstructure:"BOOKING_API_TIMEOUT"`

	// Where the payment gateway sends the guest back after checkout.
	PaymentReturnURL string `mapstructure:"PAYMENT_RETURN_URL"`

	// MySQL (room display metadata).
	MySQLURL string `mapstructure:"MYSQL_URL"`
	DBUser   string `mapstructure:"DB_USER"`
	DBPass   string `mapstructure:"DB_PASS"`
	DBHost   string `mapstructure:"DB_HOST"`
	DBPort   string `mapstructure:"DB_PORT"`
	DBName   string `mapstructure:"DB_NAME"`

	// Redis configuration (room-catalog cache).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RoomCacheTTL  int    `mapstructure:"ROOM_CACHE_TTL"`

	// Inbox for the "travelling with children" inquiry form.
	InquiryEmail string `mapstructure:"INQUIRY_EMAIL"`

	CorsOrigins string `mapstructure:"CORS_ORIGINS"`
}

var AppConfig Config

func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("BOOKING_API_URL", "http://localhost:9000")
	viper.SetDefault("BOOKING_API_TIMEOUT", 30)
	viper.SetDefault("PAYMENT_RETURN_URL", "http://localhost:3000/booking/confirmation")
	viper.SetDefault("DB_USER", "root")
	viper.SetDefault("DB_PASS", "")
	viper.SetDefault("DB_HOST", "127.0.0.1")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_NAME", "resort_db")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("ROOM_CACHE_TTL", 600)
	viper.SetDefault("INQUIRY_EMAIL", "reservations@resort.local")
	viper.SetDefault("CORS_ORIGINS", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// BookingAPITimeoutDuration returns the API client timeout with a sane floor.
func BookingAPITimeoutDuration() time.Duration {
	secs := AppConfig.BookingAPITimeout
	if secs <= 0 {
		secs = 30
	}
	return time.Duration(secs) * time.Second
}

// RoomCacheTTLDuration returns how long the room-types feed may be cached.
func RoomCacheTTLDuration() time.Duration {
	secs := AppConfig.RoomCacheTTL
	if secs <= 0 {
		secs = 600
	}
	return time.Duration(secs) * time.Second
}

// CorsOriginList splits CORS_ORIGINS into a cleaned slice, "*" when unset.
func CorsOriginList() []string {
	raw := strings.TrimSpace(AppConfig.CorsOrigins)
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
