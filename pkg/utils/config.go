package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Facility FacilityConfig
	Payment  PaymentConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

// FacilityConfig is the operating-hours table, in whole 24-hour clock hours.
type FacilityConfig struct {
	WeekdayOpenHour  int
	WeekdayCloseHour int
	SundayOpenHour   int
	SundayCloseHour  int
}

// PaymentConfig points at the checkout/billing provider.
type PaymentConfig struct {
	BaseURL        string
	SecretKey      string
	SuccessURL     string
	CancelURL      string
	TimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_TTL_SECONDS", 30)
	viper.SetDefault("WEEKDAY_OPEN_HOUR", 6)
	viper.SetDefault("WEEKDAY_CLOSE_HOUR", 23)
	viper.SetDefault("SUNDAY_OPEN_HOUR", 9)
	viper.SetDefault("SUNDAY_CLOSE_HOUR", 20)
	viper.SetDefault("PAYMENT_TIMEOUT_SECONDS", 10)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:       viper.GetString("REDIS_ADDR"),
			Password:   viper.GetString("REDIS_PASS"),
			DB:         viper.GetInt("REDIS_DB"),
			TTLSeconds: viper.GetInt("REDIS_TTL_SECONDS"),
		},
		Facility: FacilityConfig{
			WeekdayOpenHour:  viper.GetInt("WEEKDAY_OPEN_HOUR"),
			WeekdayCloseHour: viper.GetInt("WEEKDAY_CLOSE_HOUR"),
			SundayOpenHour:   viper.GetInt("SUNDAY_OPEN_HOUR"),
			SundayCloseHour:  viper.GetInt("SUNDAY_CLOSE_HOUR"),
		},
		Payment: PaymentConfig{
			BaseURL:        viper.GetString("PAYMENT_BASE_URL"),
			SecretKey:      viper.GetString("PAYMENT_SECRET_KEY"),
			SuccessURL:     viper.GetString("PAYMENT_SUCCESS_URL"),
			CancelURL:      viper.GetString("PAYMENT_CANCEL_URL"),
			TimeoutSeconds: viper.GetInt("PAYMENT_TIMEOUT_SECONDS"),
		},
	}

	return config, nil
}
