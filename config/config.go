// Package config loads environment-based settings, with an optional
// .env file for development.
package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	ReferenceZone string        `mapstructure:"REFERENCE_ZONE"` // zone the tracklog clocks are reported in
	PrayerMethod  string        `mapstructure:"PRAYER_METHOD"`
	RedisURL      string        `mapstructure:"REDIS_URL"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
	Debug         bool          `mapstructure:"DEBUG"`
}

func Load() (c Config, err error) {
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("REFERENCE_ZONE", "US/Eastern")
	viper.SetDefault("PRAYER_METHOD", "MWL")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CACHE_TTL", 6*time.Hour)
	viper.SetDefault("DEBUG", false)

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// A missing .env is fine; environment variables still apply.
	_ = viper.ReadInConfig()

	err = viper.Unmarshal(&c)
	return
}
