package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort       string  `mapstructure:"SERVER_PORT"`
	RedisAddr        string  `mapstructure:"REDIS_ADDR"`
	RedisPassword    string  `mapstructure:"REDIS_PASSWORD"`
	OnTrailRadiusM   float64 `mapstructure:"ON_TRAIL_RADIUS_M"`
	NearTrailRadiusM float64 `mapstructure:"NEAR_TRAIL_RADIUS_M"`
	MaxTrackBytes    int     `mapstructure:"MAX_TRACK_BYTES"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("ON_TRAIL_RADIUS_M", 50.0)
	viper.SetDefault("NEAR_TRAIL_RADIUS_M", 200.0)
	viper.SetDefault("MAX_TRACK_BYTES", 8<<20)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
