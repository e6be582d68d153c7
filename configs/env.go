package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName   string
	OpenWeatherAPIKey string
}

var Env *EnvConfig

func init() {
	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:   getStringOrDefault("APPLICATION_NAME", "go-weather"),
		OpenWeatherAPIKey: viper.GetString("OPENWEATHER_API_KEY"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
