package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment   string `mapstructure:"ENVIRONMENT"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	DBSource      string `mapstructure:"DB_SOURCE"`

	NominatimURL   string        `mapstructure:"NOMINATIM_URL"`
	OverpassURL    string        `mapstructure:"OVERPASS_URL"`
	UserAgent      string        `mapstructure:"USER_AGENT"`
	GeocodeTimeout time.Duration `mapstructure:"GEOCODE_TIMEOUT"`
	POITimeout     time.Duration `mapstructure:"POI_TIMEOUT"`

	InvidiousInstances []string      `mapstructure:"INVIDIOUS_INSTANCES"`
	VideoTimeout       time.Duration `mapstructure:"VIDEO_TIMEOUT"`

	AccountsFile string   `mapstructure:"ACCOUNTS_FILE"`
	StaticDir    string   `mapstructure:"STATIC_DIR"`
	CORSOrigins  []string `mapstructure:"CORS_ORIGINS"`
}

var defaults = map[string]any{
	"ENVIRONMENT":         "development",
	"SERVER_ADDRESS":      "0.0.0.0:5000",
	"LOG_LEVEL":           "info",
	"DB_SOURCE":           "",
	"NOMINATIM_URL":       "https://nominatim.openstreetmap.org",
	"OVERPASS_URL":        "https://overpass-api.de/api/interpreter",
	"USER_AGENT":          "TravelMapAPI/1.0",
	"GEOCODE_TIMEOUT":     10 * time.Second,
	"POI_TIMEOUT":         20 * time.Second,
	"INVIDIOUS_INSTANCES": []string{"https://invidious.io", "https://y.com.sb", "https://invidious.xamh.de"},
	"VIDEO_TIMEOUT":       10 * time.Second,
	"ACCOUNTS_FILE":       "UserAccount.json",
	"STATIC_DIR":          "",
	"CORS_ORIGINS":        []string{"*"},
}

// LoadConfig reads configuration from app.env in path, then from environment variables.
// A missing app.env is not an error; defaults and the environment still apply.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
	}

	err = v.Unmarshal(&config)
	return config, err
}
