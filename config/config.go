package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBPath          string
	SoilAPIURL      string
	WeatherAPIURL   string
	ElevationAPIURL string
	PredictEndpoint string
	PredictAPIKey   string
	PriceTablePath  string
	LogMode         string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "Asia/Kolkata"),
		DBPath:          get("DB_PATH", "raitha.db"),
		SoilAPIURL:      get("SOIL_API_URL", ""),
		WeatherAPIURL:   get("WEATHER_API_URL", ""),
		ElevationAPIURL: get("ELEVATION_API_URL", ""),
		PredictEndpoint: get("PREDICT_ENDPOINT", ""),
		PredictAPIKey:   get("PREDICT_API_KEY", ""),
		PriceTablePath:  get("PRICE_TABLE_PATH", ""),
		LogMode:         get("LOG_MODE", "dev"),
	}
	log.Printf("[cfg] port=%s db=%s predict=%q prices=%q", cfg.Port, cfg.DBPath, cfg.PredictEndpoint, cfg.PriceTablePath)
	return cfg
}
