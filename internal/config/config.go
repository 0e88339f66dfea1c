package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// Storage
	DataDir   string `mapstructure:"DATA_DIR"`
	ImagesDir string `mapstructure:"IMAGES_DIR"`

	// Name generation
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("IMAGES_DIR", "public/images")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")

	// Keys without a default must be bound explicitly: AutomaticEnv only
	// surfaces keys viper already knows about when unmarshalling.
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("GEMINI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
}
