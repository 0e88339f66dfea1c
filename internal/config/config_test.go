package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromProcessEnv(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env file present
	t.Setenv("GEMINI_API_KEY", "env-secret")
	t.Setenv("FRONTEND_URL", "https://example.com")

	LoadConfig()

	assert.Equal(t, "env-secret", AppConfig.GeminiAPIKey)
	assert.Equal(t, "https://example.com", AppConfig.FrontendURL)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.Port)
	assert.Equal(t, "data", AppConfig.DataDir)
	assert.Equal(t, "public/images", AppConfig.ImagesDir)
	assert.Equal(t, "gemini-2.0-flash", AppConfig.GeminiModel)
}
