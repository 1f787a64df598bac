package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Corpus CorpusConfig
	Speech SpeechConfig
}

type AppConfig struct {
	BindHost           string
	BindPort           string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	WSToken            string
}

type CorpusConfig struct {
	Dir string
}

type SpeechConfig struct {
	VoskModelDir string
	TTSBaseURL   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			BindHost:           getEnv("BIND_HOST", "0.0.0.0"),
			BindPort:           getEnv("BIND_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			WSToken:            getEnv("WS_TOKEN", "a07933d5d5a65193b39d8bfbbe46863b827854d3c1fa136d3f840f63618400af"),
		},
		Corpus: CorpusConfig{
			Dir: getEnv("CARRERAS_DIR", "./data/carreras"),
		},
		Speech: SpeechConfig{
			VoskModelDir: getEnv("VOSK_MODEL_DIR", "./data/models/vosk-model-small-es-0.42"),
			TTSBaseURL:   getEnv("TTS_BASE_URL", "http://localhost:5002"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
