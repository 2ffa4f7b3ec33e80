// Package config загружает конфигурацию сервиса из окружения.
//
// Источники (по убыванию приоритета): переменные окружения, .env файл
// (через godotenv), значения по умолчанию. Отсутствие API-ключа не
// является фатальной ошибкой — соответствующая модель деградирует
// до error-ответа на уровне API.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Значения по умолчанию.
const (
	DefaultBeatovenURL = "https://api.beatoven.ai"
	DefaultAPIPort     = "8000"
	DefaultRegistryTTL = time.Hour
	DefaultJanitorCron = "*/5 * * * *"
)

// TestModeKey — специальное значение BEATOVEN_API_KEY,
// переводящее провайдера в режим mock-ответов.
const TestModeKey = "TEST_MODE"

// Config — конфигурация сервиса.
type Config struct {
	// API-ключи внешних провайдеров.
	OpenAIAPIKey   string
	GoogleAPIKey   string
	BeatovenAPIKey string

	// BeatovenAPIURL — базовый URL провайдера композиции.
	BeatovenAPIURL string

	// APIHost, APIPort — адрес HTTP-сервера.
	APIHost string
	APIPort string

	// RegistryTTL — время жизни записи в in-memory реестре генераций.
	RegistryTTL time.Duration

	// JanitorCron — cron-выражение для очистки реестра.
	JanitorCron string
}

// Load читает конфигурацию из окружения.
// .env файл подхватывается, если присутствует.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		BeatovenAPIKey: os.Getenv("BEATOVEN_API_KEY"),
		BeatovenAPIURL: firstNonEmpty(os.Getenv("BEATOVEN_API_URL"), DefaultBeatovenURL),
		APIHost:        os.Getenv("API_HOST"),
		APIPort:        firstNonEmpty(os.Getenv("API_PORT"), DefaultAPIPort),
		RegistryTTL:    durationFromEnv("REGISTRY_TTL_SEC", DefaultRegistryTTL),
		JanitorCron:    firstNonEmpty(os.Getenv("REGISTRY_JANITOR_CRON"), DefaultJanitorCron),
	}
}

// TestMode возвращает true, если провайдер работает в режиме mock-ответов.
func (c Config) TestMode() bool {
	return c.BeatovenAPIKey == TestModeKey
}

// Addr возвращает адрес для http.Server.
func (c Config) Addr() string {
	return c.APIHost + ":" + c.APIPort
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func durationFromEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	sec, err := strconv.Atoi(v)
	if err != nil || sec <= 0 {
		return def
	}
	return time.Duration(sec) * time.Second
}
