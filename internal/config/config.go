package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config хранит настройку сервиса: TTL кеша, адрес HTTP-сервера,
// эндпоинт Nominatim и опциональный архив в Postgres.
type Config struct {
	HTTPAddr        string `json:"http_addr"`
	CacheTTLMinutes int    `json:"cache_ttl_minutes"`
	NominatimURL    string `json:"nominatim_url"`
	UserAgent       string `json:"user_agent"`
	DatabaseURL     string `json:"database_url"`
}

// Ключи провайдеров новостей передаются только через окружение,
// чтобы не попадать в конфиг-файл.
type ProviderKeys struct {
	NewsAPI    string
	GNews      string
	MediaStack string
	TheNewsAPI string
}

// Validate проверяет, что TTL не меньше минуты и NominatimURL — валидный URL.
func (cfg *Config) Validate() error {
	if cfg.CacheTTLMinutes < 1 {
		return errors.New("cache TTL must be ≥ 1 minute")
	}
	if cfg.HTTPAddr == "" {
		return errors.New("http_addr is required")
	}
	if _, err := url.ParseRequestURI(cfg.NominatimURL); err != nil {
		return fmt.Errorf("invalid nominatim URL: %s", cfg.NominatimURL)
	}
	return nil
}

// CacheTTL возвращает TTL кеша как time.Duration.
func (cfg *Config) CacheTTL() time.Duration {
	return time.Duration(cfg.CacheTTLMinutes) * time.Minute
}

// LoadConfig читает JSON-файл по пути path, декодирует его в Config
// и подставляет значения по умолчанию для незаполненных полей.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := Config{
		HTTPAddr:        ":8080",
		CacheTTLMinutes: 5,
		NominatimURL:    "https://nominatim.openstreetmap.org/search",
		UserAgent:       "Beacon News Globe (contact@example.com)",
	}
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// KeysFromEnv собирает ключи провайдеров из переменных окружения.
// Пустой ключ означает, что соответствующий адаптер не активен.
func KeysFromEnv() ProviderKeys {
	return ProviderKeys{
		NewsAPI:    os.Getenv("NEWSAPI_KEY"),
		GNews:      os.Getenv("GNEWS_KEY"),
		MediaStack: os.Getenv("MEDIASTACK_KEY"),
		TheNewsAPI: os.Getenv("THENEWSAPI_KEY"),
	}
}

// Any возвращает true, если настроен хотя бы один ключ провайдера.
func (k ProviderKeys) Any() bool {
	return k.NewsAPI != "" || k.GNews != "" || k.MediaStack != "" || k.TheNewsAPI != ""
}
