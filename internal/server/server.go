package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"beacon/internal/cache"
	"beacon/internal/config"
	"beacon/internal/gazetteer"
	"beacon/internal/logger"
	"beacon/internal/models"
	"beacon/internal/store"
)

// CategoryFetcher — срез конвейера, нужный обработчику рубрик.
type CategoryFetcher interface {
	FetchByCategory(ctx context.Context, category models.Category) ([]models.NewsArticle, error)
}

// Server хранит зависимости HTTP-обработчиков: кеш новостей, конвейер,
// газеттир и опциональный архив.
type Server struct {
	cache    *cache.Cache
	pipeline CategoryFetcher
	gaz      *gazetteer.Gazetteer
	keys     config.ProviderKeys
	store    *store.Store
}

// NewServer создаёт Server. store может быть nil — тогда блок статистики
// в ответах отсутствует.
func NewServer(c *cache.Cache, p CategoryFetcher, g *gazetteer.Gazetteer, keys config.ProviderKeys, st *store.Store) *Server {
	return &Server{cache: c, pipeline: p, gaz: g, keys: keys, store: st}
}

// Router собирает chi-маршрутизатор со всеми эндпоинтами сервиса.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	r.Get("/health", s.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/news", s.GetNews)
		r.Post("/news/refresh", s.RefreshNews)
		r.Get("/news/category/{category}", s.GetNewsByCategory)
		r.Get("/points", s.GetPoints)
	})

	return r
}

// Health отвечает 200 OK; при настроенном архиве дополнительно
// проверяет доступность базы.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Pool.Ping(r.Context()); err != nil {
			http.Error(w, "DB unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.Write([]byte("OK"))
}

type newsResponse struct {
	Articles []models.NewsArticle `json:"articles"`
	CacheAge int64                `json:"cacheAge"`
	IsStale  bool                 `json:"isStale"`
	Stats    *statsBlock          `json:"stats,omitempty"`
}

type statsBlock struct {
	TotalArticles int `json:"totalArticles"`
}

// GetNews возвращает кешированный список новостей; ?refresh=true
// принудительно запускает конвейер. Ошибок наружу не бывает: выдаётся
// либо свежий, либо устаревший кеш.
func (s *Server) GetNews(w http.ResponseWriter, r *http.Request) {
	forceRefresh := r.URL.Query().Get("refresh") == "true"

	articles := s.cache.Get(r.Context(), forceRefresh)
	if articles == nil {
		articles = []models.NewsArticle{}
	}

	resp := newsResponse{
		Articles: articles,
		CacheAge: s.cache.Age().Milliseconds(),
		IsStale:  s.cache.Stale(),
	}

	if s.store != nil {
		if count, err := s.store.ArticleCount(r.Context()); err == nil {
			resp.Stats = &statsBlock{TotalArticles: count}
		} else {
			logger.Log.Warnf("Article count failed: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// RefreshNews принудительно обновляет кеш. Без единого настроенного
// ключа провайдера возвращает 400: обновлять нечем.
func (s *Server) RefreshNews(w http.ResponseWriter, r *http.Request) {
	if !s.keys.Any() {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "no provider API keys configured",
		})
		return
	}

	articles := s.cache.Get(r.Context(), true)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"articleCount": len(articles),
		"cacheAge":     s.cache.Age().Milliseconds(),
	})
}

// GetNewsByCategory запускает рубричную выборку мимо кеша.
func (s *Server) GetNewsByCategory(w http.ResponseWriter, r *http.Request) {
	category := models.Category(chi.URLParam(r, "category"))

	valid := false
	for _, c := range models.Categories {
		if c == category {
			valid = true
			break
		}
	}
	if !valid {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}

	articles, err := s.pipeline.FetchByCategory(r.Context(), category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if articles == nil {
		articles = []models.NewsArticle{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
}

type geoPoint struct {
	ID     string  `json:"id"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Name   string  `json:"name"`
	Region string  `json:"region"`
}

// GetPoints отдаёт базовый набор точек глобуса: крупные города газеттира.
func (s *Server) GetPoints(w http.ResponseWriter, r *http.Request) {
	cities := s.gaz.CitiesWithNews()

	points := make([]geoPoint, 0, len(cities))
	for _, c := range cities {
		points = append(points, geoPoint{
			ID:     c.NameNormalized,
			Lat:    c.Lat,
			Lng:    c.Lng,
			Name:   c.Name,
			Region: c.Region,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"points": points})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorf("Failed to encode response: %v", err)
	}
}
