package cache

import (
	"context"
	"sync"
	"time"

	"beacon/internal/logger"
	"beacon/internal/metrics"
	"beacon/internal/models"
)

// FetchFunc выдаёт свежий список статей, обычно полный прогон конвейера.
type FetchFunc func(ctx context.Context) ([]models.NewsArticle, error)

// Cache хранит последний успешный результат конвейера. Контракт перед
// слоем API: всегда возвращать какой-то список — свежий, устаревший или
// пустой на холодном старте — и никогда ошибку. Замена — одно
// присваивание под мьютексом; параллельные обновления могут запустить
// fetch каждое своё (без single-flight).
type Cache struct {
	fetch FetchFunc
	ttl   time.Duration

	mu        sync.Mutex
	articles  []models.NewsArticle
	fetchedAt time.Time
	onRefresh func([]models.NewsArticle)
}

func New(fetch FetchFunc, ttl time.Duration) *Cache {
	return &Cache{fetch: fetch, ttl: ttl}
}

// OnRefresh регистрирует хук, вызываемый с каждым свежим непустым
// результатом после замены кеша. Используется архивом в Postgres.
func (c *Cache) OnRefresh(fn func([]models.NewsArticle)) {
	c.mu.Lock()
	c.onRefresh = fn
	c.mu.Unlock()
}

// Get возвращает кешированные статьи, предварительно обновив их при
// force или истёкшем TTL. Неудачное или пустое обновление не трогает
// прежнее содержимое; вызывающий всегда получает текущий кеш.
// Обновление идёт на отвязанном контексте: ушедший клиент не должен
// прерывать прогон, который прогреет кеш для всех следующих.
func (c *Cache) Get(ctx context.Context, forceRefresh bool) []models.NewsArticle {
	c.mu.Lock()
	fresh := len(c.articles) > 0 && time.Since(c.fetchedAt) < c.ttl
	if !forceRefresh && fresh {
		articles := c.articles
		c.mu.Unlock()
		metrics.CacheRequests.WithLabelValues("hit").Inc()
		return articles
	}
	c.mu.Unlock()

	metrics.CacheRequests.WithLabelValues("refresh").Inc()
	articles, err := c.fetch(context.WithoutCancel(ctx))

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case err != nil:
		// Продолжаем отдавать что есть, не поднимая сбой наружу.
		logger.Log.Errorf("News refresh failed: %v", err)
		metrics.CacheRequests.WithLabelValues("stale").Inc()
	case len(articles) == 0:
		// Пустая выборка никогда не затирает хорошие данные.
		logger.Log.Warn("News refresh returned no articles, keeping cache")
	default:
		c.articles = articles
		c.fetchedAt = time.Now()
		if c.onRefresh != nil {
			go c.onRefresh(articles)
		}
	}

	return c.articles
}

// Age сообщает время с последнего успешного обновления. До первого
// оно отсчитывается от нулевого времени и абсурдно велико.
func (c *Cache) Age() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Since(c.fetchedAt)
}

// Stale сообщает, пережил ли кеш свой TTL.
func (c *Cache) Stale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Since(c.fetchedAt) > c.ttl
}
