package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"beacon/internal/models"
)

// Store — опциональный архив результатов конвейера в PostgreSQL.
// Используется только для статистики и истории; кеш и выдача от него
// не зависят.
type Store struct {
	Pool *pgxpool.Pool
}

// New создаёт пул соединений по connString и возвращает Store.
func New(ctx context.Context, connString string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %v", err)
	}
	return &Store{Pool: pool}, nil
}

// Close закрывает пул соединений.
func (s *Store) Close() {
	s.Pool.Close()
}

// Migrate создаёт таблицу архива, если её ещё нет.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS articles (
            id            TEXT PRIMARY KEY,
            headline      TEXT NOT NULL,
            summary       TEXT,
            content       TEXT,
            location_name TEXT NOT NULL,
            lat           DOUBLE PRECISION NOT NULL,
            lng           DOUBLE PRECISION NOT NULL,
            country       TEXT,
            region        TEXT,
            category      TEXT NOT NULL,
            published_at  TIMESTAMP WITH TIME ZONE NOT NULL,
            source        TEXT,
            image_url     TEXT,
            url           TEXT
        )
    `)
	return err
}

// SaveArticles сохраняет пачку статей одним батчем. Существующие записи
// обновляются: более полная версия той же статьи вытесняет раннюю.
func (s *Store) SaveArticles(ctx context.Context, articles []models.NewsArticle) error {
	batch := &pgx.Batch{}
	for _, a := range articles {
		batch.Queue(`
            INSERT INTO articles (id, headline, summary, content, location_name, lat, lng,
                                  country, region, category, published_at, source, image_url, url)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
            ON CONFLICT (id) DO UPDATE SET
                summary = EXCLUDED.summary,
                content = EXCLUDED.content,
                category = EXCLUDED.category
        `, a.ID, a.Headline, a.Summary, a.Content, a.Location.Name, a.Location.Lat,
			a.Location.Lng, a.Location.Country, a.Location.Region, string(a.Category),
			a.Timestamp, a.Source, a.ImageURL, a.URL)
	}
	return s.Pool.SendBatch(ctx, batch).Close()
}

// ArticleCount возвращает количество статей в архиве.
func (s *Store) ArticleCount(ctx context.Context) (int, error) {
	var count int
	err := s.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count)
	return count, err
}

// RecentArticles возвращает последние limit статей по дате публикации.
func (s *Store) RecentArticles(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	rows, err := s.Pool.Query(ctx, `
        SELECT id, headline, summary, content, location_name, lat, lng,
               country, region, category, published_at, source, image_url, url
        FROM articles
        ORDER BY published_at DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []models.NewsArticle
	for rows.Next() {
		var a models.NewsArticle
		var category string
		if err := rows.Scan(&a.ID, &a.Headline, &a.Summary, &a.Content,
			&a.Location.Name, &a.Location.Lat, &a.Location.Lng,
			&a.Location.Country, &a.Location.Region, &category,
			&a.Timestamp, &a.Source, &a.ImageURL, &a.URL); err != nil {
			return nil, err
		}
		a.Category = models.Category(category)
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
