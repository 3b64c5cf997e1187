package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"beacon/internal/models"
)

// ErrMissingKey возвращается адаптером, у которого не настроен ключ
// провайдера. Для конвейера это обычный сбой адаптера: провайдер даёт
// ноль статей.
var ErrMissingKey = errors.New("provider API key is not configured")

// Source — один провайдер новостей. Реализация сама строит запросы,
// валидирует ответы и переводит их в RawArticle.
type Source interface {
	Name() string
	FetchHeadlines(ctx context.Context) ([]models.RawArticle, error)
}

// CategoryFetcher реализуют провайдеры с рубричными эндпоинтами.
type CategoryFetcher interface {
	Source
	FetchByCategory(ctx context.Context, category models.Category) ([]models.RawArticle, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// getJSON выполняет GET и декодирует JSON-тело в out. Не-2xx ответы —
// ошибки.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
