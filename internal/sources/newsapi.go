package sources

import (
	"context"
	"net/http"
	"net/url"

	"beacon/internal/logger"
	"beacon/internal/models"
)

// NewsAPI адаптирует newsapi.org. Заголовки объединяют страновую ленту
// top-headlines со свежей лентой everything для большего покрытия.
type NewsAPI struct {
	Key     string
	BaseURL string
	Country string
	Client  *http.Client
}

func NewNewsAPI(key string) *NewsAPI {
	return &NewsAPI{
		Key:     key,
		BaseURL: "https://newsapi.org/v2",
		Country: "us",
		Client:  newHTTPClient(),
	}
}

func (s *NewsAPI) Name() string { return "NewsAPI" }

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

func (s *NewsAPI) FetchHeadlines(ctx context.Context) ([]models.RawArticle, error) {
	if s.Key == "" {
		return nil, ErrMissingKey
	}

	log := logger.Log.WithField("source", s.Name())
	var articles []models.RawArticle

	headlines, err := s.fetch(ctx, "/top-headlines", url.Values{
		"country":  {s.Country},
		"pageSize": {"30"},
	})
	if err != nil {
		log.Warnf("Top headlines fetch failed: %v", err)
	} else {
		articles = append(articles, headlines...)
	}

	recent, err2 := s.fetch(ctx, "/everything", url.Values{
		"q":        {"breaking OR news OR world OR politics OR economy"},
		"language": {"en"},
		"sortBy":   {"publishedAt"},
		"pageSize": {"30"},
	})
	if err2 != nil {
		log.Warnf("Everything feed fetch failed: %v", err2)
	} else {
		articles = append(articles, recent...)
	}

	if err != nil && err2 != nil {
		return nil, err
	}
	return articles, nil
}

// newsAPICategories сопоставляет внутренние рубрики фиксированному
// набору NewsAPI.
var newsAPICategories = map[models.Category]string{
	models.CategoryPolitics:        "general",
	models.CategoryConflict:        "general",
	models.CategoryEconomy:         "business",
	models.CategoryTechnology:      "technology",
	models.CategoryHealth:          "health",
	models.CategoryNaturalDisaster: "science",
}

func (s *NewsAPI) FetchByCategory(ctx context.Context, category models.Category) ([]models.RawArticle, error) {
	if s.Key == "" {
		return nil, ErrMissingKey
	}

	mapped, ok := newsAPICategories[category]
	if !ok {
		mapped = "general"
	}

	return s.fetch(ctx, "/top-headlines", url.Values{
		"country":  {s.Country},
		"category": {mapped},
		"pageSize": {"20"},
	})
}

func (s *NewsAPI) fetch(ctx context.Context, path string, params url.Values) ([]models.RawArticle, error) {
	params.Set("apiKey", s.Key)

	var resp newsAPIResponse
	if err := getJSON(ctx, s.Client, s.BaseURL+path+"?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Status != "ok" {
		return nil, nil
	}

	articles := make([]models.RawArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		// Удалённые статьи NewsAPI помечает заголовком "[Removed]".
		if a.Title == "" || a.Title == "[Removed]" {
			continue
		}
		articles = append(articles, models.RawArticle{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
			Author:      a.Author,
		})
	}
	return articles, nil
}
