package sources

import (
	"context"
	"net/http"
	"net/url"

	"beacon/internal/models"
)

// GNews адаптирует gnews.io.
type GNews struct {
	Key     string
	BaseURL string
	Country string
	Client  *http.Client
}

func NewGNews(key string) *GNews {
	return &GNews{
		Key:     key,
		BaseURL: "https://gnews.io/api/v4",
		Country: "us",
		Client:  newHTTPClient(),
	}
}

func (s *GNews) Name() string { return "GNews" }

type gnewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

type gnewsResponse struct {
	Articles []gnewsArticle `json:"articles"`
}

func (s *GNews) FetchHeadlines(ctx context.Context) ([]models.RawArticle, error) {
	if s.Key == "" {
		return nil, ErrMissingKey
	}

	return s.fetch(ctx, url.Values{
		"country": {s.Country},
		"max":     {"50"},
		"lang":    {"en"},
	})
}

// gnewsTopics сопоставляет внутренние рубрики темам GNews.
var gnewsTopics = map[models.Category]string{
	models.CategoryPolitics:        "nation",
	models.CategoryConflict:        "world",
	models.CategoryEconomy:         "business",
	models.CategoryTechnology:      "technology",
	models.CategoryHealth:          "health",
	models.CategoryNaturalDisaster: "science",
}

func (s *GNews) FetchByCategory(ctx context.Context, category models.Category) ([]models.RawArticle, error) {
	if s.Key == "" {
		return nil, ErrMissingKey
	}

	topic, ok := gnewsTopics[category]
	if !ok {
		topic = "world"
	}

	return s.fetch(ctx, url.Values{
		"topic": {topic},
		"max":   {"20"},
		"lang":  {"en"},
	})
}

func (s *GNews) fetch(ctx context.Context, params url.Values) ([]models.RawArticle, error) {
	params.Set("token", s.Key)

	var resp gnewsResponse
	if err := getJSON(ctx, s.Client, s.BaseURL+"/top-headlines?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	articles := make([]models.RawArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" {
			continue
		}
		articles = append(articles, models.RawArticle{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			ImageURL:    a.Image,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
		})
	}
	return articles, nil
}
