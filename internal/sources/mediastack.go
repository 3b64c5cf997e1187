package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"beacon/internal/models"
)

// MediaStack адаптирует api.mediastack.com. Провайдер сообщает код
// страны у каждой статьи — он становится подсказкой локации для
// конвейера; описание дублируется в content, тела у API нет.
type MediaStack struct {
	Key     string
	BaseURL string
	Client  *http.Client
}

func NewMediaStack(key string) *MediaStack {
	return &MediaStack{
		Key:     key,
		BaseURL: "http://api.mediastack.com/v1",
		Client:  newHTTPClient(),
	}
}

func (s *MediaStack) Name() string { return "MediaStack" }

type mediaStackArticle struct {
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Image       string `json:"image"`
	Country     string `json:"country"`
	PublishedAt string `json:"published_at"`
}

type mediaStackResponse struct {
	Data []mediaStackArticle `json:"data"`
}

func (s *MediaStack) FetchHeadlines(ctx context.Context) ([]models.RawArticle, error) {
	if s.Key == "" {
		return nil, ErrMissingKey
	}

	return s.fetch(ctx, url.Values{
		"languages": {"en"},
		"sort":      {"published_desc"},
		"limit":     {"50"},
	})
}

// mediaStackCategories сопоставляет внутренние рубрики набору MediaStack.
var mediaStackCategories = map[models.Category]string{
	models.CategoryPolitics:        "politics",
	models.CategoryConflict:        "general",
	models.CategoryEconomy:         "business",
	models.CategoryTechnology:      "technology",
	models.CategoryHealth:          "health",
	models.CategoryNaturalDisaster: "science",
}

func (s *MediaStack) FetchByCategory(ctx context.Context, category models.Category) ([]models.RawArticle, error) {
	if s.Key == "" {
		return nil, ErrMissingKey
	}

	mapped, ok := mediaStackCategories[category]
	if !ok {
		mapped = "general"
	}

	return s.fetch(ctx, url.Values{
		"categories": {mapped},
		"languages":  {"en"},
		"sort":       {"published_desc"},
		"limit":      {"25"},
	})
}

func (s *MediaStack) fetch(ctx context.Context, params url.Values) ([]models.RawArticle, error) {
	params.Set("access_key", s.Key)

	var resp mediaStackResponse
	if err := getJSON(ctx, s.Client, s.BaseURL+"/news?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("unexpected response shape")
	}

	articles := make([]models.RawArticle, 0, len(resp.Data))
	for _, a := range resp.Data {
		if a.Title == "" {
			continue
		}
		articles = append(articles, models.RawArticle{
			Title:        a.Title,
			Description:  a.Description,
			Content:      a.Description,
			URL:          a.URL,
			ImageURL:     a.Image,
			PublishedAt:  a.PublishedAt,
			Source:       a.Source,
			Author:       a.Author,
			LocationHint: strings.ToUpper(a.Country),
		})
	}
	return articles, nil
}
