package sources

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"beacon/internal/models"
)

// TheNewsAPI адаптирует api.thenewsapi.com. Ключевые слова статьи
// иногда прямо называют место; оно становится подсказкой локации.
type TheNewsAPI struct {
	Key     string
	BaseURL string
	Client  *http.Client
}

func NewTheNewsAPI(key string) *TheNewsAPI {
	return &TheNewsAPI{
		Key:     key,
		BaseURL: "https://api.thenewsapi.com/v1/news",
		Client:  newHTTPClient(),
	}
}

func (s *TheNewsAPI) Name() string { return "TheNewsAPI" }

type theNewsAPIArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Snippet     string `json:"snippet"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
	PublishedAt string `json:"published_at"`
	Source      string `json:"source"`
}

type theNewsAPIResponse struct {
	Data []theNewsAPIArticle `json:"data"`
}

func (s *TheNewsAPI) FetchHeadlines(ctx context.Context) ([]models.RawArticle, error) {
	if s.Key == "" {
		return nil, ErrMissingKey
	}

	return s.fetch(ctx, "/top", url.Values{
		"language": {"en"},
		"limit":    {"50"},
	})
}

// theNewsAPICategories сопоставляет внутренние рубрики набору TheNewsAPI.
var theNewsAPICategories = map[models.Category]string{
	models.CategoryPolitics:        "politics",
	models.CategoryConflict:        "general",
	models.CategoryEconomy:         "business",
	models.CategoryTechnology:      "tech",
	models.CategoryHealth:          "health",
	models.CategoryNaturalDisaster: "science",
}

func (s *TheNewsAPI) FetchByCategory(ctx context.Context, category models.Category) ([]models.RawArticle, error) {
	if s.Key == "" {
		return nil, ErrMissingKey
	}

	mapped, ok := theNewsAPICategories[category]
	if !ok {
		mapped = "general"
	}

	return s.fetch(ctx, "/top", url.Values{
		"categories": {mapped},
		"language":   {"en"},
		"limit":      {"30"},
	})
}

func (s *TheNewsAPI) fetch(ctx context.Context, path string, params url.Values) ([]models.RawArticle, error) {
	params.Set("api_token", s.Key)

	var resp theNewsAPIResponse
	if err := getJSON(ctx, s.Client, s.BaseURL+path+"?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	articles := make([]models.RawArticle, 0, len(resp.Data))
	for _, a := range resp.Data {
		if a.Title == "" {
			continue
		}
		articles = append(articles, models.RawArticle{
			Title:        a.Title,
			Description:  a.Description,
			Content:      a.Snippet,
			URL:          a.URL,
			ImageURL:     a.ImageURL,
			PublishedAt:  a.PublishedAt,
			Source:       a.Source,
			LocationHint: locationFromKeywords(a.Keywords),
		})
	}
	return articles, nil
}

var keywordLocationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(United States|UK|China|Russia|India|Japan|Germany|France|Brazil|Canada)$`),
	regexp.MustCompile(`(?i)^(New York|London|Paris|Tokyo|Beijing|Moscow|Berlin|Sydney|Dubai)$`),
	regexp.MustCompile(`(?i)^(Washington|Los Angeles|Chicago|Houston|Miami|Toronto|Vancouver)$`),
}

// locationFromKeywords ищет в списке ключевых слов через запятую
// известную страну или город.
func locationFromKeywords(keywords string) string {
	if keywords == "" {
		return ""
	}
	for _, keyword := range strings.Split(keywords, ",") {
		keyword = strings.TrimSpace(keyword)
		for _, pattern := range keywordLocationPatterns {
			if pattern.MatchString(keyword) {
				return keyword
			}
		}
	}
	return ""
}
