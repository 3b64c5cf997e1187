package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"beacon/internal/extractor"
	"beacon/internal/gazetteer"
	"beacon/internal/geocode"
	"beacon/internal/models"
	"beacon/internal/pipeline"
	"beacon/internal/sources"
)

// stubSource отдаёт заготовленные статьи либо падает, если задан err.
type stubSource struct {
	name     string
	articles []models.RawArticle
	err      error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) FetchHeadlines(ctx context.Context) ([]models.RawArticle, error) {
	return s.articles, s.err
}

func (s *stubSource) FetchByCategory(ctx context.Context, category models.Category) ([]models.RawArticle, error) {
	return s.articles, s.err
}

// newPipeline соединяет источники-заглушки с настоящим экстрактором и
// геокодером с недостижимым эндпоинтом Nominatim: каждая локация
// обязана разрешиться через газеттир.
func newPipeline(srcs ...sources.Source) *pipeline.Pipeline {
	gaz := gazetteer.New()
	return pipeline.New(srcs, extractor.New(gaz), geocode.New(gaz, "http://unused.invalid", "beacon-test/1.0"))
}

func TestFetchAndProcess(t *testing.T) {
	gnews := &stubSource{name: "GNews", articles: []models.RawArticle{
		{
			Title:       "Earthquake Strikes Northern Japan Region",
			Description: "Strong tremors were felt across the north of the country.",
			PublishedAt: "2025-01-02T10:00:00Z",
			Source:      "GNews",
		},
	}}
	newsapi := &stubSource{name: "NewsAPI", articles: []models.RawArticle{
		{
			Title:       "Northern Japan Region Earthquake Strikes",
			Description: "Quake.",
			PublishedAt: "2025-01-02T09:00:00Z",
			Source:      "NewsAPI",
		},
		{
			Title:       "Election Results Announced in Paris",
			Description: "Officials confirmed the vote tallies late in the evening.",
			PublishedAt: "2025-01-02T11:00:00Z",
			Source:      "NewsAPI",
		},
	}}

	p := newPipeline(gnews, newsapi)

	articles, err := p.FetchAndProcess(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)

	// Сначала самая свежая.
	paris := articles[0]
	require.Equal(t, "Election Results Announced in Paris", paris.Headline)
	require.Equal(t, "Paris", paris.Location.Name)
	require.Equal(t, models.CategoryPolitics, paris.Category)
	require.Equal(t, "europe", paris.Location.Region)

	// Две новости о землетрясении схлопнулись в одну; выжило более
	// полное описание, а слово страны разрешилось в столицу.
	quake := articles[1]
	require.Equal(t, "Tokyo", quake.Location.Name)
	require.Equal(t, "GNews", quake.Source)
	require.Equal(t, models.CategoryNaturalDisaster, quake.Category)
	require.True(t, paris.Timestamp.After(quake.Timestamp))
}

func TestFetchAndProcess_FailingSourceTolerated(t *testing.T) {
	broken := &stubSource{name: "MediaStack", err: errors.New("quota exhausted")}
	working := &stubSource{name: "GNews", articles: []models.RawArticle{
		{Title: "Protests Erupt Across Paris Suburbs", PublishedAt: "2025-01-02T10:00:00Z"},
	}}

	p := newPipeline(broken, working)

	articles, err := p.FetchAndProcess(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "Paris", articles[0].Location.Name)
}

func TestFetchAndProcess_AllSourcesEmpty(t *testing.T) {
	p := newPipeline(&stubSource{name: "GNews", err: errors.New("down")})

	articles, err := p.FetchAndProcess(context.Background())
	require.NoError(t, err)
	require.Empty(t, articles)
}

func TestFetchAndProcess_DropsArticlesWithoutLocation(t *testing.T) {
	p := newPipeline(&stubSource{name: "GNews", articles: []models.RawArticle{
		{Title: "Scientists publish surprising new findings", PublishedAt: "2025-01-02T10:00:00Z"},
		{Title: "Storm batters Mumbai coastline", PublishedAt: "2025-01-02T09:00:00Z"},
	}})

	articles, err := p.FetchAndProcess(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "Mumbai", articles[0].Location.Name)
}

func TestFetchAndProcess_StableIDs(t *testing.T) {
	src := &stubSource{name: "GNews", articles: []models.RawArticle{
		{Title: "Protests Erupt Across Paris Suburbs", PublishedAt: "2025-01-02T10:00:00Z"},
	}}
	p := newPipeline(src)

	first, err := p.FetchAndProcess(context.Background())
	require.NoError(t, err)
	second, err := p.FetchAndProcess(context.Background())
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	require.Equal(t, first[0].ID, second[0].ID)
	require.Len(t, first[0].ID, 16)
}

func TestFetchAndProcess_CompletesAfterCallerAbandons(t *testing.T) {
	p := newPipeline(&stubSource{name: "GNews", articles: []models.RawArticle{
		{Title: "Protests Erupt Across Paris Suburbs", PublishedAt: "2025-01-02T10:00:00Z"},
	}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Начатый прогон не сворачивается на полпути; полный результат
	// всё равно достаётся тем, кто прочитает кеш следом.
	articles, err := p.FetchAndProcess(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "Paris", articles[0].Location.Name)
}

func TestFetchByCategory_OverridesClassifier(t *testing.T) {
	src := &stubSource{name: "GNews", articles: []models.RawArticle{
		{Title: "New chip fabrication plant opens in Tokyo", PublishedAt: "2025-01-02T10:00:00Z"},
	}}
	p := newPipeline(src)

	articles, err := p.FetchByCategory(context.Background(), models.CategoryTechnology)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, models.CategoryTechnology, articles[0].Category)
	require.Equal(t, "Tokyo", articles[0].Location.Name)
}

func TestBuildArticle_SummaryFallsBackToContent(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	src := &stubSource{name: "GNews", articles: []models.RawArticle{
		{
			Title:       "Protests Erupt Across Paris Suburbs",
			Content:     string(long),
			PublishedAt: "2025-01-02T10:00:00Z",
		},
	}}
	p := newPipeline(src)

	articles, err := p.FetchAndProcess(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Len(t, articles[0].Summary, 200)
	require.Len(t, articles[0].Content, 300)
}

func TestBuildArticle_TruncationKeepsValidUTF8(t *testing.T) {
	// 199 ASCII-байт ставят разрез на 200-м байте посреди первой
	// двухбайтовой руны.
	content := strings.Repeat("x", 199) + strings.Repeat("ы", 40)
	src := &stubSource{name: "GNews", articles: []models.RawArticle{
		{
			Title:       "Protests Erupt Across Paris Suburbs",
			Content:     content,
			PublishedAt: "2025-01-02T10:00:00Z",
		},
	}}
	p := newPipeline(src)

	articles, err := p.FetchAndProcess(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.True(t, utf8.ValidString(articles[0].Summary))
	require.Equal(t, strings.Repeat("x", 199), articles[0].Summary)
}
