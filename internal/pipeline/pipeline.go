package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"beacon/internal/categorizer"
	"beacon/internal/dedup"
	"beacon/internal/extractor"
	"beacon/internal/gazetteer"
	"beacon/internal/logger"
	"beacon/internal/metrics"
	"beacon/internal/models"
	"beacon/internal/sources"
)

// Geocoder разрешает извлечённый текст локации в координаты. nil
// означает неразрешимость; статья отбрасывается.
type Geocoder interface {
	Geocode(ctx context.Context, locationText string) *models.GeocodingResult
}

// Pipeline превращает сырые статьи провайдеров в дедуплицированные,
// геопривязанные, категоризованные NewsArticle. Геокодирование
// фактически сериализуется общим троттлом геокодера, поэтому прогон по
// многим некешированным локациям занимает секунды; вызывающие сидят за
// слоем кеша.
type Pipeline struct {
	sources   []sources.Source
	extractor *extractor.Extractor
	geocoder  Geocoder
}

func New(srcs []sources.Source, ext *extractor.Extractor, geo Geocoder) *Pipeline {
	return &Pipeline{sources: srcs, extractor: ext, geocoder: geo}
}

// FetchAndProcess параллельно опрашивает все источники, терпя отказы
// отдельных провайдеров, и прогоняет полную цепочку нормализации над
// объединением.
func (p *Pipeline) FetchAndProcess(ctx context.Context) ([]models.NewsArticle, error) {
	started := time.Now()

	raw := p.fetchAll(ctx)
	if len(raw) == 0 {
		logger.Log.Warn("No raw articles from any source")
		metrics.PipelineRuns.WithLabelValues("empty").Inc()
		return nil, nil
	}

	articles := p.process(ctx, raw, "")

	metrics.PipelineRuns.WithLabelValues("ok").Inc()
	metrics.PipelineDuration.Observe(time.Since(started).Seconds())
	logger.Log.WithFields(map[string]interface{}{
		"raw":       len(raw),
		"processed": len(articles),
		"elapsed":   time.Since(started).String(),
	}).Info("Pipeline run complete")

	return articles, nil
}

// FetchByCategory опрашивает рубричные эндпоинты источников, у которых
// они есть, и принудительно ставит запрошенную рубрику каждому
// результату: рубричные ленты классифицированы по построению.
func (p *Pipeline) FetchByCategory(ctx context.Context, category models.Category) ([]models.NewsArticle, error) {
	var raw []models.RawArticle
	for _, src := range p.sources {
		cf, ok := src.(sources.CategoryFetcher)
		if !ok {
			continue
		}
		articles, err := cf.FetchByCategory(ctx, category)
		if err != nil {
			logger.Log.WithField("source", src.Name()).Warnf("Category fetch failed: %v", err)
			metrics.SourceFetches.WithLabelValues(src.Name(), "error").Inc()
			continue
		}
		metrics.SourceFetches.WithLabelValues(src.Name(), "ok").Inc()
		raw = append(raw, articles...)
	}

	if len(raw) == 0 {
		return nil, nil
	}
	return p.process(ctx, raw, category), nil
}

func (p *Pipeline) fetchAll(ctx context.Context) []models.RawArticle {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		raw []models.RawArticle
	)

	for _, src := range p.sources {
		wg.Add(1)
		go func(src sources.Source) {
			defer wg.Done()

			log := logger.Log.WithField("source", src.Name())
			articles, err := src.FetchHeadlines(ctx)
			if err != nil {
				// Отказавший провайдер сужает покрытие, но не срывает прогон.
				log.Warnf("Fetch failed: %v", err)
				metrics.SourceFetches.WithLabelValues(src.Name(), "error").Inc()
				return
			}

			metrics.SourceFetches.WithLabelValues(src.Name(), "ok").Inc()
			metrics.SourceArticles.WithLabelValues(src.Name()).Add(float64(len(articles)))
			log.WithField("count", len(articles)).Info("Fetched headlines")

			mu.Lock()
			raw = append(raw, articles...)
			mu.Unlock()
		}(src)
	}
	wg.Wait()

	return raw
}

func (p *Pipeline) process(ctx context.Context, raw []models.RawArticle, override models.Category) []models.NewsArticle {
	// Предсортировка по свежести: проход по фингерпринтам при равной
	// полноте оставляет первую запись, поэтому более свежие дубликаты
	// должны идти раньше.
	sort.SliceStable(raw, func(i, j int) bool {
		return parseTimestamp(raw[i].PublishedAt).After(parseTimestamp(raw[j].PublishedAt))
	})

	deduped := dedup.ByFingerprint(raw)

	// Начатый прогон всегда доходит до конца: точек отмены нет, и
	// брошенный запрос всё равно даёт полный результат.
	articles := make([]models.NewsArticle, 0, len(deduped))
	for _, r := range deduped {
		extracted := p.extractor.Extract(r)
		if extracted == nil {
			metrics.ArticlesDropped.WithLabelValues("no_location").Inc()
			continue
		}

		geo := p.geocoder.Geocode(ctx, extracted.Text)
		if geo == nil {
			metrics.ArticlesDropped.WithLabelValues("unresolved_location").Inc()
			continue
		}

		category := override
		if category == "" {
			category = categorizer.Categorize(r)
		}

		articles = append(articles, buildArticle(r, geo, category))
	}

	articles = dedup.ByID(articles)

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Timestamp.After(articles[j].Timestamp)
	})

	return articles
}

func buildArticle(r models.RawArticle, geo *models.GeocodingResult, category models.Category) models.NewsArticle {
	summary := r.Description
	if summary == "" {
		summary = truncate(r.Content, 200)
	}
	content := r.Content
	if content == "" {
		content = r.Description
	}

	return models.NewsArticle{
		ID:       articleID(r.Title, r.PublishedAt),
		Headline: r.Title,
		Summary:  summary,
		Content:  content,
		Location: models.Location{
			Name:    geo.Name,
			Lat:     geo.Lat,
			Lng:     geo.Lng,
			Country: geo.Country,
			Region:  geo.Region,
		},
		Category:  category,
		Timestamp: parseTimestamp(r.PublishedAt),
		Source:    r.Source,
		ImageURL:  r.ImageURL,
		URL:       r.URL,
	}
}

// articleID хеширует нормализованный заголовок и время публикации,
// поэтому одна и та же новость сохраняет ID между повторными выборками.
func articleID(title, publishedAt string) string {
	sum := sha256.Sum256([]byte(gazetteer.Normalize(title) + "|" + publishedAt))
	return hex.EncodeToString(sum[:8])
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// truncate обрезает s максимум до n байт, не разрывая руну.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
