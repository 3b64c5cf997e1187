package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"beacon/internal/gazetteer"
	"beacon/internal/logger"
	"beacon/internal/metrics"
	"beacon/internal/models"
)

const (
	// Политика Nominatim допускает не более одного запроса в секунду;
	// 1.1 с оставляет запас.
	minRequestInterval = 1100 * time.Millisecond

	// Кеш результатов сбрасывается по достижении этого числа записей.
	cacheMaxEntries = 10000
)

// Geocoder разрешает произвольный текст локации в координаты: сначала
// точное совпадение в газеттире, затем откат к столице страны, затем
// Nominatim за общим ограничителем частоты и кешем результатов по
// нормализованному ключу. Всё состояние принадлежит экземпляру; один
// Geocoder обслуживает весь процесс.
type Geocoder struct {
	gaz       *gazetteer.Gazetteer
	client    *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter

	mu    sync.Mutex
	cache map[string]*models.GeocodingResult
}

// New создаёт Geocoder для заданного поискового эндпоинта Nominatim.
// userAgent обязателен: Nominatim отклоняет анонимных клиентов.
func New(gaz *gazetteer.Gazetteer, baseURL, userAgent string) *Geocoder {
	return &Geocoder{
		gaz:       gaz,
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   baseURL,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Every(minRequestInterval), 1),
		cache:     make(map[string]*models.GeocodingResult),
	}
}

// Geocode разрешает locationText. nil означает, что текст неразрешим;
// сбой разрешения никогда не ошибка. Отрицательные результаты
// кешируются, чтобы повторные неразрешимые запросы ходили в Nominatim
// один раз. Прерванный контекст кеш не пишет: о самой локации он не
// говорит ничего.
func (g *Geocoder) Geocode(ctx context.Context, locationText string) *models.GeocodingResult {
	if strings.TrimSpace(locationText) == "" {
		return nil
	}

	cityName := locationText
	countryHint := ""
	if idx := strings.Index(locationText, ","); idx >= 0 {
		cityName = strings.TrimSpace(locationText[:idx])
		countryHint = strings.TrimSpace(locationText[idx+1:])
	}

	if city := g.gaz.FindCityByName(cityName, countryHint); city != nil {
		metrics.GeocodeLookups.WithLabelValues("gazetteer").Inc()
		return cityToResult(city, models.ConfidenceHigh)
	}

	if countryHint == "" {
		if capital := g.gaz.CapitalByCountry(cityName); capital != nil {
			metrics.GeocodeLookups.WithLabelValues("capital").Inc()
			return cityToResult(capital, models.ConfidenceMedium)
		}
	}

	key := gazetteer.Normalize(locationText)

	g.mu.Lock()
	cached, ok := g.cache[key]
	g.mu.Unlock()
	if ok {
		metrics.GeocodeLookups.WithLabelValues("cache").Inc()
		return cached
	}

	// Общий ограничитель сериализует все обращения к Nominatim в
	// процессе. Его ошибка всегда вызвана контекстом, а не локацией,
	// и кешированным промахом становиться не должна.
	if err := g.limiter.Wait(ctx); err != nil {
		return nil
	}

	result, err := g.queryNominatim(ctx, locationText)
	if err != nil {
		logger.Log.WithField("location", locationText).Warnf("Nominatim lookup failed: %v", err)
		if ctx.Err() != nil {
			return nil
		}
		result = nil
	}
	if result == nil {
		metrics.GeocodeLookups.WithLabelValues("miss").Inc()
	} else {
		metrics.GeocodeLookups.WithLabelValues("nominatim").Inc()
	}

	g.mu.Lock()
	if len(g.cache) >= cacheMaxEntries {
		g.cache = make(map[string]*models.GeocodingResult)
	}
	g.cache[key] = result
	g.mu.Unlock()

	return result
}

// FindClosestKnownLocation возвращает ближайший к координатам город
// газеттира — для статей, несущих только широту и долготу.
func (g *Geocoder) FindClosestKnownLocation(lat, lng float64) *models.GeocodingResult {
	nearest := g.gaz.FindNearestCity(lat, lng)
	if nearest == nil {
		return nil
	}
	return cityToResult(nearest, models.ConfidenceMedium)
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

func (g *Geocoder) queryNominatim(ctx context.Context, query string) (*models.GeocodingResult, error) {
	params := url.Values{
		"q":              {query},
		"format":         {"json"},
		"limit":          {"1"},
		"addressdetails": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, nil
	}

	place := places[0]
	lat, err := strconv.ParseFloat(place.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("bad latitude %q", place.Lat)
	}
	lng, err := strconv.ParseFloat(place.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("bad longitude %q", place.Lon)
	}

	name := place.Address.City
	if name == "" {
		name = place.Address.Town
	}
	if name == "" {
		name = place.Address.Village
	}
	if name == "" {
		name = strings.SplitN(place.DisplayName, ",", 2)[0]
	}

	countryCode := strings.ToUpper(place.Address.CountryCode)
	if countryCode == "" {
		countryCode = "XX"
	}
	country := place.Address.Country
	if country == "" {
		country = "Unknown"
	}

	return &models.GeocodingResult{
		Lat:         lat,
		Lng:         lng,
		Name:        name,
		Country:     country,
		CountryCode: countryCode,
		Region:      regionForCountry(countryCode),
		Confidence:  models.ConfidenceLow,
		Source:      models.GeoSourceNominatim,
	}, nil
}

func cityToResult(c *gazetteer.City, conf models.Confidence) *models.GeocodingResult {
	return &models.GeocodingResult{
		Lat:         c.Lat,
		Lng:         c.Lng,
		Name:        c.Name,
		Country:     c.Country,
		CountryCode: c.CountryCode,
		Region:      c.Region,
		Confidence:  conf,
		Source:      models.GeoSourceDatabase,
	}
}
