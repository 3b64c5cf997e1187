package geocode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"beacon/internal/gazetteer"
	"beacon/internal/geocode"
	"beacon/internal/models"
)

const testUserAgent = "beacon-test/1.0"

// nominatimStub считает запросы и отдаёт фиксированное JSON-тело.
func nominatimStub(t *testing.T, calls *atomic.Int64, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, testUserAgent, r.Header.Get("User-Agent"))
		require.Equal(t, "json", r.URL.Query().Get("format"))
		require.NotEmpty(t, r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestGeocode_GazetteerHit(t *testing.T) {
	var calls atomic.Int64
	srv := nominatimStub(t, &calls, "[]")
	defer srv.Close()

	g := geocode.New(gazetteer.New(), srv.URL, testUserAgent)

	result := g.Geocode(context.Background(), "Tehran")
	require.NotNil(t, result)
	require.Equal(t, "Tehran", result.Name)
	require.Equal(t, "IR", result.CountryCode)
	require.Equal(t, models.ConfidenceHigh, result.Confidence)
	require.Equal(t, models.GeoSourceDatabase, result.Source)
	require.Equal(t, int64(0), calls.Load())
}

func TestGeocode_CountryFallsBackToCapital(t *testing.T) {
	var calls atomic.Int64
	srv := nominatimStub(t, &calls, "[]")
	defer srv.Close()

	g := geocode.New(gazetteer.New(), srv.URL, testUserAgent)

	city := g.Geocode(context.Background(), "Tehran")
	country := g.Geocode(context.Background(), "Iran")

	require.NotNil(t, country)
	require.Equal(t, city.Lat, country.Lat)
	require.Equal(t, city.Lng, country.Lng)
	require.Equal(t, models.ConfidenceHigh, city.Confidence)
	require.Equal(t, models.ConfidenceMedium, country.Confidence)
	require.Equal(t, int64(0), calls.Load())
}

func TestGeocode_CountryHintDisambiguates(t *testing.T) {
	var calls atomic.Int64
	srv := nominatimStub(t, &calls, "[]")
	defer srv.Close()

	g := geocode.New(gazetteer.New(), srv.URL, testUserAgent)

	result := g.Geocode(context.Background(), "Porto, Brazil")
	require.NotNil(t, result)
	require.Equal(t, "Porto Alegre", result.Name)
	require.Equal(t, "BR", result.CountryCode)
	require.Equal(t, int64(0), calls.Load())
}

func TestGeocode_BlankInput(t *testing.T) {
	var calls atomic.Int64
	srv := nominatimStub(t, &calls, "[]")
	defer srv.Close()

	g := geocode.New(gazetteer.New(), srv.URL, testUserAgent)

	require.Nil(t, g.Geocode(context.Background(), ""))
	require.Nil(t, g.Geocode(context.Background(), "   "))
	require.Equal(t, int64(0), calls.Load())
}

func TestGeocode_NominatimResponseParsed(t *testing.T) {
	var calls atomic.Int64
	srv := nominatimStub(t, &calls, `[{
		"lat": "52.5200",
		"lon": "13.4050",
		"display_name": "Mitte, Berlin, Deutschland",
		"address": {"city": "Berlin", "country": "Deutschland", "country_code": "de"}
	}]`)
	defer srv.Close()

	g := geocode.New(gazetteer.New(), srv.URL, testUserAgent)

	result := g.Geocode(context.Background(), "Mitte district")
	require.NotNil(t, result)
	require.Equal(t, "Berlin", result.Name)
	require.InDelta(t, 52.52, result.Lat, 0.001)
	require.InDelta(t, 13.405, result.Lng, 0.001)
	require.Equal(t, "DE", result.CountryCode)
	require.Equal(t, "europe", result.Region)
	require.Equal(t, models.ConfidenceLow, result.Confidence)
	require.Equal(t, models.GeoSourceNominatim, result.Source)
	require.Equal(t, int64(1), calls.Load())
}

func TestGeocode_NegativeResultCached(t *testing.T) {
	var calls atomic.Int64
	srv := nominatimStub(t, &calls, "[]")
	defer srv.Close()

	g := geocode.New(gazetteer.New(), srv.URL, testUserAgent)

	require.Nil(t, g.Geocode(context.Background(), "zzqq yyxx"))
	require.Nil(t, g.Geocode(context.Background(), "zzqq yyxx"))
	require.Nil(t, g.Geocode(context.Background(), "Zzqq Yyxx!"))
	require.Equal(t, int64(1), calls.Load())
}

func TestGeocode_AbortedRequestNotCachedAsMiss(t *testing.T) {
	var calls atomic.Int64
	srv := nominatimStub(t, &calls, `[{
		"lat": "52.5200",
		"lon": "13.4050",
		"display_name": "Mitte, Berlin, Deutschland",
		"address": {"city": "Berlin", "country": "Deutschland", "country_code": "de"}
	}]`)
	defer srv.Close()

	g := geocode.New(gazetteer.New(), srv.URL, testUserAgent)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Nil(t, g.Geocode(ctx, "Mitte district"))
	require.Equal(t, int64(0), calls.Load())

	// Сорванная попытка не оставила отрицательной записи.
	result := g.Geocode(context.Background(), "Mitte district")
	require.NotNil(t, result)
	require.Equal(t, "Berlin", result.Name)
	require.Equal(t, int64(1), calls.Load())
}

func TestGeocode_NominatimCallsAreThrottled(t *testing.T) {
	var mu sync.Mutex
	var hits []time.Time
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits = append(hits, time.Now())
		mu.Unlock()
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	g := geocode.New(gazetteer.New(), srv.URL, testUserAgent)

	// Два разных промаха кеша, выполненные одновременно, всё равно
	// приходят на сервер по одному, разнесённые общим ограничителем.
	var wg sync.WaitGroup
	for _, q := range []string{"zzqq yyxx", "qqzz xxyy"} {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			g.Geocode(context.Background(), q)
		}(q)
	}
	wg.Wait()

	require.Len(t, hits, 2)
	require.GreaterOrEqual(t, hits[1].Sub(hits[0]), time.Second)
}

func TestGeocode_ServerErrorNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := geocode.New(gazetteer.New(), srv.URL, testUserAgent)

	require.Nil(t, g.Geocode(context.Background(), "zzqq yyxx"))
}

func TestFindClosestKnownLocation(t *testing.T) {
	g := geocode.New(gazetteer.New(), "http://unused.invalid", testUserAgent)

	result := g.FindClosestKnownLocation(35.7, 139.7)
	require.NotNil(t, result)
	require.Equal(t, "Tokyo", result.Name)
	require.Equal(t, models.ConfidenceMedium, result.Confidence)
	require.Equal(t, models.GeoSourceDatabase, result.Source)
}
