package sources_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"beacon/internal/models"
	"beacon/internal/sources"
)

func TestNewsAPI_FetchHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/top-headlines":
			require.Equal(t, "us", r.URL.Query().Get("country"))
			w.Write([]byte(`{"status":"ok","articles":[
				{"source":{"name":"CNN"},"title":"Top story","description":"desc","url":"http://a","publishedAt":"2025-01-02T10:00:00Z"},
				{"source":{"name":"CNN"},"title":"[Removed]"},
				{"source":{"name":"CNN"},"title":""}
			]}`))
		case "/everything":
			require.NotEmpty(t, r.URL.Query().Get("q"))
			w.Write([]byte(`{"status":"ok","articles":[
				{"source":{"name":"Reuters"},"title":"Recent story","content":"body","publishedAt":"2025-01-02T09:00:00Z"}
			]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	s := sources.NewNewsAPI("test-key")
	s.BaseURL = srv.URL

	articles, err := s.FetchHeadlines(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)
	require.Equal(t, "Top story", articles[0].Title)
	require.Equal(t, "CNN", articles[0].Source)
	require.Equal(t, "Recent story", articles[1].Title)
}

func TestNewsAPI_OneFeedFailingIsTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/top-headlines" {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"status":"ok","articles":[{"title":"Recent story"}]}`))
	}))
	defer srv.Close()

	s := sources.NewNewsAPI("test-key")
	s.BaseURL = srv.URL

	articles, err := s.FetchHeadlines(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
}

func TestNewsAPI_BothFeedsFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := sources.NewNewsAPI("test-key")
	s.BaseURL = srv.URL

	_, err := s.FetchHeadlines(context.Background())
	require.Error(t, err)
}

func TestNewsAPI_MissingKey(t *testing.T) {
	s := sources.NewNewsAPI("")
	_, err := s.FetchHeadlines(context.Background())
	require.ErrorIs(t, err, sources.ErrMissingKey)

	_, err = s.FetchByCategory(context.Background(), models.CategoryEconomy)
	require.ErrorIs(t, err, sources.ErrMissingKey)
}

func TestNewsAPI_FetchByCategoryMapsCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/top-headlines", r.URL.Path)
		require.Equal(t, "business", r.URL.Query().Get("category"))
		w.Write([]byte(`{"status":"ok","articles":[{"title":"Markets rally"}]}`))
	}))
	defer srv.Close()

	s := sources.NewNewsAPI("test-key")
	s.BaseURL = srv.URL

	articles, err := s.FetchByCategory(context.Background(), models.CategoryEconomy)
	require.NoError(t, err)
	require.Len(t, articles, 1)
}

func TestGNews_FetchHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/top-headlines", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("token"))
		w.Write([]byte(`{"articles":[
			{"title":"GNews story","description":"d","content":"c","url":"http://a","image":"http://img","publishedAt":"2025-01-02T10:00:00Z","source":{"name":"BBC"}}
		]}`))
	}))
	defer srv.Close()

	s := sources.NewGNews("test-key")
	s.BaseURL = srv.URL

	articles, err := s.FetchHeadlines(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "GNews story", articles[0].Title)
	require.Equal(t, "BBC", articles[0].Source)
	require.Equal(t, "http://img", articles[0].ImageURL)
}

func TestGNews_FetchByCategoryUsesTopic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "science", r.URL.Query().Get("topic"))
		w.Write([]byte(`{"articles":[]}`))
	}))
	defer srv.Close()

	s := sources.NewGNews("test-key")
	s.BaseURL = srv.URL

	articles, err := s.FetchByCategory(context.Background(), models.CategoryNaturalDisaster)
	require.NoError(t, err)
	require.Empty(t, articles)
}

func TestMediaStack_FetchHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/news", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		w.Write([]byte(`{"data":[
			{"title":"MediaStack story","description":"d","url":"http://a","source":"ap","country":"jp","published_at":"2025-01-02T10:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	s := sources.NewMediaStack("test-key")
	s.BaseURL = srv.URL

	articles, err := s.FetchHeadlines(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "JP", articles[0].LocationHint)
	// Поля тела у провайдера нет, его заменяет описание.
	require.Equal(t, articles[0].Description, articles[0].Content)
}

func TestMediaStack_RejectsUnexpectedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"code":"usage_limit_reached"}}`))
	}))
	defer srv.Close()

	s := sources.NewMediaStack("test-key")
	s.BaseURL = srv.URL

	_, err := s.FetchHeadlines(context.Background())
	require.Error(t, err)
}

func TestTheNewsAPI_FetchHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/top", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("api_token"))
		w.Write([]byte(`{"data":[
			{"title":"Tokyo exchange opens","snippet":"body","keywords":"finance, Tokyo, markets","published_at":"2025-01-02T10:00:00Z","source":"nikkei.com"}
		]}`))
	}))
	defer srv.Close()

	s := sources.NewTheNewsAPI("test-key")
	s.BaseURL = srv.URL

	articles, err := s.FetchHeadlines(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "Tokyo", articles[0].LocationHint)
	require.Equal(t, "body", articles[0].Content)
}

func TestLocationFromKeywords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"title":"No places here","keywords":"finance, quarterly results"},
			{"title":"Case insensitive","keywords":"economy, LONDON"},
			{"title":"No keywords at all"}
		]}`))
	}))
	defer srv.Close()

	s := sources.NewTheNewsAPI("test-key")
	s.BaseURL = srv.URL

	articles, err := s.FetchHeadlines(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 3)
	require.Empty(t, articles[0].LocationHint)
	require.Equal(t, "LONDON", articles[1].LocationHint)
	require.Empty(t, articles[2].LocationHint)
}
