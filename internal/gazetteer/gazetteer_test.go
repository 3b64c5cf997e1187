package gazetteer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"beacon/internal/gazetteer"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"São Paulo", "sao paulo"},
		{"Xi'an", "xian"},
		{"NEW YORK CITY", "new york city"},
		{"  Bogotá ", "bogota"},
		{"Kyiv", "kyiv"},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, gazetteer.Normalize(tc.in))
	}
}

func TestFindCityByName_Exact(t *testing.T) {
	g := gazetteer.New()

	for _, name := range []string{"Tokyo", "Paris", "São Paulo", "New York City", "tehran"} {
		city := g.FindCityByName(name, "")
		require.NotNil(t, city, "expected a match for %q", name)
		require.Equal(t, gazetteer.Normalize(name), gazetteer.Normalize(city.Name))
	}
}

func TestFindCityByName_SharedName(t *testing.T) {
	g := gazetteer.New()

	// "porto" индексирует и Порту, и — по первому слову — Порту-Алегри.
	withHint := g.FindCityByName("Porto", "Brazil")
	require.NotNil(t, withHint)
	require.Equal(t, "Porto Alegre", withHint.Name)

	byCode := g.FindCityByName("Porto", "PT")
	require.NotNil(t, byCode)
	require.Equal(t, "Porto", byCode.Name)

	// Без подсказки побеждает более крупный город.
	noHint := g.FindCityByName("Porto", "")
	require.NotNil(t, noHint)
	require.Equal(t, "Porto Alegre", noHint.Name)
}

func TestFindCityByName_Partial(t *testing.T) {
	g := gazetteer.New()

	city := g.FindCityByName("Greater Tokyo", "")
	require.NotNil(t, city)
	require.Equal(t, "Tokyo", city.Name)
}

func TestFindCityByName_Unknown(t *testing.T) {
	g := gazetteer.New()
	require.Nil(t, g.FindCityByName("zzqq yyxx", ""))
	require.Nil(t, g.FindCityByName("", ""))
}

func TestFindCitiesByCountry(t *testing.T) {
	g := gazetteer.New()

	japan := g.FindCitiesByCountry("Japan")
	require.NotEmpty(t, japan)
	for _, c := range japan {
		require.Equal(t, "Japan", c.Country)
	}

	require.Empty(t, g.FindCitiesByCountry("Atlantis"))
}

func TestFindNearestCity(t *testing.T) {
	g := gazetteer.New()

	// Чуть в стороне от координат Токио.
	nearest := g.FindNearestCity(35.7, 139.7)
	require.NotNil(t, nearest)
	require.Equal(t, "Tokyo", nearest.Name)
}

func TestCapitalByCountry(t *testing.T) {
	g := gazetteer.New()

	capital := g.CapitalByCountry("Iran")
	require.NotNil(t, capital)
	require.Equal(t, "Tehran", capital.Name)

	// Флаг столицы Швейцарии стоит на Берне, а не на крупнейшем городе.
	bern := g.CapitalByCountry("Switzerland")
	require.NotNil(t, bern)
	require.Equal(t, "Bern", bern.Name)

	require.Nil(t, g.CapitalByCountry("Atlantis"))
}

func TestCitiesWithNews(t *testing.T) {
	g := gazetteer.New()

	cities := g.CitiesWithNews()
	require.NotEmpty(t, cities)
	for _, c := range cities {
		require.Greater(t, c.Population, gazetteer.NewsworthyPopulation)
	}
}

func TestIsKnownCityAndCountry(t *testing.T) {
	g := gazetteer.New()

	require.True(t, g.IsKnownCity("tokyo"))
	require.True(t, g.IsKnownCity("new york city"))
	require.False(t, g.IsKnownCity("new york city extra"))
	require.True(t, g.IsKnownCountry("japan"))
	require.False(t, g.IsKnownCountry(strings.ToLower("Atlantis")))
}
