package categorizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"beacon/internal/categorizer"
	"beacon/internal/models"
)

func TestCategorize(t *testing.T) {
	testCases := []struct {
		name     string
		article  models.RawArticle
		expected models.Category
	}{
		{
			name: "conflict",
			article: models.RawArticle{
				Title:       "Military launches airstrike near border",
				Description: "Troops moved overnight after the attack.",
			},
			expected: models.CategoryConflict,
		},
		{
			name: "natural disaster",
			article: models.RawArticle{
				Title:       "Earthquake of magnitude 7.1 triggers tsunami warning",
				Description: "Coastal evacuation is underway.",
			},
			expected: models.CategoryNaturalDisaster,
		},
		{
			name: "economy",
			article: models.RawArticle{
				Title:       "Inflation cools as market rallies",
				Description: "Investor sentiment improved on the trade data.",
			},
			expected: models.CategoryEconomy,
		},
		{
			name: "health",
			article: models.RawArticle{
				Title:       "Hospital reports drop in virus cases",
				Description: "Vaccine coverage among patients keeps climbing.",
			},
			expected: models.CategoryHealth,
		},
		{
			name: "technology",
			article: models.RawArticle{
				Title:       "Startup unveils smartphone chip",
				Description: "The software ships later this year.",
			},
			expected: models.CategoryTechnology,
		},
		{
			name: "zero matches falls back to politics",
			article: models.RawArticle{
				Title: "Local bakery wins regional prize",
			},
			expected: models.CategoryPolitics,
		},
		{
			name: "repeat counts beat single hits",
			article: models.RawArticle{
				Title:       "Election watchdog reviews vote tally app",
				Description: "Parliament will certify the result.",
			},
			expected: models.CategoryPolitics,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, categorizer.Categorize(tc.article))
		})
	}
}

func TestCategorize_TieFallsBackToPolitics(t *testing.T) {
	// Одно слово конфликта и одно слово стихии, больше ничего.
	got := categorizer.Categorize(models.RawArticle{
		Title: "Missile debris starts wildfire",
	})
	require.Equal(t, models.CategoryPolitics, got)
}

func TestCategorize_SubstringMatchingIsLax(t *testing.T) {
	// "app" совпадает внутри "apps"; другие рубрики не набирают очков.
	got := categorizer.Categorize(models.RawArticle{
		Title: "Ranking the best mobile apps of the year",
	})
	require.Equal(t, models.CategoryTechnology, got)
}
