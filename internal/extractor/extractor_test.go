package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"beacon/internal/extractor"
	"beacon/internal/gazetteer"
	"beacon/internal/models"
)

func newExtractor() *extractor.Extractor {
	return extractor.New(gazetteer.New())
}

func TestExtract_HintWinsOverEverything(t *testing.T) {
	e := newExtractor()

	loc := e.Extract(models.RawArticle{
		Title:        "Protests Erupt in Paris",
		LocationHint: "Tokyo",
	})

	require.NotNil(t, loc)
	require.Equal(t, "Tokyo", loc.Text)
	require.Equal(t, models.ConfidenceHigh, loc.Confidence)
	require.Equal(t, models.ProvenanceHint, loc.Provenance)
}

func TestExtract_DirectCityInHeadline(t *testing.T) {
	e := newExtractor()

	testCases := []struct {
		title    string
		expected string
	}{
		{"Protests Erupt Across Paris Suburbs", "Paris"},
		{"New York City Declares Emergency", "New York City"},
		{"Mumbai traffic grinds to a halt", "Mumbai"},
	}

	for _, tc := range testCases {
		loc := e.Extract(models.RawArticle{Title: tc.title})
		require.NotNil(t, loc, "title %q", tc.title)
		require.Equal(t, tc.expected, loc.Text)
		require.Equal(t, models.ConfidenceHigh, loc.Confidence)
		require.Equal(t, models.ProvenanceHeadline, loc.Provenance)
	}
}

func TestExtract_NationalityMapsToCapital(t *testing.T) {
	e := newExtractor()

	testCases := []struct {
		title    string
		expected string
	}{
		{"Iranian officials respond to sanctions", "Tehran"},
		{"Earthquake Strikes Northern Japan Region", "Tokyo"},
		{"British lawmakers debate the budget", "London"},
	}

	for _, tc := range testCases {
		loc := e.Extract(models.RawArticle{Title: tc.title})
		require.NotNil(t, loc, "title %q", tc.title)
		require.Equal(t, tc.expected, loc.Text)
		require.Equal(t, models.ConfidenceHigh, loc.Confidence)
	}
}

func TestExtract_PatternCappedAtMedium(t *testing.T) {
	e := newExtractor()

	// Дейтлайн с известной страной, не являющейся названием города,
	// доходит до шаблонных стратегий, а те никогда не дают high.
	loc := e.Extract(models.RawArticle{Title: "PORTUGAL - Wildfires force evacuations"})
	require.NotNil(t, loc)
	require.Equal(t, "PORTUGAL", loc.Text)
	require.Equal(t, models.ConfidenceMedium, loc.Confidence)
}

func TestExtract_StoplistRejectsPatternCandidates(t *testing.T) {
	e := newExtractor()

	// "Monday" попадает под шаблон "in X", но стоит в стоп-листе, а
	// больше известных мест в тексте нет.
	loc := e.Extract(models.RawArticle{Title: "Markets reopen in Monday trading"})
	require.Nil(t, loc)
}

func TestExtract_DescriptionFallback(t *testing.T) {
	e := newExtractor()

	loc := e.Extract(models.RawArticle{
		Title:       "Officials announce sweeping reforms",
		Description: "The measures were unveiled at a ceremony in Madrid on Tuesday.",
	})

	require.NotNil(t, loc)
	require.Equal(t, "Madrid", loc.Text)
	require.Equal(t, models.ConfidenceMedium, loc.Confidence)
	require.Equal(t, models.ProvenanceDescription, loc.Provenance)
}

func TestExtract_ContentIsLowConfidence(t *testing.T) {
	e := newExtractor()

	loc := e.Extract(models.RawArticle{
		Title:   "Officials announce sweeping reforms",
		Content: "Crowds gathered outside parliament in Nairobi to hear the decision.",
	})

	require.NotNil(t, loc)
	require.Equal(t, "Nairobi", loc.Text)
	require.Equal(t, models.ConfidenceLow, loc.Confidence)
	require.Equal(t, models.ProvenanceContent, loc.Provenance)
}

func TestExtract_NoLocation(t *testing.T) {
	e := newExtractor()

	loc := e.Extract(models.RawArticle{
		Title:       "Scientists publish surprising new findings",
		Description: "The study appeared in a peer reviewed journal this week.",
	})
	require.Nil(t, loc)
}

func TestExtract_LongerWindowWins(t *testing.T) {
	e := newExtractor()

	loc := e.Extract(models.RawArticle{Title: "Storm warning issued for New York City"})
	require.NotNil(t, loc)
	require.Equal(t, "New York City", loc.Text)
}
