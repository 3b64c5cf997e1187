package categorizer

import (
	"strings"

	"beacon/internal/models"
)

// categoryKeywords управляет скорингом. Совпадение — простое вхождение
// подстроки, без границ слов: "app" совпадает внутри длинных слов.
// Нестрогость намеренная, на неё завязано текущее поведение.
var categoryKeywords = map[models.Category][]string{
	models.CategoryPolitics: {
		"election", "vote", "parliament", "government", "senate", "congress",
		"minister", "president", "campaign", "legislation", "democrat",
		"republican", "diplomat", "summit", "referendum",
	},
	models.CategoryConflict: {
		"war", "attack", "military", "troops", "missile", "airstrike",
		"bomb", "ceasefire", "invasion", "insurgent", "hostage", "clashes",
		"shelling", "offensive",
	},
	models.CategoryNaturalDisaster: {
		"earthquake", "flood", "hurricane", "tsunami", "wildfire", "tornado",
		"volcano", "drought", "landslide", "cyclone", "magnitude", "storm",
		"evacuation",
	},
	models.CategoryEconomy: {
		"economy", "economic", "market", "inflation", "stocks", "trade",
		"tariff", "recession", "unemployment", "bank", "currency",
		"investor", "gdp", "interest rate",
	},
	models.CategoryTechnology: {
		"technology", "tech", "app", "software", "startup",
		"artificial intelligence", "cyber", "robot", "chip", "smartphone",
		"internet", "silicon",
	},
	models.CategoryHealth: {
		"health", "hospital", "virus", "vaccine", "disease", "outbreak",
		"cancer", "medical", "epidemic", "pandemic", "drug", "patients",
	},
}

// Categorize оценивает текст статьи по спискам ключевых слов всех
// рубрик. Побеждает строго наибольший счёт; ничьи и ноль совпадений
// откатываются к politics, так что без рубрики статья не остаётся.
func Categorize(article models.RawArticle) models.Category {
	haystack := strings.ToLower(article.Title + " " + article.Description + " " + article.Content)

	best := models.CategoryPolitics
	bestCount := 0
	tied := false

	for _, category := range models.Categories {
		count := 0
		for _, keyword := range categoryKeywords[category] {
			count += strings.Count(haystack, keyword)
		}
		switch {
		case count > bestCount:
			best = category
			bestCount = count
			tied = false
		case count == bestCount && count > 0:
			tied = true
		}
	}

	if bestCount == 0 || tied {
		return models.CategoryPolitics
	}
	return best
}
