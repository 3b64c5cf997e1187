package dedup

import (
	"sort"
	"strings"

	"beacon/internal/models"
)

// Fingerprint сводит заголовок к ключу почти-дубликата, не зависящему
// от порядка слов: нижний регистр, вычищенные не-алфанумерики, слова
// длиннее 3 символов, первые 5 из них по алфавиту слитно.
func Fingerprint(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	var words []string
	for _, w := range strings.Fields(b.String()) {
		if len(w) > 3 {
			words = append(words, w)
			if len(words) == 5 {
				break
			}
		}
	}

	sort.Strings(words)
	return strings.Join(words, "")
}

// ByFingerprint схлопывает почти-дубликаты сырых статей между
// провайдерами. Выживает запись с большей суммой description+content;
// при равенстве остаётся более ранняя, что после предсортировки
// конвейера по свежести означает более свежую.
func ByFingerprint(articles []models.RawArticle) []models.RawArticle {
	kept := make([]models.RawArticle, 0, len(articles))
	index := make(map[string]int, len(articles))

	for _, article := range articles {
		fp := Fingerprint(article.Title)
		at, seen := index[fp]
		if !seen {
			index[fp] = len(kept)
			kept = append(kept, article)
			continue
		}
		if richness(article) > richness(kept[at]) {
			kept[at] = article
		}
	}

	return kept
}

func richness(a models.RawArticle) int {
	return len(a.Description) + len(a.Content)
}

// ByID схлопывает обработанные статьи с одинаковым ID, оставляя
// первую. Детерминированный хеш ID может совпасть у заголовков,
// различающихся лишь словами, которые игнорирует фингерпринт.
func ByID(articles []models.NewsArticle) []models.NewsArticle {
	kept := make([]models.NewsArticle, 0, len(articles))
	seen := make(map[string]struct{}, len(articles))

	for _, article := range articles {
		if _, dup := seen[article.ID]; dup {
			continue
		}
		seen[article.ID] = struct{}{}
		kept = append(kept, article)
	}

	return kept
}
