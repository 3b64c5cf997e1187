package extractor

import (
	"regexp"
	"strings"

	"beacon/internal/gazetteer"
	"beacon/internal/models"
)

// countryToCapital сопоставляет названиям стран и прилагательным
// национальности город, к которому чаще всего относятся такие новости.
// Ключи нормализованы.
var countryToCapital = map[string]string{
	"iran": "Tehran", "iranian": "Tehran",
	"turkey": "Istanbul", "turkish": "Istanbul",
	"china": "Beijing", "chinese": "Beijing",
	"russia": "Moscow", "russian": "Moscow",
	"ukraine": "Kyiv", "ukrainian": "Kyiv",
	"israel": "Tel Aviv", "israeli": "Tel Aviv",
	"palestine": "Gaza", "palestinian": "Gaza",
	"syria": "Damascus", "syrian": "Damascus",
	"iraq": "Baghdad", "iraqi": "Baghdad",
	"afghanistan": "Kabul", "afghan": "Kabul",
	"pakistan": "Islamabad", "pakistani": "Islamabad",
	"india": "New Delhi", "indian": "New Delhi",
	"japan": "Tokyo", "japanese": "Tokyo",
	"korea": "Seoul", "korean": "Seoul",
	"germany": "Berlin", "german": "Berlin",
	"france": "Paris", "french": "Paris",
	"uk": "London", "britain": "London", "british": "London",
	"england": "London", "english": "London",
	"spain": "Madrid", "spanish": "Madrid",
	"italy": "Rome", "italian": "Rome",
	"brazil": "Sao Paulo", "brazilian": "Sao Paulo",
	"mexico": "Mexico City", "mexican": "Mexico City",
	"canada": "Toronto", "canadian": "Toronto",
	"australia": "Sydney", "australian": "Sydney",
	"egypt": "Cairo", "egyptian": "Cairo",
	"saudi": "Riyadh", "arabia": "Riyadh",
	"uae": "Dubai", "emirates": "Dubai",
	"nigeria": "Lagos", "nigerian": "Lagos",
	"south africa": "Johannesburg",
	"argentina": "Buenos Aires",
	"venezuela": "Caracas",
	"colombia": "Bogota",
	"taiwan": "Taipei", "taiwanese": "Taipei",
}

// excludedWords — слова с заглавной буквы, которые шаблоны дейтлайнов
// продолжают ловить, но которые никогда не являются локациями.
var excludedWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"said": {}, "says": {},
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {}, "friday": {},
	"saturday": {}, "sunday": {},
	"january": {}, "february": {}, "march": {}, "april": {}, "may": {}, "june": {},
	"july": {}, "august": {}, "september": {}, "october": {}, "november": {},
	"december": {}, "today": {}, "yesterday": {}, "tomorrow": {},
	"president": {}, "minister": {}, "prime": {}, "king": {}, "queen": {},
	"prince": {}, "princess": {},
	"breaking": {}, "update": {}, "live": {}, "watch": {}, "video": {},
	"photo": {}, "photos": {},
	"reuters": {}, "associated": {}, "press": {}, "bbc": {}, "cnn": {}, "fox": {},
	"news": {},
	"just": {}, "new": {}, "now": {}, "here": {}, "there": {}, "when": {},
	"where": {}, "what": {}, "who": {}, "why": {}, "how": {},
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bin\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`),
	regexp.MustCompile(`\bfrom\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`),
	regexp.MustCompile(`\bat\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`),
	// Дейтлайн "LOCATION — " и агентский формат "LOCATION (".
	regexp.MustCompile(`^([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)\s*[-–—]`),
	regexp.MustCompile(`^([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)\s*\(`),
}

// Extractor извлекает кандидата локации из сырого текста статьи.
// Стратегии образуют фиксированную цепочку приоритетов; первое
// попадание побеждает, сквозного скоринга между стратегиями нет.
type Extractor struct {
	gaz        *gazetteer.Gazetteer
	strategies []strategy
}

type strategy func(models.RawArticle) *models.ExtractedLocation

func New(gaz *gazetteer.Gazetteer) *Extractor {
	e := &Extractor{gaz: gaz}
	e.strategies = []strategy{
		e.fromHint,
		e.directIn(func(a models.RawArticle) string { return a.Title }, models.ConfidenceHigh, models.ProvenanceHeadline),
		e.patternIn(func(a models.RawArticle) string { return a.Title }, models.ProvenanceHeadline),
		e.directIn(func(a models.RawArticle) string { return a.Description }, models.ConfidenceMedium, models.ProvenanceDescription),
		e.patternIn(func(a models.RawArticle) string { return a.Description }, models.ProvenanceDescription),
		e.directIn(func(a models.RawArticle) string { return a.Content }, models.ConfidenceLow, models.ProvenanceContent),
		e.patternIn(func(a models.RawArticle) string { return a.Content }, models.ProvenanceContent),
	}
	return e
}

// Extract прогоняет цепочку стратегий. nil означает, что в статье нет
// распознаваемой локации и она будет отброшена; родной город издателя
// намеренно никогда не используется как запасной вариант.
func (e *Extractor) Extract(article models.RawArticle) *models.ExtractedLocation {
	for _, s := range e.strategies {
		if loc := s(article); loc != nil {
			return loc
		}
	}
	return nil
}

func (e *Extractor) fromHint(a models.RawArticle) *models.ExtractedLocation {
	if a.LocationHint == "" {
		return nil
	}
	return &models.ExtractedLocation{
		Text:       a.LocationHint,
		Confidence: models.ConfidenceHigh,
		Provenance: models.ProvenanceHint,
	}
}

func (e *Extractor) directIn(field func(models.RawArticle) string, conf models.Confidence, prov string) strategy {
	return func(a models.RawArticle) *models.ExtractedLocation {
		text := field(a)
		if text == "" {
			return nil
		}
		match := e.directMatch(text)
		if match == "" {
			return nil
		}
		return &models.ExtractedLocation{Text: match, Confidence: conf, Provenance: prov}
	}
}

func (e *Extractor) patternIn(field func(models.RawArticle) string, prov string) strategy {
	return func(a models.RawArticle) *models.ExtractedLocation {
		text := field(a)
		if text == "" {
			return nil
		}
		candidate := e.patternMatch(text)
		if candidate == "" {
			return nil
		}
		// Попадания шаблонов эвристичны; не выше medium даже в заголовке.
		conf := models.ConfidenceMedium
		if prov == models.ProvenanceContent {
			conf = models.ConfidenceLow
		}
		return &models.ExtractedLocation{Text: candidate, Confidence: conf, Provenance: prov}
	}
}

// directMatch сканирует нормализованный текст на известные топонимы:
// сначала слова стран и национальностей (сильнейший сигнал), затем
// названия городов окнами в 3 и 2 слова (длинные окна раньше, чтобы
// "new york city" побеждал "new york"), затем одиночные токены длиннее
// 2 символов.
func (e *Extractor) directMatch(text string) string {
	words := strings.Fields(gazetteer.Normalize(text))

	for _, w := range words {
		if capital, ok := countryToCapital[w]; ok {
			return capital
		}
	}

	for _, size := range []int{3, 2} {
		for i := 0; i+size <= len(words); i++ {
			window := strings.Join(words[i:i+size], " ")
			if e.gaz.IsKnownCity(window) {
				return capitalizeWords(window)
			}
		}
	}

	for _, w := range words {
		if len(w) > 2 && e.gaz.IsKnownCity(w) {
			return capitalizeWords(w)
		}
	}

	return ""
}

func (e *Extractor) patternMatch(text string) string {
	for _, pattern := range locationPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(m[1])
			if candidate != "" && e.isValidLocation(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// isValidLocation фильтрует кандидатов шаблонов: стоп-слова
// отбрасываются, остальное должно проходить через таблицу столиц либо
// быть точным названием известного города или страны.
func (e *Extractor) isValidLocation(candidate string) bool {
	normalized := gazetteer.Normalize(candidate)
	if _, excluded := excludedWords[normalized]; excluded {
		return false
	}
	if _, ok := countryToCapital[normalized]; ok {
		return true
	}
	return e.gaz.IsKnownCity(normalized) || e.gaz.IsKnownCountry(normalized)
}

func capitalizeWords(text string) string {
	parts := strings.Split(text, " ")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
