package models

import "time"

// Category размечает новость по одной из шести фиксированных рубрик.
type Category string

const (
	CategoryPolitics        Category = "politics"
	CategoryConflict        Category = "conflict"
	CategoryNaturalDisaster Category = "natural-disaster"
	CategoryEconomy         Category = "economy"
	CategoryTechnology      Category = "technology"
	CategoryHealth          Category = "health"
)

// Categories перечисляет все рубрики в фиксированном порядке.
var Categories = []Category{
	CategoryPolitics,
	CategoryConflict,
	CategoryNaturalDisaster,
	CategoryEconomy,
	CategoryTechnology,
	CategoryHealth,
}

// RawArticle — статья в том виде, в каком её возвращает адаптер источника,
// до дедупликации и геопривязки. Никогда не сохраняется.
type RawArticle struct {
	Title        string
	Description  string
	Content      string
	URL          string
	ImageURL     string
	PublishedAt  string
	Source       string
	Author       string
	LocationHint string
}

// Location — разрешённая геопозиция новости.
type Location struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Country string  `json:"country"`
	Region  string  `json:"region"`
}

// NewsArticle — итоговая единица выдачи конвейера. Location всегда
// заполнен: статьи без разрешённой геопозиции отбрасываются раньше.
type NewsArticle struct {
	ID        string    `json:"id"`
	Headline  string    `json:"headline"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Location  Location  `json:"location"`
	Category  Category  `json:"category"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	URL       string    `json:"url,omitempty"`
}

// Confidence — качественная оценка достоверности извлечённой или
// геокодированной локации.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ExtractedLocation — кандидат локации, извлечённый из текста статьи.
type ExtractedLocation struct {
	Text       string
	Confidence Confidence
	// Provenance: откуда взят кандидат — hint/headline/description/content.
	Provenance string
}

const (
	ProvenanceHint        = "hint"
	ProvenanceHeadline    = "headline"
	ProvenanceDescription = "description"
	ProvenanceContent     = "content"
)

// GeocodingResult — координаты и метаданные, которыми геокодер разрешил
// текст локации. Confidence строго отражает способ разрешения.
type GeocodingResult struct {
	Lat         float64
	Lng         float64
	Name        string
	Country     string
	CountryCode string
	Region      string
	Confidence  Confidence
	// Source: database либо nominatim.
	Source string
}

const (
	GeoSourceDatabase  = "database"
	GeoSourceNominatim = "nominatim"
)
