package gazetteer

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NewsworthyPopulation — порог населения, начиная с которого город
// попадает в базовый набор точек глобуса.
const NewsworthyPopulation = 500000

// City — одна строка статической таблицы городов мира.
type City struct {
	Name           string
	NameNormalized string
	Lat            float64
	Lng            float64
	Country        string
	CountryCode    string
	Population     int
	Region         string
	Capital        bool
}

// Gazetteer — геобаза в памяти с индексами по имени и стране,
// построенными один раз при создании. Поиск только читает и безопасен
// для конкурентного использования.
type Gazetteer struct {
	cities    []City
	byName    map[string][]*City
	byCountry map[string][]*City
	nameKeys  []string
	citySet   map[string]struct{}
	country   map[string]struct{}
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize канонизирует название места: нижний регистр, снятые
// диакритики, всё вне [a-z0-9 ] отбрасывается.
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		stripped = lowered
	}
	var b strings.Builder
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// New строит газеттир из статической таблицы городов.
func New() *Gazetteer {
	g := &Gazetteer{
		cities:    cities,
		byName:    make(map[string][]*City),
		byCountry: make(map[string][]*City),
		citySet:   make(map[string]struct{}),
		country:   make(map[string]struct{}),
	}

	for i := range g.cities {
		c := &g.cities[i]
		g.byName[c.NameNormalized] = append(g.byName[c.NameNormalized], c)
		g.citySet[c.NameNormalized] = struct{}{}
		g.country[Normalize(c.Country)] = struct{}{}

		// Многословные названия дополнительно индексируются по первому
		// слову, если оно длиннее 3 символов ("quebec" для "quebec city").
		parts := strings.Split(c.NameNormalized, " ")
		if len(parts) > 1 && len(parts[0]) > 3 {
			if !containsCity(g.byName[parts[0]], c) {
				g.byName[parts[0]] = append(g.byName[parts[0]], c)
			}
		}

		countryKey := strings.ToLower(c.Country)
		g.byCountry[countryKey] = append(g.byCountry[countryKey], c)
	}

	g.nameKeys = make([]string, 0, len(g.byName))
	for k := range g.byName {
		g.nameKeys = append(g.nameKeys, k)
	}
	sort.Strings(g.nameKeys)

	return g
}

func containsCity(list []*City, c *City) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}
	return false
}

// FindCityByName разрешает название города, при необходимости
// уточнённое названием страны или ISO-кодом. Сначала точный поиск по
// нормализованному ключу; среди одноимённых побеждает совпадение по
// стране, иначе наибольшее население. Затем откат к двустороннему
// поиску подстроки по всем ключам индекса.
func (g *Gazetteer) FindCityByName(name, country string) *City {
	normalized := Normalize(name)
	if normalized == "" {
		return nil
	}

	candidates := g.byName[normalized]
	if len(candidates) == 0 {
		return g.findPartial(normalized, country)
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	if country != "" {
		if match := matchCountry(candidates, country); match != nil {
			return match
		}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Population > best.Population {
			best = c
		}
	}
	return best
}

func (g *Gazetteer) findPartial(normalized, country string) *City {
	for _, key := range g.nameKeys {
		if !strings.Contains(key, normalized) && !strings.Contains(normalized, key) {
			continue
		}
		list := g.byName[key]
		if country != "" {
			if match := matchCountry(list, country); match != nil {
				return match
			}
		}
		return list[0]
	}
	return nil
}

func matchCountry(list []*City, country string) *City {
	needle := strings.ToLower(country)
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Country), needle) ||
			strings.EqualFold(c.CountryCode, country) {
			return c
		}
	}
	return nil
}

// FindCitiesByCountry возвращает все города страны, точное сравнение
// названия без учёта регистра. Для неизвестных стран — пустой срез.
func (g *Gazetteer) FindCitiesByCountry(country string) []*City {
	return g.byCountry[strings.ToLower(country)]
}

// FindNearestCity возвращает ближайший к координатам город по плоскому
// расстоянию в градусах. O(n) по нескольким сотням строк.
func (g *Gazetteer) FindNearestCity(lat, lng float64) *City {
	var nearest *City
	minDist := math.Inf(1)
	for i := range g.cities {
		c := &g.cities[i]
		d := math.Hypot(c.Lat-lat, c.Lng-lng)
		if d < minDist {
			minDist = d
			nearest = c
		}
	}
	return nearest
}

// CapitalByCountry возвращает столицу страны, при её отсутствии первый
// город списка, для неизвестной страны — nil.
func (g *Gazetteer) CapitalByCountry(country string) *City {
	list := g.FindCitiesByCountry(country)
	for _, c := range list {
		if c.Capital {
			return c
		}
	}
	if len(list) > 0 {
		return list[0]
	}
	return nil
}

// CitiesWithNews возвращает города с населением выше порога; из них
// глобус строит базовый набор точек.
func (g *Gazetteer) CitiesWithNews() []*City {
	var out []*City
	for i := range g.cities {
		if g.cities[i].Population > NewsworthyPopulation {
			out = append(out, &g.cities[i])
		}
	}
	return out
}

// IsKnownCity сообщает, является ли нормализованный текст точным
// названием города.
func (g *Gazetteer) IsKnownCity(normalized string) bool {
	_, ok := g.citySet[normalized]
	return ok
}

// IsKnownCountry сообщает, является ли нормализованный текст точным
// названием страны.
func (g *Gazetteer) IsKnownCountry(normalized string) bool {
	_, ok := g.country[normalized]
	return ok
}
