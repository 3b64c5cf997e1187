package geocode

import "strings"

// regionByCountryCode сопоставляет ISO-коды стран меткам регионов глобуса.
var regionByCountryCode = map[string]string{
	// Северная Америка
	"US": "north-america", "CA": "north-america", "MX": "north-america",
	// Южная Америка
	"BR": "south-america", "AR": "south-america", "CO": "south-america",
	"CL": "south-america", "PE": "south-america", "VE": "south-america",
	"EC": "south-america", "BO": "south-america", "PY": "south-america",
	"UY": "south-america", "GY": "south-america", "SR": "south-america",
	// Европа
	"GB": "europe", "FR": "europe", "DE": "europe", "IT": "europe",
	"ES": "europe", "PT": "europe", "NL": "europe", "BE": "europe",
	"CH": "europe", "AT": "europe", "PL": "europe", "CZ": "europe",
	"GR": "europe", "SE": "europe", "NO": "europe", "DK": "europe",
	"FI": "europe", "IE": "europe", "RU": "europe", "UA": "europe",
	"HU": "europe", "RO": "europe", "BG": "europe", "RS": "europe",
	"HR": "europe", "SK": "europe", "SI": "europe", "BA": "europe",
	"AL": "europe", "MK": "europe", "BY": "europe", "LT": "europe",
	"LV": "europe", "EE": "europe", "IS": "europe",
	// Азия
	"CN": "asia", "JP": "asia", "KR": "asia", "KP": "asia", "TW": "asia",
	"IN": "asia", "PK": "asia", "BD": "asia", "TH": "asia", "VN": "asia",
	"SG": "asia", "MY": "asia", "ID": "asia", "PH": "asia", "KH": "asia",
	"MM": "asia", "LA": "asia", "AF": "asia", "UZ": "asia", "KZ": "asia",
	"MN": "asia", "NP": "asia", "LK": "asia",
	// Ближний Восток
	"AE": "middle-east", "SA": "middle-east", "IL": "middle-east",
	"IR": "middle-east", "IQ": "middle-east", "LB": "middle-east",
	"JO": "middle-east", "SY": "middle-east", "KW": "middle-east",
	"QA": "middle-east", "OM": "middle-east", "BH": "middle-east",
	"YE": "middle-east", "TR": "middle-east",
	// Африка
	"EG": "africa", "MA": "africa", "DZ": "africa", "TN": "africa",
	"LY": "africa", "SD": "africa", "NG": "africa", "GH": "africa",
	"SN": "africa", "CI": "africa", "KE": "africa", "TZ": "africa",
	"ET": "africa", "UG": "africa", "RW": "africa", "ZA": "africa",
	"ZW": "africa", "ZM": "africa", "MZ": "africa", "AO": "africa",
	"CD": "africa",
	// Океания
	"AU": "oceania", "NZ": "oceania", "FJ": "oceania", "PG": "oceania",
}

// regionForCountry возвращает метку региона для ISO-кода страны,
// для нераспознанных кодов — "other".
func regionForCountry(code string) string {
	if region, ok := regionByCountryCode[strings.ToUpper(code)]; ok {
		return region
	}
	return "other"
}
