package models

// Country is one of the markets the generators draw from.
type Country string

const (
	CountryAustralia Country = "Australia"
	CountryJapan     Country = "Japan"
	CountryHongKong  Country = "Hong Kong"
	CountrySingapore Country = "Singapore"
)

// CountryProfile is the static lookup data for one country.
type CountryProfile struct {
	Cities     []string
	Timezones  []string
	PhoneCodes []string
	// Latitude and Longitude are the centre used to place synthetic sessions.
	Latitude  float64
	Longitude float64
}

// Countries lists the supported countries in a stable order.
var Countries = []Country{CountryAustralia, CountryJapan, CountryHongKong, CountrySingapore}

var catalog = map[Country]CountryProfile{
	CountryAustralia: {
		Cities:     []string{"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide", "Canberra", "Darwin", "Hobart"},
		Timezones:  []string{"Australia/Sydney", "Australia/Melbourne", "Australia/Brisbane", "Australia/Perth", "Australia/Adelaide", "Australia/Darwin"},
		PhoneCodes: []string{"+61"},
		Latitude:   -33.8688,
		Longitude:  151.2093,
	},
	CountryJapan: {
		Cities:     []string{"Tokyo", "Osaka", "Kyoto", "Yokohama", "Kobe", "Nagoya", "Sapporo", "Fukuoka", "Hiroshima"},
		Timezones:  []string{"Asia/Tokyo"},
		PhoneCodes: []string{"+81"},
		Latitude:   35.6762,
		Longitude:  139.6503,
	},
	CountryHongKong: {
		Cities:     []string{"Central", "Tsim Sha Tsui", "Causeway Bay", "Wan Chai", "Mong Kok", "Admiralty", "Kowloon", "Sha Tin"},
		Timezones:  []string{"Asia/Hong_Kong"},
		PhoneCodes: []string{"+852"},
		Latitude:   22.3193,
		Longitude:  114.1694,
	},
	CountrySingapore: {
		Cities:     []string{"Singapore", "Marina Bay", "Orchard", "Chinatown", "Little India", "Raffles Place", "Sentosa"},
		Timezones:  []string{"Asia/Singapore"},
		PhoneCodes: []string{"+65"},
		Latitude:   1.3521,
		Longitude:  103.8198,
	},
}

// Profile returns the lookup data for c.
func Profile(c Country) (CountryProfile, bool) {
	p, ok := catalog[c]
	return p, ok
}

// MustProfile returns the lookup data for a country known to be supported.
func MustProfile(c Country) CountryProfile {
	p, ok := catalog[c]
	if !ok {
		panic("models: unknown country " + string(c))
	}
	return p
}
