package domain

// LocationRecord is a resolved geocoding result.
type LocationRecord struct {
	City             string  `yaml:"city" json:"city"`
	State            *string `yaml:"state" json:"state,omitempty"`
	Country          string  `yaml:"country" json:"country"`
	CountryCode      string  `yaml:"country_code" json:"country_code"`
	FormattedAddress string  `yaml:"formatted_address" json:"formatted_address"`
	Latitude         float64 `yaml:"latitude" json:"latitude"`
	Longitude        float64 `yaml:"longitude" json:"longitude"`
}

func (l *LocationRecord) Locale() Locale {
	return Locale{City: l.City, Country: l.Country}
}
