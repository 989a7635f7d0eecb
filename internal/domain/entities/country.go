package entities

// Country is a country identifier shown to the player.
type Country string

const (
	CountryEstonia Country = "Estonia"
	CountryFrance  Country = "France"
	CountryGermany Country = "Germany"
	CountryIreland Country = "Ireland"
	CountryItaly   Country = "Italy"
	CountryNigeria Country = "Nigeria"
	CountryPoland  Country = "Poland"
	CountryRussia  Country = "Russia"
	CountrySpain   Country = "Spain"
	CountryUK      Country = "UK"
	CountryUS      Country = "US"
)

// flags maps every known country to its flag emoji.
var flags = map[Country]string{
	CountryEstonia: "🇪🇪",
	CountryFrance:  "🇫🇷",
	CountryGermany: "🇩🇪",
	CountryIreland: "🇮🇪",
	CountryItaly:   "🇮🇹",
	CountryNigeria: "🇳🇬",
	CountryPoland:  "🇵🇱",
	CountryRussia:  "🇷🇺",
	CountrySpain:   "🇪🇸",
	CountryUK:      "🇬🇧",
	CountryUS:      "🇺🇸",
}

// Countries returns the fixed set of countries in a stable order.
// A fresh slice is returned on every call.
func Countries() []Country {
	return []Country{
		CountryEstonia,
		CountryFrance,
		CountryGermany,
		CountryIreland,
		CountryItaly,
		CountryNigeria,
		CountryPoland,
		CountryRussia,
		CountrySpain,
		CountryUK,
		CountryUS,
	}
}

// IsKnown reports whether c belongs to the fixed country set.
func (c Country) IsKnown() bool {
	_, ok := flags[c]
	return ok
}

// Flag returns the flag image of the country, or a white flag for unknown ones.
func (c Country) Flag() string {
	if f, ok := flags[c]; ok {
		return f
	}
	return "🏳️"
}

func (c Country) String() string {
	return string(c)
}
