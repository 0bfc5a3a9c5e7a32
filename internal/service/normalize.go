package service

import (
	"strings"

	"github.com/bharatwebpro/platform-api/internal/entity"
)

// businessTypeAliases maps directory category strings to the closed enum.
// Loaded once at process start and immutable thereafter.
var businessTypeAliases = map[string]entity.BusinessType{
	"grocery store":        entity.BusinessTypeKirana,
	"kirana":               entity.BusinessTypeKirana,
	"restaurant":           entity.BusinessTypeRestaurant,
	"clinic":               entity.BusinessTypeClinic,
	"doctor":               entity.BusinessTypeClinic,
	"salon":                entity.BusinessTypeSalon,
	"beauty parlor":        entity.BusinessTypeSalon,
	"coaching":             entity.BusinessTypeCoaching,
	"tuition":              entity.BusinessTypeCoaching,
	"real estate":          entity.BusinessTypeRealEstate,
	"travel agency":        entity.BusinessTypeTravelAgency,
	"lawyer":               entity.BusinessTypeLegal,
	"advocate":             entity.BusinessTypeLegal,
	"ca":                   entity.BusinessTypeTaxConsultant,
	"chartered accountant": entity.BusinessTypeTaxConsultant,
	"pharmacy":             entity.BusinessTypeMedicalStore,
	"medical store":        entity.BusinessTypeMedicalStore,
}

// cityStates maps known localities to their state. Unknown localities
// degrade to "Unknown".
var cityStates = map[string]string{
	"mumbai":        "Maharashtra",
	"delhi":         "Delhi",
	"bangalore":     "Karnataka",
	"bengaluru":     "Karnataka",
	"hyderabad":     "Telangana",
	"chennai":       "Tamil Nadu",
	"kolkata":       "West Bengal",
	"pune":          "Maharashtra",
	"ahmedabad":     "Gujarat",
	"jaipur":        "Rajasthan",
	"lucknow":       "Uttar Pradesh",
	"kanpur":        "Uttar Pradesh",
	"nagpur":        "Maharashtra",
	"indore":        "Madhya Pradesh",
	"bhopal":        "Madhya Pradesh",
	"visakhapatnam": "Andhra Pradesh",
	"patna":         "Bihar",
	"vadodara":      "Gujarat",
	"ghaziabad":     "Uttar Pradesh",
	"ludhiana":      "Punjab",
}

// MapBusinessType resolves a raw category string to the business type enum.
// Total: unmatched input maps to OTHER so lead intake never blocks on
// unfamiliar categories.
func MapBusinessType(raw string) entity.BusinessType {
	if mapped, ok := businessTypeAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return mapped
	}
	return entity.BusinessTypeOther
}

// CityState resolves a city name to its state. Total: unknown cities map to
// "Unknown".
func CityState(city string) string {
	if state, ok := cityStates[strings.ToLower(strings.TrimSpace(city))]; ok {
		return state
	}
	return "Unknown"
}
