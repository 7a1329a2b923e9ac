// Package catalog holds the fixed reference data: the destination list used by
// the nearby screen and the travel type x country recommendation table.
// Callers only ever receive copies.
package catalog

import dm "travelsurvey/internal/models/domain_models"

// DefaultRecommendation is returned for any pair outside the table.
const DefaultRecommendation = "a custom travel experience"

var destinations = [...]dm.Destination{
	{
		Name:        "New York City",
		Country:     dm.CountryUSA,
		TravelType:  dm.TravelCultural,
		Coordinates: dm.Coordinates{Latitude: 40.7128, Longitude: -74.006},
	},
	{
		Name:        "Tokyo",
		Country:     dm.CountryJapan,
		TravelType:  dm.TravelFood,
		Coordinates: dm.Coordinates{Latitude: 35.6762, Longitude: 139.6503},
	},
	{
		Name:        "Rome",
		Country:     dm.CountryItaly,
		TravelType:  dm.TravelCultural,
		Coordinates: dm.Coordinates{Latitude: 41.9028, Longitude: 12.4964},
	},
	{
		Name:        "Paris",
		Country:     dm.CountryFrance,
		TravelType:  dm.TravelRelaxation,
		Coordinates: dm.Coordinates{Latitude: 48.8566, Longitude: 2.3522},
	},
	{
		Name:        "Sydney",
		Country:     dm.CountryAustralia,
		TravelType:  dm.TravelAdventure,
		Coordinates: dm.Coordinates{Latitude: -33.8688, Longitude: 151.2093},
	},
	{
		Name:        "Bangkok",
		Country:     dm.CountryThailand,
		TravelType:  dm.TravelFood,
		Coordinates: dm.Coordinates{Latitude: 13.7563, Longitude: 100.5018},
	},
}

// Destinations returns a fresh copy of the destination list in catalog order.
func Destinations() []dm.Destination {
	out := make([]dm.Destination, len(destinations))
	copy(out, destinations[:])
	return out
}

var recommendations = map[dm.TravelType]map[dm.Country]string{
	dm.TravelAdventure: {
		dm.CountryUSA:       "hiking in the Grand Canyon",
		dm.CountryJapan:     "climbing Mount Fuji",
		dm.CountryItaly:     "hiking in the Dolomites",
		dm.CountryFrance:    "skiing in the Alps",
		dm.CountryAustralia: "diving in the Great Barrier Reef",
		dm.CountryThailand:  "jungle trekking in Chiang Mai",
		dm.CountrySpain:     "hiking the Camino de Santiago",
		dm.CountryBrazil:    "exploring the Amazon rainforest",
	},
	dm.TravelRelaxation: {
		dm.CountryUSA:       "beach resort in Hawaii",
		dm.CountryJapan:     "onsen retreat in Hakone",
		dm.CountryItaly:     "wellness spa in Tuscany",
		dm.CountryFrance:    "luxury resort in French Riviera",
		dm.CountryAustralia: "beach holiday in Gold Coast",
		dm.CountryThailand:  "island hopping in Phuket",
		dm.CountrySpain:     "beach resort in Ibiza",
		dm.CountryBrazil:    "beachfront stay in Copacabana",
	},
	dm.TravelCultural: {
		dm.CountryUSA:       "museums in New York City",
		dm.CountryJapan:     "temple tour in Kyoto",
		dm.CountryItaly:     "historical sites in Rome",
		dm.CountryFrance:    "art galleries in Paris",
		dm.CountryAustralia: "aboriginal cultural tours",
		dm.CountryThailand:  "temple exploration in Bangkok",
		dm.CountrySpain:     "architectural tour in Barcelona",
		dm.CountryBrazil:    "cultural festivals in Salvador",
	},
	dm.TravelFood: {
		dm.CountryUSA:       "food tour in New Orleans",
		dm.CountryJapan:     "sushi making in Tokyo",
		dm.CountryItaly:     "cooking class in Bologna",
		dm.CountryFrance:    "wine tasting in Bordeaux",
		dm.CountryAustralia: "food markets in Melbourne",
		dm.CountryThailand:  "street food tour in Bangkok",
		dm.CountrySpain:     "tapas crawl in Madrid",
		dm.CountryBrazil:    "food festival in São Paulo",
	},
}

// Recommend looks up the activity for a travel type and country. Any pair not
// in the table, including values outside either enum, yields
// DefaultRecommendation.
func Recommend(travelType, country string) string {
	if byCountry, ok := recommendations[dm.TravelType(travelType)]; ok {
		if rec, ok := byCountry[dm.Country(country)]; ok {
			return rec
		}
	}
	return DefaultRecommendation
}
