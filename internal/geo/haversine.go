// Package geo ranks destinations by great-circle distance from a position.
package geo

import (
	"cmp"
	"math"
	"slices"

	dm "travelsurvey/internal/models/domain_models"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// pi is a variable so radiansPerDegree is a float64 division, not an exact
// constant expression.
var (
	pi               = math.Pi
	radiansPerDegree = pi / 180
)

// Haversine computes the great-circle distance in kilometers between two
// points given in degrees. Latitude and longitude ranges are not checked.
func Haversine(from, to dm.Coordinates) float64 {
	lat1 := from.Latitude * radiansPerDegree
	lat2 := to.Latitude * radiansPerDegree
	dLat := (to.Latitude - from.Latitude) * radiansPerDegree
	dLon := (to.Longitude - from.Longitude) * radiansPerDegree

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	// explicit conversions keep the compiler from fusing multiply-adds
	a := float64(sinLat*sinLat) + float64(math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Rank computes the distance from current to every destination and returns
// them closest first. Equal distances keep their input order. A non-empty
// filter keeps only destinations whose travel type matches it exactly; no
// match yields an empty, non-nil slice.
func Rank(current dm.Coordinates, destinations []dm.Destination, filter dm.TravelType) []dm.RankedDestination {
	ranked := make([]dm.RankedDestination, 0, len(destinations))
	for _, d := range destinations {
		if filter != "" && d.TravelType != filter {
			continue
		}
		ranked = append(ranked, dm.RankedDestination{
			Destination: d,
			DistanceKm:  Haversine(current, d.Coordinates),
		})
	}

	slices.SortStableFunc(ranked, func(a, b dm.RankedDestination) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return ranked
}
