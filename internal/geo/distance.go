package geo

import "math"

const earthRadiusKm = 6371.0

// Tiruchendur town center, the reference point for all distance ranking
const (
	TownCenterLat = 8.4967
	TownCenterLon = 78.1245
)

// Distance returns the great-circle distance in kilometers between two
// coordinates using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// DistanceFromTownCenter returns the distance from the town center reference
func DistanceFromTownCenter(lat, lon float64) float64 {
	return Distance(TownCenterLat, TownCenterLon, lat, lon)
}
