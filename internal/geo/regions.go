package geo

// Region names used by the assignment service. They must match the rows
// seeded into the regions relation.
const (
	RegionNorthOfAnchorage = "North of Anchorage"
	RegionAnchorageArea    = "Anchorage Area"
	RegionSewardArea       = "Seward Area"
	RegionKenaiPeninsula   = "Kenai Peninsula"
)

// DetermineRegion classifies a coordinate pair into one of the four regions:
//
//	North of Anchorage: lat > 61.45 (Palmer, Wasilla, Talkeetna, Denali)
//	Anchorage Area:     60.7 < lat <= 61.45 (includes Girdwood at ~60.94)
//	Seward Area:        lat <= 60.7 AND lng > -150.3 (eastern Kenai Peninsula)
//	Kenai Peninsula:    lat <= 60.7 AND lng <= -150.3 (Homer, Soldotna, Kenai)
func DetermineRegion(lat, lng float64) string {
	switch {
	case lat > 61.45:
		return RegionNorthOfAnchorage
	case lat > 60.7:
		return RegionAnchorageArea
	case lng > -150.3:
		return RegionSewardArea
	default:
		return RegionKenaiPeninsula
	}
}

// ValidCoordinates reports whether the pair is a usable lat/lng.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
