package vectorize

import (
	"homiehub/internal/models/db_models"
)

// RawVector is a normalized feature vector before weighting. Every
// component lies in [0,1].
type RawVector [Dim]float32

// Fallbacks applied when an attribute is absent from the record.
const (
	defaultMoney = 1500
	defaultLease = 12
)

// EncodeRoom maps a room's attributes to a normalized feature vector.
// Total function: unrecognized or missing attributes fall back to
// their documented defaults, it never fails.
func EncodeRoom(room *db_models.Room) RawVector {
	coord, ok := LocationCoords[room.Location]
	if !ok {
		coord = DefaultCoord
	}

	// Rooms encode bathroom as a binary axis: anything but "No" counts
	// as attached. Users get a ternary encoding, see EncodeUser.
	bathroom := float32(1.0)
	if room.AttachedBathroom == "No" {
		bathroom = 0.0
	}

	return RawVector{
		normalize(coord.Lat, LatMin, LatMax),
		normalize(coord.Lon, LonMin, LonMax),
		lookup(GenderMap, room.FlatmateGender, 0.5),
		normalize(float64(intOrDefault(room.Rent, defaultMoney)), BudgetMin, BudgetMax),
		normalize(float64(intOrDefault(room.LeaseDurationMonths, defaultLease)), LeaseMin, LeaseMax),
		roomType(room.RoomType),
		bathroom,
		lookup(FoodMap, room.LifestyleFood, 1.0),
		lookup(AlcoholMap, room.LifestyleAlcohol, 0.5),
		lookup(SmokeMap, room.LifestyleSmoke, 0.0),
		utilitiesCoverage(len(room.UtilitiesIncluded)),
	}
}

// EncodeUser maps a user's preferences to a normalized feature vector
// with the same layout as EncodeRoom, so Euclidean distance between
// the two is meaningful.
func EncodeUser(user *db_models.User) RawVector {
	coord := averageCoord(user.PreferredLocations)

	// Users may be indifferent about an attached bathroom, so the axis
	// is ternary here, unlike the binary room encoding.
	bathroom := float32(0.5)
	switch user.AttachedBathroom {
	case "No":
		bathroom = 0.0
	case "Yes":
		bathroom = 1.0
	}

	return RawVector{
		normalize(coord.Lat, LatMin, LatMax),
		normalize(coord.Lon, LonMin, LonMax),
		lookup(GenderMap, user.GenderPreference, 0.5),
		normalize(float64(intOrDefault(user.BudgetMax, defaultMoney)), BudgetMin, BudgetMax),
		normalize(float64(intOrDefault(user.LeaseDurationMonths, defaultLease)), LeaseMin, LeaseMax),
		roomType(user.RoomTypePreference),
		bathroom,
		lookup(FoodMap, user.LifestyleFood, 1.0),
		lookup(AlcoholMap, user.LifestyleAlcohol, 0.5),
		lookup(SmokeMap, user.LifestyleSmoke, 0.0),
		utilitiesCoverage(len(user.UtilitiesPreference)),
	}
}

// averageCoord resolves each preferred location against the table and
// averages the hits. Names not in the table are excluded; if nothing
// resolves, the city-center default applies.
func averageCoord(locations []string) Coord {
	var sumLat, sumLon float64
	n := 0
	for _, loc := range locations {
		if coord, ok := LocationCoords[loc]; ok {
			sumLat += coord.Lat
			sumLon += coord.Lon
			n++
		}
	}
	if n == 0 {
		return DefaultCoord
	}
	return Coord{Lat: sumLat / float64(n), Lon: sumLon / float64(n)}
}

// normalize maps v linearly from [min,max] onto [0,1], clamped so a
// value outside the bounds never extrapolates past the range.
func normalize(v, min, max float64) float32 {
	scaled := (v - min) / (max - min)
	if scaled < 0 {
		return 0
	}
	if scaled > 1 {
		return 1
	}
	return float32(scaled)
}

func lookup(table map[string]float32, key string, fallback float32) float32 {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

func roomType(v string) float32 {
	switch v {
	case "Shared":
		return 0.0
	case "Private":
		return 1.0
	default:
		// Studio, Any, unrecognized
		return 0.5
	}
}

// utilitiesCoverage saturates at four tags.
func utilitiesCoverage(n int) float32 {
	cov := float32(n) / 4.0
	if cov > 1.0 {
		return 1.0
	}
	return cov
}

func intOrDefault(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
