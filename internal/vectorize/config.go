package vectorize

// Dim is the number of feature dimensions. The order is fixed:
// [lat, lon, gender, money, lease_duration, room_type, bathroom,
// food, alcohol, smoke, utilities_coverage]. Stored room vectors and
// user query vectors must agree on this layout, so it never changes.
const Dim = 11

// Per-dimension importance multipliers. Gender and lease duration are
// strict axes (4) so a mismatch dominates the distance; location and
// budget are high priority (3); room type and utilities medium (2);
// the lifestyle axes soft (1). Chosen values, not derived ones.
var Weights = [Dim]float32{3, 3, 4, 3, 4, 2, 1, 1, 1, 1, 2}

type Coord struct {
	Lat float64
	Lon float64
}

// Greater Boston bounding box used to normalize coordinates.
const (
	LatMin = 42.25
	LatMax = 42.45
	LonMin = -71.20
	LonMax = -71.00
)

// Normalization bounds for monthly rent/budget (USD) and lease
// duration (months).
const (
	BudgetMin = 500
	BudgetMax = 3000
	LeaseMin  = 1
	LeaseMax  = 24
)

// DefaultCoord is the Boston city center, used when a location name is
// not in the table.
var DefaultCoord = Coord{Lat: 42.3601, Lon: -71.0589}

// LocationCoords maps supported Greater Boston area names to
// coordinates. Lookups are case-sensitive exact matches.
var LocationCoords = map[string]Coord{
	"Boston":          {42.3601, -71.0589},
	"Downtown Boston": {42.3551, -71.0603},
	"Back Bay":        {42.3505, -71.0763},
	"South End":       {42.3414, -71.0742},
	"North End":       {42.3647, -71.0542},
	"Beacon Hill":     {42.3588, -71.0707},
	"Fenway":          {42.3467, -71.0972},
	"South Boston":    {42.3334, -71.0495},
	"East Boston":     {42.3713, -71.0395},
	"Charlestown":     {42.3782, -71.0602},
	"Roxbury":         {42.3318, -71.0828},
	"Jamaica Plain":   {42.3099, -71.1206},
	"Mission Hill":    {42.3331, -71.1008},
	"Cambridge":       {42.3736, -71.1097},
	"Central Square":  {42.3657, -71.1040},
	"Kendall Square":  {42.3656, -71.0857},
	"Harvard Square":  {42.3736, -71.1190},
	"Somerville":      {42.3876, -71.0995},
	"Union Square":    {42.3793, -71.0936},
	"Davis Square":    {42.3967, -71.1226},
	"Brookline":       {42.3318, -71.1212},
	"Coolidge Corner": {42.3421, -71.1211},
	"Allston":         {42.3543, -71.1312},
	"Brighton":        {42.3481, -71.1509},
}

var GenderMap = map[string]float32{
	"Male":   0.0,
	"Female": 1.0,
	"Mixed":  0.5,
}

var FoodMap = map[string]float32{
	"Vegan":      0.0,
	"Vegetarian": 0.5,
	"Everything": 1.0,
}

var AlcoholMap = map[string]float32{
	"Never":        0.0,
	"Rarely":       0.25,
	"Occasionally": 0.5,
	"Regularly":    0.75,
	"Frequently":   1.0,
}

var SmokeMap = map[string]float32{
	"No":           0.0,
	"Outside Only": 0.5,
	"Yes":          1.0,
}
