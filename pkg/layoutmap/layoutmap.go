package layoutmap

import (
	"math"

	"raitha/pkg/recommend/types"
)

// GeoJSON-shaped output. Coordinates are [lon, lat] rings.
type Geometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

const (
	sqMetersPerAcre    = 4046.86
	metersPerDegreeLat = 111320.0
)

// Build derives a rectangular plot around the farm center and splits it into
// main-crop, intercrop and tree bands along the east-west axis using the
// layout plan's area ratios.
func Build(loc types.Location, areaAcres float64, rec types.Recommendation) FeatureCollection {
	side := math.Sqrt(areaAcres * sqMetersPerAcre)
	latOff := side / metersPerDegreeLat
	lonOff := side / (metersPerDegreeLat * math.Cos(loc.Lat*math.Pi/180))

	minLat, maxLat := loc.Lat-latOff/2, loc.Lat+latOff/2
	minLon, maxLon := loc.Lon-lonOff/2, loc.Lon+lonOff/2

	fc := FeatureCollection{Type: "FeatureCollection"}
	fc.Features = append(fc.Features, Feature{
		Type: "Feature",
		Properties: map[string]any{
			"zone":    "boundary",
			"pattern": rec.LayoutPlan.Pattern,
		},
		Geometry: rect(minLon, minLat, maxLon, maxLat),
	})

	// Bands west to east: main crop, intercrop, trees.
	mainFrac := rec.LayoutPlan.MainCropAreaPct / 100
	interFrac := rec.LayoutPlan.IntercropAreaPct / 100

	cut1 := minLon + (maxLon-minLon)*mainFrac
	cut2 := cut1 + (maxLon-minLon)*interFrac

	fc.Features = append(fc.Features,
		Feature{
			Type: "Feature",
			Properties: map[string]any{
				"zone":     "main_crop",
				"crops":    rec.AgroforestrySystem.MainCrops,
				"area_pct": rec.LayoutPlan.MainCropAreaPct,
			},
			Geometry: rect(minLon, minLat, cut1, maxLat),
		},
		Feature{
			Type: "Feature",
			Properties: map[string]any{
				"zone":     "intercrop",
				"crops":    rec.AgroforestrySystem.Intercrops,
				"area_pct": rec.LayoutPlan.IntercropAreaPct,
			},
			Geometry: rect(cut1, minLat, cut2, maxLat),
		},
		Feature{
			Type: "Feature",
			Properties: map[string]any{
				"zone":     "trees",
				"crops":    rec.AgroforestrySystem.Trees,
				"area_pct": rec.LayoutPlan.TreeAreaPct,
			},
			Geometry: rect(cut2, minLat, maxLon, maxLat),
		},
	)
	return fc
}

func rect(minLon, minLat, maxLon, maxLat float64) Geometry {
	return Geometry{
		Type: "Polygon",
		Coordinates: [][][2]float64{{
			{minLon, minLat},
			{maxLon, minLat},
			{maxLon, maxLat},
			{minLon, maxLat},
			{minLon, minLat},
		}},
	}
}
