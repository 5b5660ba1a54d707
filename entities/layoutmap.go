package entities

import "time"

// LayoutMap stores the generated land layout geometry for a prediction.
// GeoJSON holds the serialized FeatureCollection.
type LayoutMap struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	PredictionID string    `gorm:"index" json:"prediction_id"`
	Pattern      string    `json:"pattern"`
	GeoJSON      string    `json:"geojson"`
	CreatedAt    time.Time `json:"created_at"`
}
