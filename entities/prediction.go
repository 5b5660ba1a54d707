package entities

import (
	"time"

	"raitha/pkg/recommend/types"
)

// PredictionRecord is written once per prediction request. FeedbackReceived
// flips to true when a FeedbackRecord later references it; the link is
// advisory, not enforced.
type PredictionRecord struct {
	ID               string                  `gorm:"primaryKey" json:"id"`
	FarmerUID        string                  `gorm:"index" json:"farmer_uid"`
	FarmerInput      types.FarmerInput       `gorm:"serializer:json" json:"farmer_input"`
	Predictions      types.PredictionFigures `gorm:"serializer:json" json:"predictions"`
	WeatherSnapshot  types.WeatherInput      `gorm:"serializer:json" json:"weather_snapshot"`
	Recommendations  types.Recommendation    `gorm:"serializer:json" json:"recommendations"`
	FeedbackReceived bool                    `json:"feedback_received"`
	CreatedAt        time.Time               `json:"created_at"`
}

// FeedbackRecord is created once per farmer submission and never updated.
type FeedbackRecord struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	PredictionID       string    `gorm:"index" json:"prediction_id"`
	Rating             int       `json:"rating"` // 1-5
	ActualYieldKg      *float64  `json:"actual_yield_kg"`
	ActualRoi          *float64  `json:"actual_roi"`
	Comments           string    `json:"comments"`
	RecommendationFlag string    `json:"recommendation_flag"` // followed|partial|ignored
	CreatedAt          time.Time `json:"created_at"`
}

type ModelVersion struct {
	ID        string             `gorm:"primaryKey" json:"id"`
	Name      string             `json:"name"`
	Version   string             `json:"version"`
	Metrics   map[string]float64 `gorm:"serializer:json" json:"metrics,omitempty"`
	Notes     string             `json:"notes"`
	TrainedAt time.Time          `json:"trained_at"`
	CreatedAt time.Time          `json:"created_at"`
}
