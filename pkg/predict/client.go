package predict

import "context"

// Request is the wire body for the external prediction endpoint.
type Request struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	LandAreaAcres float64 `json:"land_area_acres"`
	Soil          struct {
		PH            float64 `json:"ph"`
		OrganicCarbon float64 `json:"organic_carbon"`
		Nitrogen      float64 `json:"nitrogen"`
		Phosphorus    float64 `json:"phosphorus"`
		Potassium     float64 `json:"potassium"`
	} `json:"soil"`
	BudgetInr float64 `json:"budget_inr"`
}

type Response struct {
	Predictions struct {
		YieldKgPerAcre float64 `json:"yield_kg_per_acre"`
		Roi            float64 `json:"roi"`
		Confidence     float64 `json:"confidence"`
	} `json:"predictions"`
	WeatherData     map[string]float64 `json:"weather_data"`
	Recommendations struct {
		BestCrop        string `json:"best_crop"`
		PlantingTime    string `json:"planting_time"`
		IrrigationNeeds string `json:"irrigation_needs"`
	} `json:"recommendations"`
}

type Client interface {
	PredictRealtime(ctx context.Context, req Request) (*Response, error)
}
