package predict

import "context"

type mockClient struct{}

// NewMock returns a deterministic stand-in used when no model endpoint is
// configured. Figures mirror the model service's own fallback path.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) PredictRealtime(ctx context.Context, in Request) (*Response, error) {
	out := &Response{}
	out.Predictions.YieldKgPerAcre = 2500
	out.Predictions.Roi = 2.5
	out.Predictions.Confidence = 0.75
	out.Recommendations.BestCrop = "Maize"
	out.Recommendations.PlantingTime = "June-July"
	out.Recommendations.IrrigationNeeds = "Moderate"
	return out, nil
}
