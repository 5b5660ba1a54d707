package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"raitha/entities"
	"raitha/pkg/agro"
	"raitha/pkg/envdata"
	"raitha/pkg/predict"
	"raitha/pkg/recommend/types"
)

type fakeSoil struct {
	out types.SoilInput
	err error
}

func (f fakeSoil) Fetch(context.Context, float64, float64) (types.SoilInput, error) {
	return f.out, f.err
}

type fakeWeather struct {
	out types.WeatherInput
	err error
}

func (f fakeWeather) Fetch(context.Context, float64, float64) (types.WeatherInput, error) {
	return f.out, f.err
}

type fakeElevation struct {
	out float64
	err error
}

func (f fakeElevation) Fetch(context.Context, float64, float64) (float64, error) {
	return f.out, f.err
}

type fakePredictor struct {
	resp *predict.Response
	err  error
	got  *predict.Request
}

func (f *fakePredictor) PredictRealtime(_ context.Context, req predict.Request) (*predict.Response, error) {
	f.got = &req
	return f.resp, f.err
}

type fakePredRepo struct {
	created *entities.PredictionRecord
	err     error
}

func (f *fakePredRepo) Create(p *entities.PredictionRecord) error {
	if f.err != nil {
		return f.err
	}
	p.ID = "pred-1"
	f.created = p
	return nil
}
func (f *fakePredRepo) FindByID(string) (*entities.PredictionRecord, error) {
	return f.created, nil
}
func (f *fakePredRepo) MarkFeedbackReceived(string) error { return nil }

func newTestSvc(soil fakeSoil, wx fakeWeather, ele fakeElevation, p predict.Client, repo *fakePredRepo) *RecommendSvc {
	return NewRecommendService(soil, wx, ele, agro.New(nil), p, repo, nil, zap.NewNop().Sugar())
}

func TestRecommendAllFetchersFailUsesExactFallbacks(t *testing.T) {
	boom := errors.New("down")
	repo := &fakePredRepo{}
	svc := newTestSvc(
		fakeSoil{err: boom},
		fakeWeather{err: boom},
		fakeElevation{err: boom},
		&fakePredictor{err: boom},
		repo,
	)

	res := svc.Recommend(context.Background(), "farmer-1", types.FarmerInput{
		Location:           types.Location{Lat: 12.97, Lon: 77.59},
		LandAreaAcres:      2,
		InvestmentCapacity: "medium",
	})
	require.NotNil(t, res)

	fb := envdata.FallbackSoil()
	assert.Equal(t, fb.PH, res.Recommendation.SoilSummary.PH)
	assert.Equal(t, fb.Nitrogen, res.Recommendation.SoilSummary.Nitrogen)
	assert.Equal(t, envdata.FallbackWeather().AvgRainfallMm, res.Recommendation.ClimateSummary.AvgRainfallMm)
	assert.Equal(t, envdata.FallbackElevationM, res.Recommendation.ClimateSummary.ElevationM)

	// remote model down: local figures, no advice overlay
	assert.Equal(t, 2500.0, res.Predictions.YieldKgPerAcre)
	assert.InDelta(t, 120000.0/35000.0, res.Predictions.Roi, 0.0001)
	assert.Equal(t, 0.6, res.Predictions.Confidence)
	assert.Nil(t, res.Advice)

	// still persisted with the fallback-derived snapshot
	require.NotNil(t, repo.created)
	assert.Equal(t, "pred-1", res.PredictionID)
	assert.Equal(t, "farmer-1", repo.created.FarmerUID)
	assert.Equal(t, envdata.FallbackWeather(), repo.created.WeatherSnapshot)
}

func TestRecommendRemoteModelOverlay(t *testing.T) {
	resp := &predict.Response{}
	resp.Predictions.YieldKgPerAcre = 3100
	resp.Predictions.Roi = 3.1
	resp.Predictions.Confidence = 0.82
	resp.Recommendations.BestCrop = "Cotton"
	resp.Recommendations.PlantingTime = "May-June"
	resp.Recommendations.IrrigationNeeds = "High"
	predictor := &fakePredictor{resp: resp}

	svc := newTestSvc(
		fakeSoil{out: types.SoilInput{PH: 6.5, OrganicCarbon: 1.1, Nitrogen: 140, CEC: 14, SandPct: 40, SiltPct: 30, ClayPct: 30}},
		fakeWeather{out: types.WeatherInput{AvgTemperatureC: 27, AvgHumidityPct: 60, AvgRainfallMm: 900, SolarRadiation: 5.2}},
		fakeElevation{out: 650},
		predictor,
		&fakePredRepo{},
	)

	res := svc.Recommend(context.Background(), "farmer-2", types.FarmerInput{
		Location:      types.Location{Lat: 15, Lon: 76},
		LandAreaAcres: 3,
		BudgetInr:     40000,
	})

	assert.Equal(t, 3100.0, res.Predictions.YieldKgPerAcre)
	require.NotNil(t, res.Advice)
	assert.Equal(t, "Cotton", res.Advice.BestCrop)

	// wire contract carries the model service's own P/K defaults
	require.NotNil(t, predictor.got)
	assert.Equal(t, 30.0, predictor.got.Soil.Phosphorus)
	assert.Equal(t, 150.0, predictor.got.Soil.Potassium)
	assert.Equal(t, 6.5, predictor.got.Soil.PH)
	assert.Equal(t, 40000.0, predictor.got.BudgetInr)
}

func TestRecommendStoreFailureStillDelivers(t *testing.T) {
	repo := &fakePredRepo{err: errors.New("disk full")}
	svc := newTestSvc(
		fakeSoil{out: envdata.FallbackSoil()},
		fakeWeather{out: envdata.FallbackWeather()},
		fakeElevation{out: 500},
		predict.NewMock(),
		repo,
	)

	res := svc.Recommend(context.Background(), "farmer-3", types.FarmerInput{LandAreaAcres: 1})
	require.NotNil(t, res)
	assert.Empty(t, res.PredictionID)
	assert.NotEmpty(t, res.Recommendation.AgroforestrySystem.MainCrops)
}
