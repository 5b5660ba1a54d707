package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"raitha/entities"
	"raitha/pkg/agro"
	"raitha/pkg/envdata"
	"raitha/pkg/predict"
	predrepo "raitha/pkg/prediction/repository"
	"raitha/pkg/recommend/types"
)

type soilFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (types.SoilInput, error)
}
type weatherFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (types.WeatherInput, error)
}
type elevationFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (float64, error)
}
type kbSearcher interface {
	Search(query string, k int) ([]entities.ArticleChunk, error)
	ArticlesMeta(ids []uint) (map[uint]entities.Article, error)
}

// Advice is the overlay from the remote model, present only when the remote
// tier answered.
type Advice struct {
	BestCrop        string `json:"best_crop"`
	PlantingTime    string `json:"planting_time"`
	IrrigationNeeds string `json:"irrigation_needs"`
}

// Result is what one prediction request produces. PredictionID is empty when
// the best-effort persist did not happen.
type Result struct {
	PredictionID   string                  `json:"prediction_id,omitempty"`
	Recommendation types.Recommendation    `json:"recommendation"`
	Predictions    types.PredictionFigures `json:"predictions"`
	Advice         *Advice                 `json:"advice,omitempty"`
	Articles       []entities.ArticleRef   `json:"articles,omitempty"`
}

type RecommendSvc struct {
	soil      soilFetcher
	weather   weatherFetcher
	elevation elevationFetcher
	engine    *agro.Engine
	predictor predict.Client
	repoPred  predrepo.PredictionRepository
	kb        kbSearcher
	log       *zap.SugaredLogger
}

func NewRecommendService(
	soil soilFetcher,
	weather weatherFetcher,
	elevation elevationFetcher,
	engine *agro.Engine,
	predictor predict.Client,
	repoPred predrepo.PredictionRepository,
	kb kbSearcher,
	log *zap.SugaredLogger,
) *RecommendSvc {
	return &RecommendSvc{
		soil:      soil,
		weather:   weather,
		elevation: elevation,
		engine:    engine,
		predictor: predictor,
		repoPred:  repoPred,
		kb:        kb,
		log:       log,
	}
}

// Recommend runs the full pipeline: fan-out fetchers, derive, predict,
// persist. It always returns a usable Result; every external failure
// degrades to a documented fallback and is only visible in the logs.
func (s *RecommendSvc) Recommend(ctx context.Context, uid string, in types.FarmerInput) *Result {
	lat, lon := in.Location.Lat, in.Location.Lon

	var (
		soilIn    types.SoilInput
		weatherIn types.WeatherInput
		elevM     float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.soil.Fetch(gctx, lat, lon)
		if err != nil {
			s.log.Warnw("soil fetch failed, using fallback", "err", err)
			v = envdata.FallbackSoil()
		}
		soilIn = v
		return nil
	})
	g.Go(func() error {
		v, err := s.weather.Fetch(gctx, lat, lon)
		if err != nil {
			s.log.Warnw("weather fetch failed, using fallback", "err", err)
			v = envdata.FallbackWeather()
		}
		weatherIn = v
		return nil
	})
	g.Go(func() error {
		v, err := s.elevation.Fetch(gctx, lat, lon)
		if err != nil {
			s.log.Warnw("elevation fetch failed, using fallback", "err", err)
			v = envdata.FallbackElevationM
		}
		elevM = v
		return nil
	})
	_ = g.Wait() // goroutines never return errors; failures degrade above

	econ := types.EconomicInput{
		LandAreaAcres:      in.LandAreaAcres,
		InvestmentCapacity: in.InvestmentCapacity,
		BudgetInr:          in.BudgetInr,
	}
	rec := s.engine.Derive(in.Location, soilIn, weatherIn, econ, elevM)

	res := &Result{Recommendation: rec}
	res.Predictions, res.Advice = s.predictFigures(ctx, in, soilIn, econ)
	res.Articles = s.lookupArticles(rec)

	record := &entities.PredictionRecord{
		FarmerUID:       uid,
		FarmerInput:     in,
		Predictions:     res.Predictions,
		WeatherSnapshot: weatherIn,
		Recommendations: rec,
	}
	if err := s.repoPred.Create(record); err != nil {
		// Best-effort: the recommendation is still delivered.
		s.log.Errorw("store prediction failed", "err", err)
	} else {
		res.PredictionID = record.ID
	}
	return res
}

// predictFigures tries the remote model first and falls back to locally
// derived figures. Phosphorus/potassium are not part of SoilInput; the wire
// contract wants them, so the model service's own defaults are sent.
func (s *RecommendSvc) predictFigures(ctx context.Context, in types.FarmerInput, soil types.SoilInput, econ types.EconomicInput) (types.PredictionFigures, *Advice) {
	var req predict.Request
	req.Location.Lat = in.Location.Lat
	req.Location.Lng = in.Location.Lon
	req.LandAreaAcres = in.LandAreaAcres
	req.Soil.PH = soil.PH
	req.Soil.OrganicCarbon = soil.OrganicCarbon
	req.Soil.Nitrogen = soil.Nitrogen
	req.Soil.Phosphorus = 30
	req.Soil.Potassium = 150
	req.BudgetInr = in.BudgetInr

	resp, err := s.predictor.PredictRealtime(ctx, req)
	if err != nil {
		s.log.Warnw("remote predict failed, using local figures", "err", err)
		return s.engine.LocalFigures(econ), nil
	}
	figs := types.PredictionFigures{
		YieldKgPerAcre: resp.Predictions.YieldKgPerAcre,
		Roi:            resp.Predictions.Roi,
		Confidence:     resp.Predictions.Confidence,
	}
	return figs, &Advice{
		BestCrop:        resp.Recommendations.BestCrop,
		PlantingTime:    resp.Recommendations.PlantingTime,
		IrrigationNeeds: resp.Recommendations.IrrigationNeeds,
	}
}

func (s *RecommendSvc) lookupArticles(rec types.Recommendation) []entities.ArticleRef {
	if s.kb == nil {
		return nil
	}
	query := rec.SoilSummary.Texture + " " +
		strings.Join(rec.AgroforestrySystem.MainCrops, " ") + " agroforestry intercropping"
	chunks, _ := s.kb.Search(query, 4) // KB is optional context, ignore errors
	if len(chunks) == 0 {
		return nil
	}

	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(chunks))
	for _, ch := range chunks {
		if _, ok := seen[ch.ArticleID]; !ok {
			seen[ch.ArticleID] = struct{}{}
			ids = append(ids, ch.ArticleID)
		}
	}
	meta, err := s.kb.ArticlesMeta(ids)
	if err != nil {
		return nil
	}
	var refs []entities.ArticleRef
	for _, id := range ids {
		if a, ok := meta[id]; ok {
			refs = append(refs, entities.ArticleRef{Title: a.Title, URL: a.SourceURL})
		}
	}
	return refs
}
