package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"raitha/config"
	"raitha/database"
	"raitha/router"

	// Auth
	authCtrlImp "raitha/pkg/auth/controllerImp"

	// Rules + environment data
	"raitha/pkg/agro"
	"raitha/pkg/envdata"

	// Remote model
	"raitha/pkg/predict"

	// Recommendation pipeline
	recCtrlImp "raitha/pkg/recommend/controllerImp"
	recSvcImp "raitha/pkg/recommend/serviceImp"

	// Predictions + feedback
	fbCtrlImp "raitha/pkg/feedback/controllerImp"
	fbRepoImp "raitha/pkg/feedback/repositoryImp"
	fbSvcImp "raitha/pkg/feedback/serviceImp"
	predRepoImp "raitha/pkg/prediction/repositoryImp"

	// Layout map
	lmCtrlImp "raitha/pkg/layoutmap/controllerImp"
	lmRepoImp "raitha/pkg/layoutmap/repositoryImp"
	lmSvcImp "raitha/pkg/layoutmap/serviceImp"

	// Model registry
	mvCtrlImp "raitha/pkg/modelversion/controllerImp"
	mvRepoImp "raitha/pkg/modelversion/repositoryImp"

	// KB
	kbCtrlImp "raitha/pkg/kb/controllerImp"
	kbEmbedder "raitha/pkg/kb/embedder"
	kbRepoImp "raitha/pkg/kb/repositoryImp"
	kbSvcImp "raitha/pkg/kb/serviceImp"

	// Health
	healthCtrlImp "raitha/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Logger
	var zl *zap.Logger
	var err error
	if cfg.LogMode == "prod" {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	// 3) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 4) Rule engine + crop prices
	prices, err := envdata.LoadPriceTable(cfg.PriceTablePath)
	if err != nil {
		logger.Warnw("price table not loaded, using defaults", "path", cfg.PriceTablePath, "err", err)
		prices, _ = envdata.LoadPriceTable("")
	}
	engine := agro.New(prices)

	// 5) Environment data clients
	soil := envdata.NewSoilClient(cfg.SoilAPIURL)
	weather := envdata.NewWeatherClient(cfg.WeatherAPIURL)
	elevation := envdata.NewElevationClient(cfg.ElevationAPIURL)

	// 6) Remote model (mock fallback)
	var predictor predict.Client
	if cfg.PredictEndpoint != "" {
		predictor = predict.NewHTTP(cfg.PredictEndpoint, cfg.PredictAPIKey)
	} else {
		predictor = predict.NewMock()
	}

	// 7) KB wiring
	emb := kbEmbedder.New(
		os.Getenv("EMB_ENDPOINT"),
		os.Getenv("EMB_API_KEY"),
		os.Getenv("EMB_MODEL"),
	)
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbSvcImp.New(kbRepo, emb)
	kbCtrl := kbCtrlImp.New(kbSvc)

	// 8) Repos / services / controllers
	predRepo := predRepoImp.New(db)
	fbRepo := fbRepoImp.New(db)
	mvRepo := mvRepoImp.New(db)
	lmRepo := lmRepoImp.New(db)

	recSvc := recSvcImp.NewRecommendService(soil, weather, elevation, engine, predictor, predRepo, kbSvc, logger)
	recCtrl := recCtrlImp.NewPredictCtrl(recSvc)

	fbSvc := fbSvcImp.NewFeedbackService(fbRepo, predRepo, logger)
	fbCtrl := fbCtrlImp.NewFeedbackCtrl(fbSvc)

	mvCtrl := mvCtrlImp.New(mvRepo)

	lmSvc := lmSvcImp.New(lmRepo, predRepo, logger)
	lmCtrl := lmCtrlImp.New(lmSvc)

	// Auth + Health
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 9) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	r := router.New(
		e,
		recCtrl,
		fbCtrl,
		mvCtrl,
		lmCtrl,
		authCtrl,
		kbCtrl,
		hCtrl,
	)

	// 10) Start
	logger.Infow("listening", "port", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		logger.Fatal(err)
	}
}
