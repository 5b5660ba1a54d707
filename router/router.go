package router

import (
	"github.com/labstack/echo/v4"

	"raitha/pkg/middleware"
)

func New(
	e *echo.Echo,
	predictCtrl interface{ Predict(echo.Context) error },
	feedbackCtrl interface {
		Submit(echo.Context) error
		Recent(echo.Context) error
	},
	modelCtrl interface {
		Register(echo.Context) error
		List(echo.Context) error
	},
	layoutCtrl interface{ Get(echo.Context) error },
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/predict", predictCtrl.Predict)
	api.GET("/predictions/:id/layout-map", layoutCtrl.Get)

	api.POST("/predictions/:id/feedback", feedbackCtrl.Submit)
	api.GET("/feedback", feedbackCtrl.Recent)

	api.POST("/models", modelCtrl.Register)
	api.GET("/models", modelCtrl.List)

	// KB endpoints
	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)

	return e
}
