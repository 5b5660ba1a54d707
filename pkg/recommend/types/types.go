package types

// Location is a point on the farm, WGS84.
type Location struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name,omitempty"`
}

// SoilInput holds normalized topsoil properties. Percentages need not sum
// to exactly 100 (best-effort external data).
type SoilInput struct {
	PH            float64 `json:"ph"`
	OrganicCarbon float64 `json:"organic_carbon"` // %
	Nitrogen      float64 `json:"nitrogen"`       // kg/ha
	CEC           float64 `json:"cec"`
	SandPct       float64 `json:"sand_pct"`
	SiltPct       float64 `json:"silt_pct"`
	ClayPct       float64 `json:"clay_pct"`
}

type WeatherInput struct {
	AvgTemperatureC float64 `json:"avg_temperature_c"`
	AvgHumidityPct  float64 `json:"avg_humidity_pct"`
	AvgRainfallMm   float64 `json:"avg_rainfall_mm"` // annualized
	SolarRadiation  float64 `json:"solar_radiation"` // kWh/m2/day
}

type EconomicInput struct {
	LandAreaAcres      float64 `json:"land_area_acres"`
	InvestmentCapacity string  `json:"investment_capacity"` // low|medium|high
	BudgetInr          float64 `json:"budget_inr,omitempty"`
}

// FarmerInput is the raw request payload snapshot stored with a prediction.
type FarmerInput struct {
	Location           Location `json:"location"`
	LandAreaAcres      float64  `json:"land_area_acres"`
	InvestmentCapacity string   `json:"investment_capacity"`
	BudgetInr          float64  `json:"budget_inr"`
}

type SoilSummary struct {
	PH            float64 `json:"ph"`
	OrganicCarbon float64 `json:"organic_carbon"`
	Nitrogen      float64 `json:"nitrogen"`
	CEC           float64 `json:"cec"`
	SandPct       float64 `json:"sand_pct"`
	SiltPct       float64 `json:"silt_pct"`
	ClayPct       float64 `json:"clay_pct"`
	Texture       string  `json:"texture"`
	Drainage      string  `json:"drainage"`
}

type ClimateSummary struct {
	AvgTemperatureC float64 `json:"avg_temperature_c"`
	AvgHumidityPct  float64 `json:"avg_humidity_pct"`
	AvgRainfallMm   float64 `json:"avg_rainfall_mm"`
	SolarRadiation  float64 `json:"solar_radiation"`
	ElevationM      float64 `json:"elevation_m"`
}

type AgroforestrySystem struct {
	Trees      []string `json:"trees"`
	MainCrops  []string `json:"main_crops"`
	Intercrops []string `json:"intercrops"`
	Herbs      []string `json:"herbs"`
}

type LayoutPlan struct {
	Pattern          string  `json:"pattern"`
	Description      string  `json:"description"`
	Spacing          string  `json:"spacing"`
	MainCropAreaPct  float64 `json:"main_crop_area_pct"`
	IntercropAreaPct float64 `json:"intercrop_area_pct"`
	TreeAreaPct      float64 `json:"tree_area_pct"`
}

type IncomeShare struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"` // main_crop|intercrop|tree
	AnnualIncomeInr float64 `json:"annual_income_inr"`
}

type CropPrice struct {
	MinInr float64 `json:"min_inr"`
	MaxInr float64 `json:"max_inr"`
	AvgInr float64 `json:"avg_inr"`
}

type EconomicProjection struct {
	InvestmentTier          string               `json:"investment_tier"`
	EstimatedInvestmentInr  float64              `json:"estimated_investment_inr"`
	ExpectedAnnualIncomeInr float64              `json:"expected_annual_income_inr"`
	ROI                     string               `json:"roi"` // e.g. "3.4x"
	PaybackPeriodMonths     int                  `json:"payback_period_months"`
	IncomeBreakdown         []IncomeShare        `json:"income_breakdown"`
	PriceOutlook            map[string]CropPrice `json:"price_outlook,omitempty"`
}

type SustainabilityMetrics struct {
	CarbonSequestration string `json:"carbon_sequestration"`
	WaterConservation   string `json:"water_conservation"`
	SoilHealthOutlook   string `json:"soil_health_outlook"`
}

// Recommendation is immutable once produced; a new request yields a new value.
type Recommendation struct {
	Location              Location              `json:"location"`
	SoilSummary           SoilSummary           `json:"soil_summary"`
	ClimateSummary        ClimateSummary        `json:"climate_summary"`
	AgroforestrySystem    AgroforestrySystem    `json:"agroforestry_system"`
	LayoutPlan            LayoutPlan            `json:"layout_plan"`
	EconomicProjection    EconomicProjection    `json:"economic_projection"`
	SustainabilityMetrics SustainabilityMetrics `json:"sustainability_metrics"`
	SoilImprovementTips   []string              `json:"soil_improvement_tips"`
	NextSteps             []string              `json:"next_steps"`
}

// PredictionFigures are the ML-side numbers, whichever tier produced them.
type PredictionFigures struct {
	YieldKgPerAcre float64 `json:"yield_kg_per_acre"`
	Roi            float64 `json:"roi"`
	Confidence     float64 `json:"confidence"`
}
