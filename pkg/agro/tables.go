package agro

// cropRule is one conjunction of numeric-range predicates. A crop is
// suitable when every bound holds. NitrogenMin of 0 means no N requirement.
type cropRule struct {
	Name        string
	PHMin       float64
	PHMax       float64
	RainMin     float64
	RainMax     float64
	TempMin     float64
	TempMax     float64
	NitrogenMin float64
}

// treeRule adds a drainage predicate; an empty Drainage list means any.
type treeRule struct {
	Name     string
	PHMin    float64
	PHMax    float64
	RainMin  float64
	RainMax  float64
	TempMin  float64
	TempMax  float64
	Drainage []string
}

// Rule lists are ordered; evaluation order fixes the output order.
var mainCropRules = []cropRule{
	{Name: "Maize", PHMin: 5.5, PHMax: 7.5, RainMin: 500, RainMax: 1500, TempMin: 15, TempMax: 35, NitrogenMin: 100},
	{Name: "Sorghum", PHMin: 5.5, PHMax: 8.0, RainMin: 300, RainMax: 1000, TempMin: 20, TempMax: 38},
	{Name: "Finger Millet", PHMin: 5.0, PHMax: 7.0, RainMin: 400, RainMax: 1100, TempMin: 18, TempMax: 32},
	{Name: "Paddy", PHMin: 5.0, PHMax: 7.0, RainMin: 1100, RainMax: 3000, TempMin: 20, TempMax: 38},
	{Name: "Cotton", PHMin: 6.0, PHMax: 8.0, RainMin: 500, RainMax: 1100, TempMin: 21, TempMax: 37, NitrogenMin: 120},
}

var intercropRules = []cropRule{
	{Name: "Cowpea", PHMin: 5.5, PHMax: 7.5, RainMin: 400, RainMax: 1200, TempMin: 20, TempMax: 35},
	{Name: "Green Gram", PHMin: 6.0, PHMax: 7.5, RainMin: 350, RainMax: 1000, TempMin: 20, TempMax: 38},
	{Name: "Groundnut", PHMin: 6.0, PHMax: 7.5, RainMin: 500, RainMax: 1250, TempMin: 20, TempMax: 34},
	{Name: "Pigeon Pea", PHMin: 5.5, PHMax: 8.0, RainMin: 600, RainMax: 1400, TempMin: 18, TempMax: 35},
}

var herbRules = []cropRule{
	{Name: "Turmeric", PHMin: 4.5, PHMax: 7.5, RainMin: 1000, RainMax: 2500, TempMin: 20, TempMax: 35},
	{Name: "Ginger", PHMin: 5.5, PHMax: 6.5, RainMin: 1200, RainMax: 3000, TempMin: 19, TempMax: 30},
	{Name: "Lemongrass", PHMin: 5.0, PHMax: 8.0, RainMin: 600, RainMax: 2500, TempMin: 18, TempMax: 35},
	{Name: "Holy Basil", PHMin: 5.5, PHMax: 7.5, RainMin: 500, RainMax: 1500, TempMin: 15, TempMax: 35},
}

var treeRules = []treeRule{
	{Name: "Mango", PHMin: 5.5, PHMax: 7.5, RainMin: 600, RainMax: 2500, TempMin: 20, TempMax: 40, Drainage: []string{DrainageWell, DrainageModerate}},
	{Name: "Gliricidia", PHMin: 5.0, PHMax: 8.0, RainMin: 500, RainMax: 2500, TempMin: 15, TempMax: 35},
	{Name: "Teak", PHMin: 6.0, PHMax: 7.5, RainMin: 800, RainMax: 2500, TempMin: 20, TempMax: 40, Drainage: []string{DrainageWell, DrainageModerate}},
	{Name: "Neem", PHMin: 5.5, PHMax: 8.5, RainMin: 300, RainMax: 1200, TempMin: 20, TempMax: 40},
	{Name: "Moringa", PHMin: 6.0, PHMax: 8.0, RainMin: 400, RainMax: 1500, TempMin: 22, TempMax: 38, Drainage: []string{DrainageWell, DrainageModerate}},
	{Name: "Tamarind", PHMin: 5.5, PHMax: 8.0, RainMin: 500, RainMax: 1500, TempMin: 20, TempMax: 42},
}

// Per-category fallbacks guarantee every recommendation carries at least
// one entry per category.
const (
	fallbackMainCrop  = "Maize"
	fallbackIntercrop = "Cowpea"
	fallbackHerb      = "Lemongrass"
	fallbackTree      = "Gliricidia"
)

type investmentTier struct {
	InvestmentInr float64
	IncomeInr     float64
}

// Fixed three-tier economics table. The medium tier figures are legacy
// constants; do not re-derive them.
var investmentTiers = map[string]investmentTier{
	"low":    {InvestmentInr: 15000, IncomeInr: 50000},
	"medium": {InvestmentInr: 35000, IncomeInr: 120000},
	"high":   {InvestmentInr: 75000, IncomeInr: 280000},
}

// Income split across categories. 40/20/40 are legacy constants.
const (
	mainCropIncomeShare  = 0.40
	intercropIncomeShare = 0.20
	treeIncomeShare      = 0.40
)

var layoutDescriptions = map[string][2]string{
	PatternBoundary:    {"Trees planted along field boundaries, crops inside", "Along perimeter, 3-5m between trees"},
	PatternMultistorey: {"Layered canopy of trees, crops and herbs sharing the plot", "Variable by storey, 8-12m between top-storey trees"},
	PatternAlley:       {"Alternate rows of trees and crops", "5-10m between tree rows"},
}
