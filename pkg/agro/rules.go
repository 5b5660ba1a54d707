package agro

import (
	"fmt"
	"math"

	"raitha/pkg/recommend/types"
)

// Texture classes. Ties break in check order: sand first, then clay, silt.
const (
	TextureSandy = "Sandy"
	TextureClay  = "Clay"
	TextureSilty = "Silty"
	TextureLoamy = "Loamy"
)

const (
	DrainageWell     = "Well Drained"
	DrainagePoor     = "Poorly Drained"
	DrainageModerate = "Moderately Drained"
)

const (
	PatternBoundary    = "Boundary Planting"
	PatternMultistorey = "Multistorey System"
	PatternAlley       = "Alley Cropping"
)

// Engine derives a full Recommendation from normalized inputs. It is pure:
// no I/O, no randomness, no clock. Identical inputs yield identical output.
type Engine struct {
	prices map[string]types.CropPrice
}

func New(prices map[string]types.CropPrice) *Engine {
	return &Engine{prices: prices}
}

// ClassifyTexture maps sand/silt/clay percentages to a texture class.
// When all three are absent (zero) the class defaults to Loamy.
func ClassifyTexture(sand, silt, clay float64) string {
	if sand == 0 && silt == 0 && clay == 0 {
		return TextureLoamy
	}
	switch {
	case sand > 70:
		return TextureSandy
	case clay > 40:
		return TextureClay
	case silt > 40:
		return TextureSilty
	default:
		return TextureLoamy
	}
}

// ClassifyDrainage maps texture (plus raw clay share) to a drainage class.
func ClassifyDrainage(texture string, clay float64) string {
	switch {
	case texture == TextureSandy:
		return DrainageWell
	case texture == TextureClay || clay > 40:
		return DrainagePoor
	default:
		return DrainageModerate
	}
}

// Derive produces the Recommendation for one request.
func (e *Engine) Derive(loc types.Location, soil types.SoilInput, weather types.WeatherInput, econ types.EconomicInput, elevationM float64) types.Recommendation {
	texture := ClassifyTexture(soil.SandPct, soil.SiltPct, soil.ClayPct)
	drainage := ClassifyDrainage(texture, soil.ClayPct)

	system := types.AgroforestrySystem{
		MainCrops:  matchCrops(mainCropRules, soil, weather, fallbackMainCrop),
		Intercrops: matchCrops(intercropRules, soil, weather, fallbackIntercrop),
		Herbs:      matchCrops(herbRules, soil, weather, fallbackHerb),
		Trees:      matchTrees(treeRules, soil, weather, drainage, fallbackTree),
	}

	return types.Recommendation{
		Location: loc,
		SoilSummary: types.SoilSummary{
			PH:            soil.PH,
			OrganicCarbon: soil.OrganicCarbon,
			Nitrogen:      soil.Nitrogen,
			CEC:           soil.CEC,
			SandPct:       soil.SandPct,
			SiltPct:       soil.SiltPct,
			ClayPct:       soil.ClayPct,
			Texture:       texture,
			Drainage:      drainage,
		},
		ClimateSummary: types.ClimateSummary{
			AvgTemperatureC: weather.AvgTemperatureC,
			AvgHumidityPct:  weather.AvgHumidityPct,
			AvgRainfallMm:   weather.AvgRainfallMm,
			SolarRadiation:  weather.SolarRadiation,
			ElevationM:      elevationM,
		},
		AgroforestrySystem:    system,
		LayoutPlan:            buildLayout(texture, weather.AvgRainfallMm),
		EconomicProjection:    e.buildProjection(econ, system),
		SustainabilityMetrics: buildSustainability(soil.OrganicCarbon, weather.AvgRainfallMm),
		SoilImprovementTips:   buildSoilTips(soil),
		NextSteps:             buildNextSteps(),
	}
}

// LocalFigures synthesizes prediction figures from the economics table when
// the remote model is unreachable.
func (e *Engine) LocalFigures(econ types.EconomicInput) types.PredictionFigures {
	t := tierFor(econ.InvestmentCapacity)
	return types.PredictionFigures{
		YieldKgPerAcre: 2500,
		Roi:            t.IncomeInr / t.InvestmentInr,
		Confidence:     0.6,
	}
}

func matchCrops(rules []cropRule, soil types.SoilInput, weather types.WeatherInput, fallback string) []string {
	var out []string
	for _, r := range rules {
		if soil.PH < r.PHMin || soil.PH > r.PHMax {
			continue
		}
		if weather.AvgRainfallMm < r.RainMin || weather.AvgRainfallMm > r.RainMax {
			continue
		}
		if weather.AvgTemperatureC < r.TempMin || weather.AvgTemperatureC > r.TempMax {
			continue
		}
		if r.NitrogenMin > 0 && soil.Nitrogen < r.NitrogenMin {
			continue
		}
		out = append(out, r.Name)
	}
	if len(out) == 0 {
		out = append(out, fallback)
	}
	return out
}

func matchTrees(rules []treeRule, soil types.SoilInput, weather types.WeatherInput, drainage, fallback string) []string {
	var out []string
	for _, r := range rules {
		if soil.PH < r.PHMin || soil.PH > r.PHMax {
			continue
		}
		if weather.AvgRainfallMm < r.RainMin || weather.AvgRainfallMm > r.RainMax {
			continue
		}
		if weather.AvgTemperatureC < r.TempMin || weather.AvgTemperatureC > r.TempMax {
			continue
		}
		if len(r.Drainage) > 0 && !contains(r.Drainage, drainage) {
			continue
		}
		out = append(out, r.Name)
	}
	if len(out) == 0 {
		out = append(out, fallback)
	}
	return out
}

func buildLayout(texture string, rainfallMm float64) types.LayoutPlan {
	pattern := PatternAlley
	if texture == TextureSandy && rainfallMm < 600 {
		pattern = PatternBoundary
	} else if rainfallMm > 1200 {
		pattern = PatternMultistorey
	}
	desc := layoutDescriptions[pattern]
	return types.LayoutPlan{
		Pattern:          pattern,
		Description:      desc[0],
		Spacing:          desc[1],
		MainCropAreaPct:  60,
		IntercropAreaPct: 25,
		TreeAreaPct:      15,
	}
}

func tierFor(capacity string) investmentTier {
	if t, ok := investmentTiers[capacity]; ok {
		return t
	}
	return investmentTiers["medium"]
}

func (e *Engine) buildProjection(econ types.EconomicInput, system types.AgroforestrySystem) types.EconomicProjection {
	tierName := econ.InvestmentCapacity
	if _, ok := investmentTiers[tierName]; !ok {
		tierName = "medium"
	}
	t := investmentTiers[tierName]

	breakdown := make([]types.IncomeShare, 0, len(system.MainCrops)+len(system.Intercrops)+len(system.Trees))
	perMain := t.IncomeInr * mainCropIncomeShare / float64(len(system.MainCrops))
	for _, name := range system.MainCrops {
		breakdown = append(breakdown, types.IncomeShare{Name: name, Category: "main_crop", AnnualIncomeInr: perMain})
	}
	perInter := t.IncomeInr * intercropIncomeShare / float64(len(system.Intercrops))
	for _, name := range system.Intercrops {
		breakdown = append(breakdown, types.IncomeShare{Name: name, Category: "intercrop", AnnualIncomeInr: perInter})
	}
	perTree := t.IncomeInr * treeIncomeShare / float64(len(system.Trees))
	for _, name := range system.Trees {
		breakdown = append(breakdown, types.IncomeShare{Name: name, Category: "tree", AnnualIncomeInr: perTree})
	}

	proj := types.EconomicProjection{
		InvestmentTier:          tierName,
		EstimatedInvestmentInr:  t.InvestmentInr,
		ExpectedAnnualIncomeInr: t.IncomeInr,
		ROI:                     fmt.Sprintf("%.1fx", t.IncomeInr/t.InvestmentInr),
		PaybackPeriodMonths:     int(math.Round(t.InvestmentInr / (t.IncomeInr / 12))),
		IncomeBreakdown:         breakdown,
	}
	if len(e.prices) > 0 {
		outlook := map[string]types.CropPrice{}
		for _, sh := range breakdown {
			if p, ok := e.prices[sh.Name]; ok {
				outlook[sh.Name] = p
			}
		}
		if len(outlook) > 0 {
			proj.PriceOutlook = outlook
		}
	}
	return proj
}

// Sustainability outputs are banded range strings, not computed values.
func buildSustainability(organicCarbon, rainfallMm float64) types.SustainabilityMetrics {
	m := types.SustainabilityMetrics{}
	if organicCarbon > 1.5 {
		m.CarbonSequestration = "4-6 tons CO2/acre/year"
		m.SoilHealthOutlook = "Good: maintain with residue recycling"
	} else {
		m.CarbonSequestration = "2-4 tons CO2/acre/year"
		m.SoilHealthOutlook = "Improving: 2-3 years with compost and green manure"
	}
	switch {
	case rainfallMm > 1000:
		m.WaterConservation = "30-40% runoff capture potential"
	case rainfallMm < 500:
		m.WaterConservation = "Critical: mulching and micro-irrigation required"
	default:
		m.WaterConservation = "20-30% improvement with drip irrigation"
	}
	return m
}

// Tips fire in a fixed order; multiple conditions can all hold. The last two
// generic tips are always present.
func buildSoilTips(soil types.SoilInput) []string {
	var tips []string
	if soil.PH < 6.0 {
		tips = append(tips, "Soil is acidic: apply agricultural lime at 200-400 kg/acre before sowing")
	}
	if soil.PH > 7.5 {
		tips = append(tips, "Soil is alkaline: work in organic matter and gypsum to lower pH")
	}
	if soil.OrganicCarbon < 1.0 {
		tips = append(tips, "Organic carbon is low: apply 2-3 tons of compost or farmyard manure per acre")
	}
	if soil.Nitrogen < 150 {
		tips = append(tips, "Nitrogen is low: grow legume intercrops and apply neem cake")
	}
	if soil.CEC < 10 {
		tips = append(tips, "Nutrient holding capacity is low: build organic matter to raise CEC")
	}
	tips = append(tips,
		"Rotate crops every two seasons to break pest cycles",
		"Mulch crop residues to retain moisture and suppress weeds",
	)
	return tips
}

func buildNextSteps() []string {
	return []string{
		"Collect a composite soil sample and confirm lab pH before planting",
		"Prepare tree rows and pits ahead of the monsoon",
		"Source saplings and certified seed from a registered nursery",
		"Record observations after each season to improve future advisories",
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
