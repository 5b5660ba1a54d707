package envdata

import "raitha/pkg/recommend/types"

// Fallback constants substituted at the orchestration boundary when a live
// source is unreachable. Values are fixed by contract; callers compare
// against them in tests.

func FallbackSoil() types.SoilInput {
	return types.SoilInput{
		PH:            6.7,
		OrganicCarbon: 1.2,
		Nitrogen:      150,
		CEC:           12,
		SandPct:       45,
		SiltPct:       35,
		ClayPct:       20,
	}
}

func FallbackWeather() types.WeatherInput {
	return types.WeatherInput{
		AvgTemperatureC: 28,
		AvgHumidityPct:  65,
		AvgRainfallMm:   980,
		SolarRadiation:  5.5,
	}
}

const FallbackElevationM = 500.0
