package verdict

import (
	"log/slog"
	"strings"
)

var (
	treeKeywords  = []string{"tree", "birch", "olive", "pine", "oak", "cedar", "alder", "hazel"}
	grassKeywords = []string{"grass", "gram"}
	weedKeywords  = []string{"weed", "ragweed", "mugwort", "plantain", "nettle"}
)

// deriveFeatures reduces the raw environmental snapshot into the
// predictor feature groups. Missing numeric fields default to zero,
// logged rather than escalated: partial environmental data is common
// and should degrade gracefully.
func deriveFeatures(readings []PollenReading, snapshot *EnvironmentalSnapshot, logger *slog.Logger) EnvironmentalFeatures {
	features := EnvironmentalFeatures{
		Pollen: derivePollenFeatures(readings),
	}

	if snapshot == nil {
		logger.Warn("environmental snapshot empty, weather and air quality features defaulted")
		return features
	}

	if snapshot.Weather != nil {
		features.Weather = WeatherFeatures{
			Temperature: snapshot.Weather.Temperature,
			Humidity:    snapshot.Weather.Humidity,
			WindSpeed:   snapshot.Weather.WindSpeed,
			Pressure:    snapshot.Weather.Pressure,
		}
	} else {
		logger.Warn("weather record missing, weather features defaulted")
	}

	if snapshot.AirQuality != nil {
		features.AirQuality = AirQualityFeatures{
			PM25:    snapshot.AirQuality.PM25,
			PM10:    snapshot.AirQuality.PM10,
			O3:      snapshot.AirQuality.Ozone,
			NO2:     snapshot.AirQuality.NO2,
			SO2:     snapshot.AirQuality.SO2,
			CO:      snapshot.AirQuality.CO,
			UVIndex: snapshot.AirQuality.UVIndex,
		}
	} else {
		logger.Warn("air quality record missing, pollutant features defaulted")
	}

	return features
}

func derivePollenFeatures(readings []PollenReading) PollenFeatures {
	features := PollenFeatures{}
	if len(readings) == 0 {
		return features
	}

	for _, reading := range readings {
		features.TotalUPI += reading.UPIValue
		if reading.InSeason {
			features.InSeasonCount++
		}
		switch categoryForCode(reading.Code) {
		case "tree":
			features.TreePollen += reading.UPIValue
		case "grass":
			features.GrassPollen += reading.UPIValue
		case "weed":
			features.WeedPollen += reading.UPIValue
		}
	}

	features.AvgUPI = features.TotalUPI / float64(len(readings))
	features.DiversityIndex = float64(features.InSeasonCount) / float64(len(readings))
	return features
}

// categoryForCode buckets a provider taxon code by keyword match.
// Codes that match nothing still count toward the totals.
func categoryForCode(code string) string {
	lowered := strings.ToLower(code)
	for _, keyword := range weedKeywords {
		if strings.Contains(lowered, keyword) {
			return "weed"
		}
	}
	for _, keyword := range grassKeywords {
		if strings.Contains(lowered, keyword) {
			return "grass"
		}
	}
	for _, keyword := range treeKeywords {
		if strings.Contains(lowered, keyword) {
			return "tree"
		}
	}
	return ""
}
