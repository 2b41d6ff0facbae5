package verdict

import (
	"github.com/google/uuid"

	"github.com/allermind/verdict/internal/domain/classification"
)

// PollenReading is a single taxon measurement from the pollen provider.
type PollenReading struct {
	Code     string  `json:"code"`
	UPIValue float64 `json:"upiValue"`
	InSeason bool    `json:"inSeason"`
}

// Weather carries the meteorological half of an environmental snapshot.
type Weather struct {
	Temperature   float64 `json:"temperature2m"`
	Humidity      float64 `json:"relativeHumidity2m"`
	WindSpeed     float64 `json:"windSpeed10m"`
	Pressure      float64 `json:"surfacePressure"`
	Precipitation float64 `json:"precipitation"`
	CloudCover    float64 `json:"cloudCover"`
	Sunshine      float64 `json:"sunshineDuration"`
}

// AirQuality carries the pollutant half of an environmental snapshot.
type AirQuality struct {
	PM25    float64 `json:"pm25"`
	PM10    float64 `json:"pm10"`
	Ozone   float64 `json:"ozone"`
	NO2     float64 `json:"nitrogenDioxide"`
	SO2     float64 `json:"sulphurDioxide"`
	CO      float64 `json:"carbonMonoxide"`
	CO2     float64 `json:"carbonDioxide"`
	Dust    float64 `json:"dust"`
	UVIndex float64 `json:"uvIndex"`
}

// EnvironmentalSnapshot is the combined weather and air-quality
// reading for a location, fetched fresh per request.
type EnvironmentalSnapshot struct {
	CityName   string      `json:"cityName"`
	Weather    *Weather    `json:"weatherRecord"`
	AirQuality *AirQuality `json:"airQualityRecord"`
}

// PollenFeatures are the aggregate pollen inputs sent to the predictor.
type PollenFeatures struct {
	TotalUPI       float64 `json:"totalUpi"`
	AvgUPI         float64 `json:"avgUpi"`
	TreePollen     float64 `json:"treePollen"`
	GrassPollen    float64 `json:"grassPollen"`
	WeedPollen     float64 `json:"weedPollen"`
	InSeasonCount  int     `json:"inSeasonCount"`
	DiversityIndex float64 `json:"diversityIndex"`
}

// WeatherFeatures are the weather pass-through inputs.
type WeatherFeatures struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Pressure    float64 `json:"pressure"`
}

// AirQualityFeatures are the pollutant pass-through inputs.
type AirQualityFeatures struct {
	PM25    float64 `json:"pm25"`
	PM10    float64 `json:"pm10"`
	O3      float64 `json:"o3"`
	NO2     float64 `json:"no2"`
	SO2     float64 `json:"so2"`
	CO      float64 `json:"co"`
	UVIndex float64 `json:"uvIndex"`
}

// EnvironmentalFeatures bundles the derived feature groups.
type EnvironmentalFeatures struct {
	Pollen     PollenFeatures     `json:"pollen"`
	Weather    WeatherFeatures    `json:"weather"`
	AirQuality AirQualityFeatures `json:"airQuality"`
}

// FeatureRequest is the composite payload submitted to the
// prediction provider.
type FeatureRequest struct {
	UserClassification classification.Result `json:"userClassification"`
	EnvironmentalData  EnvironmentalFeatures `json:"environmentalData"`
}

// GroupPrediction is one per-group entry in the predictor response.
type GroupPrediction struct {
	GroupID         int     `json:"group_id"`
	GroupName       string  `json:"group_name"`
	PredictionValue float64 `json:"prediction_value"`
	RiskLevel       string  `json:"risk_level"`
	RiskEmoji       string  `json:"risk_emoji"`
	RiskCode        int     `json:"risk_code"`
}

// Prediction is the raw prediction provider response. A success=false
// payload is a normal logical outcome, not a transport error.
type Prediction struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	RiskScore   float64           `json:"riskScore"`
	RiskLevel   string            `json:"riskLevel"`
	Predictions []GroupPrediction `json:"predictions"`
}

// Verdict is the outward risk assessment returned per request.
type Verdict struct {
	PredictionID     string                `json:"predictionId"`
	UserID           uuid.UUID             `json:"userId"`
	Lat              string                `json:"lat"`
	Lon              string                `json:"lon"`
	Success          bool                  `json:"success"`
	Message          string                `json:"message"`
	OverallRiskScore float64               `json:"overallRiskScore"`
	OverallRiskLevel string                `json:"overallRiskLevel"`
	OverallRiskEmoji string                `json:"overallRiskEmoji"`
	OverallRiskCode  int                   `json:"overallRiskCode"`
	Recommendation   string                `json:"recommendation"`
	Prediction       Prediction            `json:"modelPrediction"`
	Classification   classification.Result `json:"classification"`
}

// SimplifiedVerdict is the backward-compatible reduced payload older
// clients still consume.
type SimplifiedVerdict struct {
	PredictionID     string            `json:"predictionId"`
	UserID           string            `json:"userId"`
	Lat              string            `json:"lat"`
	Lon              string            `json:"lon"`
	OverallRiskScore float64           `json:"overallRiskScore"`
	OverallRiskLevel string            `json:"overallRiskLevel"`
	OverallRiskEmoji string            `json:"overallRiskEmoji"`
	Recommendation   string            `json:"recommendation"`
	GroupPredictions []GroupPrediction `json:"groupPredictions"`
}

// Simplified reduces the verdict to the legacy shape.
func (v Verdict) Simplified() SimplifiedVerdict {
	return SimplifiedVerdict{
		PredictionID:     v.PredictionID,
		UserID:           v.UserID.String(),
		Lat:              v.Lat,
		Lon:              v.Lon,
		OverallRiskScore: v.OverallRiskScore,
		OverallRiskLevel: v.OverallRiskLevel,
		OverallRiskEmoji: v.OverallRiskEmoji,
		Recommendation:   v.Recommendation,
		GroupPredictions: v.Prediction.Predictions,
	}
}
