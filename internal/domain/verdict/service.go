package verdict

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/allermind/verdict/internal/domain/classification"
	"github.com/allermind/verdict/internal/observability"
	apperrors "github.com/allermind/verdict/pkg/errors"
)

// ClassificationProvider resolves a user's stored classification.
type ClassificationProvider interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (classification.Result, error)
}

// PollenProvider fetches per-taxon pollen readings for a location.
// An empty list is a valid response.
type PollenProvider interface {
	Fetch(ctx context.Context, lat, lon float64) ([]PollenReading, error)
}

// WeatherProvider fetches the weather and air-quality snapshot for a
// location. A nil snapshot means the location could not be resolved.
type WeatherProvider interface {
	Fetch(ctx context.Context, lat, lon float64) (*EnvironmentalSnapshot, error)
}

// Predictor submits the composite feature request to the remote
// prediction function.
type Predictor interface {
	Predict(ctx context.Context, req FeatureRequest) (Prediction, error)
}

// Config tunes the aggregation service.
type Config struct {
	UpstreamTimeout time.Duration
}

// Service exposes the verdict aggregation capability.
type Service interface {
	BuildVerdict(ctx context.Context, lat, lon string, userID uuid.UUID) (Verdict, error)
}

type service struct {
	cfg            Config
	classification ClassificationProvider
	pollen         PollenProvider
	weather        WeatherProvider
	predictor      Predictor
	metrics        *observability.Metrics
	logger         *slog.Logger
}

// NewService wires up the verdict aggregation domain.
func NewService(cfg Config, classProvider ClassificationProvider, pollenProvider PollenProvider, weatherProvider WeatherProvider, predictor Predictor, metrics *observability.Metrics, logger *slog.Logger) Service {
	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = 10 * time.Second
	}
	return &service{
		cfg:            cfg,
		classification: classProvider,
		pollen:         pollenProvider,
		weather:        weatherProvider,
		predictor:      predictor,
		metrics:        metrics,
		logger:         logger.With("component", "verdict.service"),
	}
}

type classificationOutcome struct {
	result classification.Result
	err    error
}

type pollenOutcome struct {
	readings []PollenReading
	err      error
}

type weatherOutcome struct {
	snapshot *EnvironmentalSnapshot
	err      error
}

// BuildVerdict resolves the user's classification and the
// environmental readings concurrently, joins all three results,
// submits the composite request to the predictor, and reduces its
// response into the final verdict. Any upstream failure aborts the
// whole computation; no partial verdict is ever produced.
func (s *service) BuildVerdict(ctx context.Context, lat, lon string, userID uuid.UUID) (Verdict, error) {
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Verdict{}, apperrors.Wrap(apperrors.CodeValidation, "invalid latitude", err)
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Verdict{}, apperrors.Wrap(apperrors.CodeValidation, "invalid longitude", err)
	}
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return Verdict{}, apperrors.Wrap(apperrors.CodeValidation, "coordinates out of range", nil)
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	classCh := make(chan classificationOutcome, 1)
	pollenCh := make(chan pollenOutcome, 1)
	weatherCh := make(chan weatherOutcome, 1)

	go func() {
		result, err := s.fetchClassification(fetchCtx, userID)
		classCh <- classificationOutcome{result: result, err: err}
	}()
	go func() {
		readings, err := s.fetchPollen(fetchCtx, latitude, longitude)
		pollenCh <- pollenOutcome{readings: readings, err: err}
	}()
	go func() {
		snapshot, err := s.fetchWeather(fetchCtx, latitude, longitude)
		weatherCh <- weatherOutcome{snapshot: snapshot, err: err}
	}()

	// Join barrier: the predict call must not be issued before all
	// three upstream results are in. The first failure cancels the
	// remaining in-flight calls.
	var (
		classResult classification.Result
		readings    []PollenReading
		snapshot    *EnvironmentalSnapshot
		fetchErr    error
	)
	for pending := 3; pending > 0; pending-- {
		select {
		case outcome := <-classCh:
			classResult, err = outcome.result, outcome.err
		case outcome := <-pollenCh:
			readings, err = outcome.readings, outcome.err
		case outcome := <-weatherCh:
			snapshot, err = outcome.snapshot, outcome.err
		}
		if err != nil && fetchErr == nil {
			fetchErr = err
			cancel()
		}
	}
	if fetchErr != nil {
		s.metrics.VerdictsComputed.WithLabelValues("failed").Inc()
		return Verdict{}, fetchErr
	}

	features := deriveFeatures(readings, snapshot, s.logger)
	prediction, err := s.fetchPrediction(ctx, FeatureRequest{
		UserClassification: classResult,
		EnvironmentalData:  features,
	})
	if err != nil {
		s.metrics.VerdictsComputed.WithLabelValues("failed").Inc()
		return Verdict{}, err
	}

	v := s.reduce(lat, lon, userID, classResult, prediction)
	outcome := "success"
	if !v.Success {
		outcome = "failed"
	}
	s.metrics.VerdictsComputed.WithLabelValues(outcome).Inc()
	s.logger.Info("verdict computed",
		"predictionId", v.PredictionID,
		"userId", userID,
		"riskLevel", v.OverallRiskLevel,
		"success", v.Success,
	)
	return v, nil
}

func (s *service) fetchClassification(ctx context.Context, userID uuid.UUID) (classification.Result, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.UpstreamTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.classification.GetByUserID(callCtx, userID)
	s.metrics.UpstreamDuration.WithLabelValues("classification").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.UpstreamFailures.WithLabelValues("classification").Inc()
		if apperrors.IsCode(err, apperrors.CodeNotFound) || apperrors.IsCode(err, apperrors.CodeValidation) {
			return classification.Result{}, err
		}
		return classification.Result{}, apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "classification lookup failed", err)
	}
	return result, nil
}

func (s *service) fetchPollen(ctx context.Context, lat, lon float64) ([]PollenReading, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.UpstreamTimeout)
	defer cancel()

	start := time.Now()
	readings, err := s.pollen.Fetch(callCtx, lat, lon)
	s.metrics.UpstreamDuration.WithLabelValues("pollen").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.UpstreamFailures.WithLabelValues("pollen").Inc()
		return nil, apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "pollen fetch failed", err)
	}
	return readings, nil
}

func (s *service) fetchWeather(ctx context.Context, lat, lon float64) (*EnvironmentalSnapshot, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.UpstreamTimeout)
	defer cancel()

	start := time.Now()
	snapshot, err := s.weather.Fetch(callCtx, lat, lon)
	s.metrics.UpstreamDuration.WithLabelValues("weather").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.UpstreamFailures.WithLabelValues("weather").Inc()
		return nil, apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "weather fetch failed", err)
	}
	return snapshot, nil
}

func (s *service) fetchPrediction(ctx context.Context, req FeatureRequest) (Prediction, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.UpstreamTimeout)
	defer cancel()

	start := time.Now()
	prediction, err := s.predictor.Predict(callCtx, req)
	s.metrics.UpstreamDuration.WithLabelValues("predictor").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.UpstreamFailures.WithLabelValues("predictor").Inc()
		return Prediction{}, apperrors.Wrap(apperrors.CodePredictionFailed, "prediction call failed", err)
	}
	return prediction, nil
}

// riskDisplay maps a provider risk level to its emoji and code.
var riskDisplay = map[string]struct {
	Emoji string
	Code  int
}{
	"CRITICAL": {Emoji: "🔴", Code: 4},
	"HIGH":     {Emoji: "🟠", Code: 3},
	"MEDIUM":   {Emoji: "🟡", Code: 2},
	"LOW":      {Emoji: "🟢", Code: 1},
}

func (s *service) reduce(lat, lon string, userID uuid.UUID, classResult classification.Result, prediction Prediction) Verdict {
	v := Verdict{
		PredictionID:   uuid.NewString(),
		UserID:         userID,
		Lat:            lat,
		Lon:            lon,
		Success:        prediction.Success,
		Message:        prediction.Message,
		Prediction:     prediction,
		Classification: classResult,
	}

	switch {
	case len(prediction.Predictions) > 0:
		// The highest prediction value is authoritative; on ties the
		// first encountered entry wins.
		winner := prediction.Predictions[0]
		for _, candidate := range prediction.Predictions[1:] {
			if candidate.PredictionValue > winner.PredictionValue {
				winner = candidate
			}
		}
		v.OverallRiskScore = winner.PredictionValue
		v.OverallRiskLevel = winner.RiskLevel
		v.OverallRiskEmoji = winner.RiskEmoji
		v.OverallRiskCode = winner.RiskCode
		if v.OverallRiskEmoji == "" || v.OverallRiskCode == 0 {
			display, ok := riskDisplay[winner.RiskLevel]
			if !ok {
				display.Emoji, display.Code = "⚪", 0
			}
			v.OverallRiskEmoji = display.Emoji
			v.OverallRiskCode = display.Code
		}
	case prediction.RiskLevel != "":
		v.OverallRiskScore = prediction.RiskScore
		v.OverallRiskLevel = prediction.RiskLevel
		display, ok := riskDisplay[prediction.RiskLevel]
		if !ok {
			display.Emoji, display.Code = "⚪", 0
		}
		v.OverallRiskEmoji = display.Emoji
		v.OverallRiskCode = display.Code
	default:
		// The provider offered neither a prediction list nor a usable
		// level: fall back to the documented LOW default.
		s.logger.Warn("prediction response carried no risk level, defaulting to LOW", "userId", userID)
		v.OverallRiskScore = 0.0
		v.OverallRiskLevel = "LOW"
		v.OverallRiskEmoji = "🟢"
		v.OverallRiskCode = 1
	}

	v.Recommendation = recommendationFor(v.OverallRiskLevel)
	return v
}

func recommendationFor(level string) string {
	switch level {
	case "LOW":
		return "Outdoor activity is fine, general precautions suffice"
	case "MEDIUM":
		return "Be careful, wearing a mask is recommended"
	case "HIGH":
		return "Stay indoors if possible, keep your medication at hand"
	case "CRITICAL":
		return "Do not go outside, contact a doctor in case of emergency"
	default:
		return "Risk assessment unavailable"
	}
}
