package classification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/allermind/verdict/internal/observability"
	apperrors "github.com/allermind/verdict/pkg/errors"
)

// Request captures the payload accepted by the classification service.
type Request struct {
	UserID                string          `json:"userId"`
	Age                   *int            `json:"age"`
	Gender                string          `json:"gender"`
	Latitude              *float64        `json:"latitude"`
	Longitude             *float64        `json:"longitude"`
	ClinicalDiagnosis     string          `json:"clinicalDiagnosis"`
	FamilyAllergyHistory  bool            `json:"familyAllergyHistory"`
	PreviousReactions     map[string]bool `json:"previousAllergicReactions"`
	CurrentMedications    []string        `json:"currentMedications"`
	TreePollenAllergies   map[string]bool `json:"treePollenAllergies"`
	GrassPollenAllergies  map[string]bool `json:"grassPollenAllergies"`
	WeedPollenAllergies   map[string]bool `json:"weedPollenAllergies"`
	FoodAllergies         map[string]bool `json:"foodAllergies"`
	EnvironmentalTriggers map[string]bool `json:"environmentalTriggers"`
}

// Config tunes the classification service.
type Config struct {
	CacheTTL time.Duration
}

// Service exposes the allergy group classification capabilities.
type Service interface {
	Classify(ctx context.Context, req Request) (Result, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (Result, error)
}

type service struct {
	cfg     Config
	repo    Repository
	store   Store
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewService wires up the classification domain.
func NewService(cfg Config, repo Repository, store Store, metrics *observability.Metrics, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		repo:    repo,
		store:   store,
		metrics: metrics,
		logger:  logger.With("component", "classification.service"),
	}
}

// Classify validates the request, runs the decision matrix, persists
// the profile, and caches the result.
func (s *service) Classify(ctx context.Context, req Request) (Result, error) {
	userID, profile, err := buildProfile(req)
	if err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeValidation, "invalid classification request", err)
	}

	result := Classify(profile)
	result.UserID = userID

	if err := s.repo.SaveProfile(ctx, userID, profile); err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "persist profile failed", err)
	}
	if err := s.store.SaveResult(ctx, result, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("classification cache write failed", "userId", userID, "error", err)
	}

	s.metrics.Classifications.Inc()
	s.logger.Info("profile classified", "userId", userID, "group", result.GroupName, "reason", result.AssignmentReason)
	return result, nil
}

// GetByUserID returns the cached classification or recomputes it from
// the stored profile. Classification is a pure function of the
// profile, so a recompute always reproduces the persisted outcome.
func (s *service) GetByUserID(ctx context.Context, userID uuid.UUID) (Result, error) {
	if cached, ok, err := s.store.GetResult(ctx, userID); err != nil {
		s.logger.Warn("classification cache read failed", "userId", userID, "error", err)
	} else if ok {
		return cached, nil
	}

	profile, found, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "load profile failed", err)
	}
	if !found {
		return Result{}, apperrors.Wrap(apperrors.CodeNotFound, "no stored profile for user", nil)
	}

	result := Classify(profile)
	result.UserID = userID
	if err := s.store.SaveResult(ctx, result, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("classification cache write failed", "userId", userID, "error", err)
	}
	return result, nil
}

func buildProfile(req Request) (uuid.UUID, Profile, error) {
	var userID uuid.UUID
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			return uuid.Nil, Profile{}, err
		}
		userID = parsed
	} else {
		userID = uuid.New()
	}

	if req.Age == nil {
		return uuid.Nil, Profile{}, errMissingField("age")
	}
	age, err := NewAge(*req.Age)
	if err != nil {
		return uuid.Nil, Profile{}, err
	}

	gender, err := ParseGender(req.Gender)
	if err != nil {
		return uuid.Nil, Profile{}, err
	}

	if req.Latitude == nil || req.Longitude == nil {
		return uuid.Nil, Profile{}, errMissingField("location")
	}
	location, err := NewLocation(*req.Latitude, *req.Longitude)
	if err != nil {
		return uuid.Nil, Profile{}, err
	}

	diagnosis, err := ParseDiagnosis(req.ClinicalDiagnosis)
	if err != nil {
		return uuid.Nil, Profile{}, err
	}

	reactions := make(map[Reaction]bool, len(req.PreviousReactions))
	for key, value := range req.PreviousReactions {
		reaction, err := ParseReaction(key)
		if err != nil {
			return uuid.Nil, Profile{}, err
		}
		reactions[reaction] = value
	}

	medications := make(map[string]bool, len(req.CurrentMedications))
	for _, med := range req.CurrentMedications {
		medications[med] = true
	}

	tree, err := parseTaxonFlags(req.TreePollenAllergies, CategoryTree)
	if err != nil {
		return uuid.Nil, Profile{}, err
	}
	grass, err := parseTaxonFlags(req.GrassPollenAllergies, CategoryGrass)
	if err != nil {
		return uuid.Nil, Profile{}, err
	}
	weed, err := parseTaxonFlags(req.WeedPollenAllergies, CategoryWeed)
	if err != nil {
		return uuid.Nil, Profile{}, err
	}

	foods := make(map[Food]bool, len(req.FoodAllergies))
	for key, value := range req.FoodAllergies {
		food, err := ParseFood(key)
		if err != nil {
			return uuid.Nil, Profile{}, err
		}
		foods[food] = value
	}

	triggers := make(map[Trigger]bool, len(req.EnvironmentalTriggers))
	for key, value := range req.EnvironmentalTriggers {
		trigger, err := ParseTrigger(key)
		if err != nil {
			return uuid.Nil, Profile{}, err
		}
		triggers[trigger] = value
	}

	return userID, Profile{
		Age:            age,
		Gender:         gender,
		Location:       location,
		Diagnosis:      diagnosis,
		FamilyHistory:  req.FamilyAllergyHistory,
		Reactions:      reactions,
		Medications:    medications,
		TreeAllergies:  tree,
		GrassAllergies: grass,
		WeedAllergies:  weed,
		FoodAllergies:  foods,
		Triggers:       triggers,
	}, nil
}

func parseTaxonFlags(flags map[string]bool, category TaxonCategory) (map[Taxon]bool, error) {
	out := make(map[Taxon]bool, len(flags))
	for key, value := range flags {
		taxon, err := ParseTaxon(key)
		if err != nil {
			return nil, err
		}
		if taxon.Category() != category {
			return nil, errWrongCategory(taxon, category)
		}
		out[taxon] = value
	}
	return out, nil
}

type fieldError struct{ field string }

func (e fieldError) Error() string { return "missing required field: " + e.field }

func errMissingField(field string) error { return fieldError{field: field} }

type categoryError struct {
	taxon    Taxon
	category TaxonCategory
}

func (e categoryError) Error() string {
	return "taxon " + string(e.taxon) + " does not belong to the " + string(e.category) + " category"
}

func errWrongCategory(taxon Taxon, category TaxonCategory) error {
	return categoryError{taxon: taxon, category: category}
}
