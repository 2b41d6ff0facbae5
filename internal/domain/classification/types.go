package classification

import (
	"fmt"

	"github.com/google/uuid"
)

// Gender is a closed enumeration; unknown values fail parsing.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ParseGender validates a wire value against the closed set.
func ParseGender(value string) (Gender, error) {
	switch Gender(value) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(value), nil
	default:
		return "", fmt.Errorf("unknown gender %q", value)
	}
}

// Diagnosis is the clinical diagnosis reported for a user.
type Diagnosis string

const (
	DiagnosisNone         Diagnosis = "none"
	DiagnosisMildModerate Diagnosis = "mild_moderate_allergy"
	DiagnosisSevere       Diagnosis = "severe_allergy"
	DiagnosisAsthma       Diagnosis = "asthma"
)

// ParseDiagnosis validates a wire value; empty input defaults to none.
func ParseDiagnosis(value string) (Diagnosis, error) {
	if value == "" {
		return DiagnosisNone, nil
	}
	switch Diagnosis(value) {
	case DiagnosisNone, DiagnosisMildModerate, DiagnosisSevere, DiagnosisAsthma:
		return Diagnosis(value), nil
	default:
		return "", fmt.Errorf("unknown clinical diagnosis %q", value)
	}
}

// directGroup maps a diagnosis straight to a group. The zero Group
// means the diagnosis carries no direct assignment.
func (d Diagnosis) directGroup() Group {
	switch d {
	case DiagnosisSevere:
		return GroupSevereAllergic
	case DiagnosisMildModerate, DiagnosisAsthma:
		return GroupMildModerateAllergic
	default:
		return 0
	}
}

// TaxonCategory buckets pollen taxa for category-weighted scoring.
type TaxonCategory string

const (
	CategoryTree  TaxonCategory = "tree"
	CategoryGrass TaxonCategory = "grass"
	CategoryWeed  TaxonCategory = "weed"
)

// Taxon identifies a pollen-producing plant category.
type Taxon string

const (
	TaxonBirch      Taxon = "birch"
	TaxonOlive      Taxon = "olive"
	TaxonPine       Taxon = "pine"
	TaxonOak        Taxon = "oak"
	TaxonCedar      Taxon = "cedar"
	TaxonGraminales Taxon = "graminales"
	TaxonRagweed    Taxon = "ragweed"
	TaxonMugwort    Taxon = "mugwort"
	TaxonPlantain   Taxon = "plantain"
	TaxonNettle     Taxon = "nettle"
)

var taxonCategories = map[Taxon]TaxonCategory{
	TaxonBirch:      CategoryTree,
	TaxonOlive:      CategoryTree,
	TaxonPine:       CategoryTree,
	TaxonOak:        CategoryTree,
	TaxonCedar:      CategoryTree,
	TaxonGraminales: CategoryGrass,
	TaxonRagweed:    CategoryWeed,
	TaxonMugwort:    CategoryWeed,
	TaxonPlantain:   CategoryWeed,
	TaxonNettle:     CategoryWeed,
}

// ParseTaxon validates a wire value against the known taxa.
func ParseTaxon(value string) (Taxon, error) {
	if _, ok := taxonCategories[Taxon(value)]; !ok {
		return "", fmt.Errorf("unknown pollen taxon %q", value)
	}
	return Taxon(value), nil
}

// Category returns the scoring bucket for the taxon.
func (t Taxon) Category() TaxonCategory {
	return taxonCategories[t]
}

// AllTaxa lists every known taxon in a stable order.
func AllTaxa() []Taxon {
	return []Taxon{
		TaxonBirch, TaxonOlive, TaxonPine, TaxonOak, TaxonCedar,
		TaxonGraminales,
		TaxonRagweed, TaxonMugwort, TaxonPlantain, TaxonNettle,
	}
}

// Food identifies a food allergen tracked for cross-reactivity.
type Food string

const (
	FoodApple     Food = "apple"
	FoodCherry    Food = "cherry"
	FoodPear      Food = "pear"
	FoodAlmond    Food = "almond"
	FoodMelon     Food = "melon"
	FoodBanana    Food = "banana"
	FoodCucumber  Food = "cucumber"
	FoodCelery    Food = "celery"
	FoodSpices    Food = "spices"
	FoodHerbs     Food = "herbs"
	FoodNuts      Food = "nuts"
	FoodShellfish Food = "shellfish"
	FoodMilk      Food = "milk"
	FoodEggs      Food = "eggs"
	FoodSoy       Food = "soy"
	FoodWheat     Food = "wheat"
	FoodFish      Food = "fish"
)

var knownFoods = map[Food]struct{}{
	FoodApple: {}, FoodCherry: {}, FoodPear: {}, FoodAlmond: {},
	FoodMelon: {}, FoodBanana: {}, FoodCucumber: {},
	FoodCelery: {}, FoodSpices: {}, FoodHerbs: {},
	FoodNuts: {}, FoodShellfish: {}, FoodMilk: {}, FoodEggs: {},
	FoodSoy: {}, FoodWheat: {}, FoodFish: {},
}

// ParseFood validates a wire value against the known foods.
func ParseFood(value string) (Food, error) {
	if _, ok := knownFoods[Food(value)]; !ok {
		return "", fmt.Errorf("unknown food %q", value)
	}
	return Food(value), nil
}

// Trigger is an environmental sensitivity flag.
type Trigger string

const (
	TriggerDustMites    Trigger = "dust_mites"
	TriggerPetDander    Trigger = "pet_dander"
	TriggerMold         Trigger = "mold"
	TriggerAirPollution Trigger = "air_pollution"
	TriggerSmoke        Trigger = "smoke"
)

// AllTriggers lists the five environmental triggers in a stable order.
func AllTriggers() []Trigger {
	return []Trigger{TriggerDustMites, TriggerPetDander, TriggerMold, TriggerAirPollution, TriggerSmoke}
}

// ParseTrigger validates a wire value against the closed set.
func ParseTrigger(value string) (Trigger, error) {
	switch Trigger(value) {
	case TriggerDustMites, TriggerPetDander, TriggerMold, TriggerAirPollution, TriggerSmoke:
		return Trigger(value), nil
	default:
		return "", fmt.Errorf("unknown environmental trigger %q", value)
	}
}

// Reaction records a previous allergic reaction type.
type Reaction string

const (
	ReactionAnaphylaxis     Reaction = "anaphylaxis"
	ReactionSevereAsthma    Reaction = "severe_asthma"
	ReactionHospitalization Reaction = "hospitalization"
	ReactionSkin            Reaction = "skin_reactions"
	ReactionRespiratory     Reaction = "respiratory_symptoms"
)

// ParseReaction validates a wire value against the closed set.
func ParseReaction(value string) (Reaction, error) {
	switch Reaction(value) {
	case ReactionAnaphylaxis, ReactionSevereAsthma, ReactionHospitalization, ReactionSkin, ReactionRespiratory:
		return Reaction(value), nil
	default:
		return "", fmt.Errorf("unknown reaction type %q", value)
	}
}

// Age is a validated age in years.
type Age int

// NewAge rejects values outside the 0-150 range.
func NewAge(value int) (Age, error) {
	if value < 0 || value > 150 {
		return 0, fmt.Errorf("age must be between 0 and 150, got %d", value)
	}
	return Age(value), nil
}

func (a Age) IsChild() bool   { return a <= 12 }
func (a Age) IsElderly() bool { return a >= 65 }

// IsVulnerable reports whether the age falls in the child or elderly band.
func (a Age) IsVulnerable() bool { return a.IsChild() || a.IsElderly() }

// Location is a validated coordinate pair.
type Location struct {
	Latitude  float64
	Longitude float64
}

// NewLocation rejects coordinates outside the WGS84 bounds.
func NewLocation(lat, lon float64) (Location, error) {
	if lat < -90 || lat > 90 {
		return Location{}, fmt.Errorf("latitude must be between -90 and 90, got %v", lat)
	}
	if lon < -180 || lon > 180 {
		return Location{}, fmt.Errorf("longitude must be between -180 and 180, got %v", lon)
	}
	return Location{Latitude: lat, Longitude: lon}, nil
}

// RiskScore is a normalized pollen sensitivity score.
type RiskScore float64

// NewRiskScore rejects construction outside [0,1].
func NewRiskScore(value float64) (RiskScore, error) {
	if value < 0 || value > 1 {
		return 0, fmt.Errorf("risk score must be between 0 and 1, got %v", value)
	}
	return RiskScore(value), nil
}

func (s RiskScore) IsHigh() bool     { return s >= 0.7 }
func (s RiskScore) IsModerate() bool { return s >= 0.4 && s < 0.7 }
func (s RiskScore) IsLow() bool      { return s < 0.4 }

// Profile is the immutable clinical and sensitivity profile a
// classification is computed from.
type Profile struct {
	Age            Age
	Gender         Gender
	Location       Location
	Diagnosis      Diagnosis
	FamilyHistory  bool
	Reactions      map[Reaction]bool
	Medications    map[string]bool
	TreeAllergies  map[Taxon]bool
	GrassAllergies map[Taxon]bool
	WeedAllergies  map[Taxon]bool
	FoodAllergies  map[Food]bool
	Triggers       map[Trigger]bool
}

// HasPollenAllergy reports whether the taxon is flagged in its
// category bucket.
func (p Profile) HasPollenAllergy(taxon Taxon) bool {
	switch taxon.Category() {
	case CategoryTree:
		return p.TreeAllergies[taxon]
	case CategoryGrass:
		return p.GrassAllergies[taxon]
	case CategoryWeed:
		return p.WeedAllergies[taxon]
	default:
		return false
	}
}

func (p Profile) HasFoodAllergy(food Food) bool { return p.FoodAllergies[food] }

func (p Profile) HasTrigger(trigger Trigger) bool { return p.Triggers[trigger] }

// TriggerCount counts the environmental flags set true.
func (p Profile) TriggerCount() int {
	count := 0
	for _, set := range p.Triggers {
		if set {
			count++
		}
	}
	return count
}

func (p Profile) HadReaction(reaction Reaction) bool { return p.Reactions[reaction] }

func (p Profile) OnMedication(name string) bool { return p.Medications[name] }

// Group is one of the five allergy risk groups.
type Group int

const (
	GroupSevereAllergic Group = iota + 1
	GroupMildModerateAllergic
	GroupGeneticPredisposition
	GroupUndiagnosed
	GroupVulnerablePopulation
)

// GroupInfo carries the fixed attributes of a group consumed by the
// downstream predictor.
type GroupInfo struct {
	ID          int
	Name        string
	ModelWeight float64
	Description string
}

var groupTable = map[Group]GroupInfo{
	GroupSevereAllergic: {
		ID: 1, Name: "Severe Allergic Group", ModelWeight: 0.18,
		Description: "IgE > 1000 IU/mL, elevated anaphylaxis risk",
	},
	GroupMildModerateAllergic: {
		ID: 2, Name: "Mild-Moderate Allergic Group", ModelWeight: 0.22,
		Description: "IgE 200-1000 IU/mL, controllable symptoms",
	},
	GroupGeneticPredisposition: {
		ID: 3, Name: "Genetic Predisposition Group", ModelWeight: 0.24,
		Description: "Atopic constitution, familial loading",
	},
	GroupUndiagnosed: {
		ID: 4, Name: "Undiagnosed Group", ModelWeight: 0.24,
		Description: "Normal/borderline IgE, unclear sensitization",
	},
	GroupVulnerablePopulation: {
		ID: 5, Name: "Vulnerable Child/Elderly Group", ModelWeight: 0.12,
		Description: "Immune system immaturity or aging",
	},
}

// Info returns the fixed attributes for the group.
func (g Group) Info() GroupInfo { return groupTable[g] }

func (g Group) String() string { return groupTable[g].Name }

// PollenRisks buckets the user's flagged taxa by static risk tier and
// collects the cross-reactive foods they imply.
type PollenRisks struct {
	HighRisk           []string `json:"highRiskPollens"`
	ModerateRisk       []string `json:"moderateRiskPollens"`
	CrossReactiveFoods []string `json:"crossReactiveFoods"`
}

// Result is the full classification bundle produced per call.
type Result struct {
	UserID                   uuid.UUID          `json:"userId"`
	GroupID                  int                `json:"groupId"`
	GroupName                string             `json:"groupName"`
	GroupDescription         string             `json:"groupDescription"`
	AssignmentReason         string             `json:"assignmentReason"`
	ModelWeight              float64            `json:"modelWeight"`
	PersonalRiskModifiers    map[string]float64 `json:"personalRiskModifiers"`
	ImmunologicProfile       map[string]any     `json:"immunologicProfile"`
	EnvironmentalSensitivity map[string]bool    `json:"environmentalSensitivityFactors"`
	PollenSpecificRisks      PollenRisks        `json:"pollenSpecificRisks"`
	RecommendationAdjust     map[string]any     `json:"recommendationAdjustments"`
}

// Group resolves the Result's group constant from its stored id.
func (r Result) Group() Group { return Group(r.GroupID) }
