package classification

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifySevereDiagnosisShortCircuits(t *testing.T) {
	// Severe diagnosis on an elderly user with family history: clinical
	// diagnosis still wins over every later rule.
	profile := Profile{
		Age:           Age(70),
		Gender:        GenderFemale,
		Diagnosis:     DiagnosisSevere,
		FamilyHistory: true,
		WeedAllergies: map[Taxon]bool{TaxonRagweed: true},
	}
	result := Classify(profile)
	require.Equal(t, GroupSevereAllergic, result.Group())
	require.Equal(t, 1, result.GroupID)
	require.Equal(t, "clinical diagnosis basis", result.AssignmentReason)
	require.InDelta(t, 0.18, result.ModelWeight, 1e-9)
}

func TestClassifyMildModerateBeatsGenetic(t *testing.T) {
	profile := Profile{
		Age:           Age(28),
		Gender:        GenderMale,
		Diagnosis:     DiagnosisMildModerate,
		FamilyHistory: true,
		TreeAllergies: map[Taxon]bool{TaxonBirch: true},
	}
	result := Classify(profile)
	require.Equal(t, GroupMildModerateAllergic, result.Group())
	require.Contains(t, result.AssignmentReason, "clinical diagnosis")
}

func TestClassifyAsthmaMapsToMildModerate(t *testing.T) {
	result := Classify(Profile{Age: Age(40), Diagnosis: DiagnosisAsthma})
	require.Equal(t, GroupMildModerateAllergic, result.Group())
}

func TestClassifyGeneticPredisposition(t *testing.T) {
	// graminales alone scores 0.40, exactly the moderate band floor.
	profile := Profile{
		Age:            Age(35),
		Diagnosis:      DiagnosisNone,
		FamilyHistory:  true,
		GrassAllergies: map[Taxon]bool{TaxonGraminales: true},
	}
	result := Classify(profile)
	require.Equal(t, GroupGeneticPredisposition, result.Group())
	require.Equal(t, "genetic predisposition + elevated pollen risk (0.40)", result.AssignmentReason)
}

func TestClassifyGeneticRuleWinsOverAgeRule(t *testing.T) {
	// An elderly user with family history and moderate pollen risk
	// matches the genetic rule first; swapping the rule order would
	// misfile them as vulnerable population.
	profile := Profile{
		Age:            Age(70),
		FamilyHistory:  true,
		GrassAllergies: map[Taxon]bool{TaxonGraminales: true},
	}
	result := Classify(profile)
	require.Equal(t, GroupGeneticPredisposition, result.Group())
}

func TestClassifyFamilyHistoryWithLowRiskFallsThrough(t *testing.T) {
	profile := Profile{
		Age:           Age(35),
		FamilyHistory: true,
		TreeAllergies: map[Taxon]bool{TaxonOlive: true},
	}
	result := Classify(profile)
	require.Equal(t, GroupUndiagnosed, result.Group())
}

func TestClassifyVulnerableAges(t *testing.T) {
	elderly := Classify(Profile{Age: Age(70)})
	require.Equal(t, GroupVulnerablePopulation, elderly.Group())
	require.Equal(t, "age based vulnerability (70 years)", elderly.AssignmentReason)

	child := Classify(Profile{Age: Age(12)})
	require.Equal(t, GroupVulnerablePopulation, child.Group())

	teen := Classify(Profile{Age: Age(13)})
	require.Equal(t, GroupUndiagnosed, teen.Group())
}

func TestClassifyUndiagnosedDefault(t *testing.T) {
	result := Classify(Profile{Age: Age(28)})
	require.Equal(t, GroupUndiagnosed, result.Group())
	require.Equal(t, "undiagnosed, pollen risk: 0.00", result.AssignmentReason)
	require.InDelta(t, 0.24, result.ModelWeight, 1e-9)
}

func TestClassifyPersonalModifiers(t *testing.T) {
	profile := Profile{
		Age:         Age(8),
		Diagnosis:   DiagnosisSevere,
		Medications: map[string]bool{"asthma": true},
		Triggers:    map[Trigger]bool{TriggerMold: true, TriggerSmoke: true, TriggerDustMites: true},
	}
	result := Classify(profile)
	mods := result.PersonalRiskModifiers
	require.InDelta(t, 1.3, mods["base_sensitivity"], 1e-9)
	require.InDelta(t, 1.3, mods["environmental_amplifier"], 1e-9)
	require.InDelta(t, 1.5, mods["seasonal_modifier"], 1e-9)
	require.InDelta(t, 1.4, mods["comorbidity_factor"], 1e-9)
}

func TestClassifyElderlyBronchodilatorModifiers(t *testing.T) {
	profile := Profile{
		Age:         Age(68),
		Medications: map[string]bool{"bronchodilator": true},
	}
	mods := Classify(profile).PersonalRiskModifiers
	require.InDelta(t, 1.2, mods["base_sensitivity"], 1e-9)
	require.InDelta(t, 1.0, mods["environmental_amplifier"], 1e-9)
	require.InDelta(t, 1.0, mods["seasonal_modifier"], 1e-9)
	require.InDelta(t, 1.2, mods["comorbidity_factor"], 1e-9)
}

func TestClassifyPollenSpecificRisks(t *testing.T) {
	profile := Profile{
		Age:           Age(30),
		TreeAllergies: map[Taxon]bool{TaxonBirch: true, TaxonPine: true},
		WeedAllergies: map[Taxon]bool{TaxonRagweed: true},
		FoodAllergies: map[Food]bool{FoodBanana: true},
	}
	risks := Classify(profile).PollenSpecificRisks
	require.Equal(t, []string{"ragweed"}, risks.HighRisk)
	require.Equal(t, []string{"birch"}, risks.ModerateRisk)
	// Low-tier pine lands in no bucket but still contributes no foods.
	require.ElementsMatch(t,
		[]string{"apple", "cherry", "pear", "almond", "melon", "banana", "cucumber"},
		risks.CrossReactiveFoods)
}

func TestClassifyEnvironmentalSensitivityCoversAllTriggers(t *testing.T) {
	profile := Profile{
		Age:      Age(30),
		Triggers: map[Trigger]bool{TriggerPetDander: true},
	}
	factors := Classify(profile).EnvironmentalSensitivity
	require.Len(t, factors, 5)
	require.True(t, factors["pet_dander_sensitivity"])
	require.False(t, factors["mold_sensitivity"])
}

func TestClassifyRecommendationDefaults(t *testing.T) {
	adjust := Classify(Profile{Age: Age(30)}).RecommendationAdjust
	require.Equal(t, "standard", adjust["medication_priority"])
	require.Equal(t, "standard", adjust["environmental_control_level"])
	require.Equal(t, "standard", adjust["monitoring_frequency"])
	require.Equal(t, false, adjust["emergency_preparedness"])
}

func TestClassifyAnaphylaxisOverrideWinsLast(t *testing.T) {
	profile := Profile{
		Age:       Age(30),
		Diagnosis: DiagnosisMildModerate,
		Reactions: map[Reaction]bool{ReactionAnaphylaxis: true},
	}
	adjust := Classify(profile).RecommendationAdjust
	require.Equal(t, "critical", adjust["medication_priority"])
	require.Equal(t, true, adjust["emergency_preparedness"])
	// Group override for the rest of the keys still applies.
	require.Equal(t, "moderate", adjust["environmental_control_level"])
}

func TestClassifyImmunologicProfileIsACopy(t *testing.T) {
	first := Classify(Profile{Age: Age(30), Diagnosis: DiagnosisSevere})
	first.ImmunologicProfile["ige_level"] = "mutated"
	second := Classify(Profile{Age: Age(30), Diagnosis: DiagnosisSevere})
	require.Equal(t, "very_high", second.ImmunologicProfile["ige_level"])
}
