package classification

import "fmt"

// immunologicProfiles holds the fixed descriptive map for each group.
// Kept as one table so every consumer reads identical constants.
var immunologicProfiles = map[Group]map[string]any{
	GroupSevereAllergic: {
		"ige_level":               "very_high",
		"th2_activation":          "maximal",
		"mast_cell_degranulation": "rapid_widespread",
		"cytokine_profile":        []string{"IL-4", "IL-5", "IL-13"},
	},
	GroupMildModerateAllergic: {
		"ige_level":              "moderate_high",
		"inflammatory_response":  "local",
		"antihistamine_response": "good",
		"seasonal_pattern":       "rhinitis",
	},
	GroupGeneticPredisposition: {
		"atopic_structure":        true,
		"family_loading":          true,
		"ige_production_capacity": "increased",
		"th1_th2_imbalance":       true,
		"sensitization_risk":      "high",
	},
	GroupUndiagnosed: {
		"ige_level":              "normal_borderline",
		"sensitization":          "unclear",
		"environmental_triggers": true,
		"inflammatory_response":  "non_specific",
	},
	GroupVulnerablePopulation: {
		"immune_system":         "immature_aged",
		"inflammatory_response": "increased",
		"immune_tolerance":      "low",
		"multisystem_risk":      "high",
	},
}

// recommendationOverrides lists per-group deviations from the
// standard recommendation defaults.
var recommendationOverrides = map[Group]map[string]any{
	GroupSevereAllergic: {
		"medication_priority":         "high",
		"environmental_control_level": "strict",
		"monitoring_frequency":        "daily",
		"emergency_preparedness":      true,
	},
	GroupMildModerateAllergic: {
		"medication_priority":         "moderate",
		"environmental_control_level": "moderate",
		"monitoring_frequency":        "weekly",
	},
	GroupVulnerablePopulation: {
		"medication_priority":         "high",
		"environmental_control_level": "strict",
		"monitoring_frequency":        "daily",
	},
}

// pollenRiskTiers assigns each taxon a static risk tier, mirroring
// the weights in taxonRiskWeights.
var pollenRiskTiers = map[Taxon]string{
	TaxonRagweed:    "high",
	TaxonMugwort:    "high",
	TaxonBirch:      "moderate",
	TaxonOak:        "moderate",
	TaxonGraminales: "moderate",
	TaxonPlantain:   "moderate",
	TaxonNettle:     "moderate",
	TaxonOlive:      "low",
	TaxonPine:       "low",
	TaxonCedar:      "low",
}

// Classify runs the decision matrix over a validated profile and
// builds the full classification bundle. First matching rule wins:
// clinical diagnosis, then genetic predisposition, then age
// vulnerability, then undiagnosed.
func Classify(profile Profile) Result {
	if group := profile.Diagnosis.directGroup(); group != 0 {
		return buildResult(group, profile, "clinical diagnosis basis")
	}

	pollenRisk := PollenRiskScore(profile)

	if profile.FamilyHistory && pollenRisk.IsModerate() {
		reason := fmt.Sprintf("genetic predisposition + elevated pollen risk (%.2f)", float64(pollenRisk))
		return buildResult(GroupGeneticPredisposition, profile, reason)
	}

	if profile.Age.IsVulnerable() {
		reason := fmt.Sprintf("age based vulnerability (%d years)", int(profile.Age))
		return buildResult(GroupVulnerablePopulation, profile, reason)
	}

	reason := fmt.Sprintf("undiagnosed, pollen risk: %.2f", float64(pollenRisk))
	return buildResult(GroupUndiagnosed, profile, reason)
}

func buildResult(group Group, profile Profile, reason string) Result {
	info := group.Info()
	return Result{
		GroupID:                  info.ID,
		GroupName:                info.Name,
		GroupDescription:         info.Description,
		AssignmentReason:         reason,
		ModelWeight:              info.ModelWeight,
		PersonalRiskModifiers:    personalModifiers(profile, group),
		ImmunologicProfile:       copyProfileTable(immunologicProfiles[group]),
		EnvironmentalSensitivity: environmentalFactors(profile),
		PollenSpecificRisks:      pollenSpecificRisks(profile),
		RecommendationAdjust:     recommendationAdjustments(profile, group),
	}
}

func personalModifiers(profile Profile, group Group) map[string]float64 {
	baseSensitivity := 1.0
	if profile.Age.IsChild() {
		baseSensitivity = 1.3
	} else if profile.Age.IsElderly() {
		baseSensitivity = 1.2
	}

	seasonalModifier := 1.0
	switch group {
	case GroupSevereAllergic:
		seasonalModifier = 1.5
	case GroupMildModerateAllergic:
		seasonalModifier = 1.2
	}

	comorbidityFactor := 1.0
	if profile.OnMedication("asthma") {
		comorbidityFactor = 1.4
	} else if profile.OnMedication("bronchodilator") {
		comorbidityFactor = 1.2
	}

	return map[string]float64{
		"base_sensitivity":        baseSensitivity,
		"environmental_amplifier": 1.0 + float64(profile.TriggerCount())*0.1,
		"seasonal_modifier":       seasonalModifier,
		"comorbidity_factor":      comorbidityFactor,
	}
}

func environmentalFactors(profile Profile) map[string]bool {
	factors := make(map[string]bool, len(AllTriggers()))
	for _, trigger := range AllTriggers() {
		factors[string(trigger)+"_sensitivity"] = profile.HasTrigger(trigger)
	}
	return factors
}

func pollenSpecificRisks(profile Profile) PollenRisks {
	risks := PollenRisks{
		HighRisk:           []string{},
		ModerateRisk:       []string{},
		CrossReactiveFoods: []string{},
	}
	for _, taxon := range AllTaxa() {
		if !profile.HasPollenAllergy(taxon) {
			continue
		}
		switch pollenRiskTiers[taxon] {
		case "high":
			risks.HighRisk = append(risks.HighRisk, string(taxon))
		case "moderate":
			risks.ModerateRisk = append(risks.ModerateRisk, string(taxon))
		}
		for _, food := range CrossReactiveFoods(taxon) {
			risks.CrossReactiveFoods = append(risks.CrossReactiveFoods, string(food))
		}
	}
	return risks
}

func recommendationAdjustments(profile Profile, group Group) map[string]any {
	adjustments := map[string]any{
		"medication_priority":         "standard",
		"environmental_control_level": "standard",
		"monitoring_frequency":        "standard",
		"emergency_preparedness":      false,
	}
	for key, value := range recommendationOverrides[group] {
		adjustments[key] = value
	}

	// The anaphylaxis override always wins last, regardless of group.
	if profile.HadReaction(ReactionAnaphylaxis) {
		adjustments["emergency_preparedness"] = true
		adjustments["medication_priority"] = "critical"
	}
	return adjustments
}

func copyProfileTable(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
