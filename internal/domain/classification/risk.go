package classification

const (
	treeCategoryWeight  = 0.3
	grassCategoryWeight = 0.4
	weedCategoryWeight  = 0.4

	defaultTaxonWeight = 0.5

	crossReactionBonus    = 0.2
	maxCrossReactionBonus = 0.5
)

// taxonRiskWeights holds the per-taxon sensitivity weights summed
// inside each category before the category weight is applied.
var taxonRiskWeights = map[Taxon]float64{
	TaxonBirch:      0.9,
	TaxonOlive:      0.5,
	TaxonPine:       0.6,
	TaxonOak:        0.8,
	TaxonCedar:      0.7,
	TaxonGraminales: 1.0,
	TaxonRagweed:    1.3,
	TaxonMugwort:    1.1,
	TaxonPlantain:   1.0,
	TaxonNettle:     0.9,
}

// PollenRiskScore computes the normalized pollen sensitivity score
// for a profile: category-weighted taxon sums plus the capped
// cross-reactivity bonus, clamped to [0,1].
func PollenRiskScore(profile Profile) RiskScore {
	total := categoryRisk(profile.TreeAllergies, CategoryTree, treeCategoryWeight)
	total += categoryRisk(profile.GrassAllergies, CategoryGrass, grassCategoryWeight)
	total += categoryRisk(profile.WeedAllergies, CategoryWeed, weedCategoryWeight)
	total += crossReactivityRisk(profile)

	if total > 1 {
		total = 1
	}
	score, _ := NewRiskScore(total)
	return score
}

func categoryRisk(sensitivities map[Taxon]bool, category TaxonCategory, categoryWeight float64) float64 {
	sum := 0.0
	for taxon, sensitive := range sensitivities {
		if !sensitive || taxon.Category() != category {
			continue
		}
		weight, ok := taxonRiskWeights[taxon]
		if !ok {
			weight = defaultTaxonWeight
		}
		sum += weight
	}
	return sum * categoryWeight
}

// crossReactivityRisk adds a fixed bonus per matching pollen/food
// pair, capped at maxCrossReactionBonus.
func crossReactivityRisk(profile Profile) float64 {
	bonus := 0.0
	for taxon, foods := range crossReactivityMatrix {
		if !profile.HasPollenAllergy(taxon) {
			continue
		}
		for _, food := range foods {
			if profile.HasFoodAllergy(food) {
				bonus += crossReactionBonus
			}
		}
	}
	if bonus > maxCrossReactionBonus {
		bonus = maxCrossReactionBonus
	}
	return bonus
}
