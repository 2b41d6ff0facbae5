package classification

// crossReactivityMatrix maps a pollen taxon to the foods whose
// proteins are structurally similar enough to trigger reactions in
// sensitized users. Built once, read-only afterwards.
var crossReactivityMatrix = map[Taxon][]Food{
	TaxonBirch:   {FoodApple, FoodCherry, FoodPear, FoodAlmond},
	TaxonRagweed: {FoodMelon, FoodBanana, FoodCucumber},
	TaxonMugwort: {FoodCelery, FoodSpices, FoodHerbs},
}

// CrossReactiveFoods returns the foods cross-reactive with the taxon,
// empty when none are defined.
func CrossReactiveFoods(taxon Taxon) []Food {
	foods := crossReactivityMatrix[taxon]
	out := make([]Food, len(foods))
	copy(out, foods)
	return out
}

// HasCrossReactivity reports whether the taxon/food pair is linked.
func HasCrossReactivity(taxon Taxon, food Food) bool {
	for _, candidate := range crossReactivityMatrix[taxon] {
		if candidate == food {
			return true
		}
	}
	return false
}
