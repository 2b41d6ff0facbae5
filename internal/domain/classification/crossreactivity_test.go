package classification

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCrossReactiveFoods(t *testing.T) {
	require.Equal(t, []Food{FoodApple, FoodCherry, FoodPear, FoodAlmond}, CrossReactiveFoods(TaxonBirch))
	require.Equal(t, []Food{FoodMelon, FoodBanana, FoodCucumber}, CrossReactiveFoods(TaxonRagweed))
	require.Empty(t, CrossReactiveFoods(TaxonPine))
}

func TestCrossReactiveFoodsReturnsCopy(t *testing.T) {
	foods := CrossReactiveFoods(TaxonMugwort)
	foods[0] = FoodFish
	require.Equal(t, []Food{FoodCelery, FoodSpices, FoodHerbs}, CrossReactiveFoods(TaxonMugwort))
}

func TestHasCrossReactivity(t *testing.T) {
	require.True(t, HasCrossReactivity(TaxonBirch, FoodApple))
	require.True(t, HasCrossReactivity(TaxonRagweed, FoodBanana))
	require.False(t, HasCrossReactivity(TaxonBirch, FoodBanana))
	require.False(t, HasCrossReactivity(TaxonOlive, FoodApple))
}
