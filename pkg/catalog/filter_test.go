package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neat.bar/Neat/pkg/catalog"
	"neat.bar/Neat/pkg/model"
)

func testMenu() []model.Cocktail {
	return []model.Cocktail{
		{
			Name:        "Old Fashioned",
			Description: "A classic whiskey cocktail.",
			Glassware:   model.GlassRocks,
			Ingredients: []model.Ingredient{{Name: "Bourbon"}, {Name: "Angostura Bitters"}},
			Tags:        []string{"whiskey", "classic"},
		},
		{
			Name:        "Daiquiri",
			Description: "A refreshing rum cocktail.",
			Glassware:   model.GlassCoupe,
			Ingredients: []model.Ingredient{{Name: "White Rum"}, {Name: "Lime Juice"}},
			Tags:        []string{"rum", "refreshing"},
		},
		{
			Name:        "Negroni",
			Description: "A bitter Italian classic.",
			Glassware:   model.GlassRocks,
			Ingredients: []model.Ingredient{{Name: "Gin"}, {Name: "Campari"}, {Name: "Sweet Vermouth"}},
			Tags:        []string{"gin", "bitter", "classic"},
		},
	}
}

func names(cocktails []model.Cocktail) []string {
	out := make([]string, 0, len(cocktails))
	for _, cocktail := range cocktails {
		out = append(out, cocktail.Name)
	}

	return out
}

func TestFilter_NoCriteriaReturnsAll(t *testing.T) {
	menu := testMenu()

	filtered := catalog.Filter(menu, catalog.FilterCriteria{})

	assert.ElementsMatch(t, names(menu), names(filtered))
}

func TestFilter_SearchMatchesNameOrDescription(t *testing.T) {
	menu := testMenu()

	assert.Equal(t, []string{"Negroni"}, names(catalog.Filter(menu, catalog.FilterCriteria{Search: "negroni"})))
	assert.Equal(t, []string{"Daiquiri"}, names(catalog.Filter(menu, catalog.FilterCriteria{Search: "RUM cocktail"})))
	assert.Empty(t, catalog.Filter(menu, catalog.FilterCriteria{Search: "tiki"}))
}

func TestFilter_SpiritMatchesAnyIngredientName(t *testing.T) {
	menu := testMenu()

	assert.Equal(t, []string{"Negroni"}, names(catalog.Filter(menu, catalog.FilterCriteria{Spirit: "gin"})))
	assert.Equal(t, []string{"Old Fashioned"}, names(catalog.Filter(menu, catalog.FilterCriteria{Spirit: "bourbon"})))
}

func TestFilter_GlasswareIsExact(t *testing.T) {
	menu := testMenu()

	filtered := catalog.Filter(menu, catalog.FilterCriteria{Glassware: model.GlassRocks})

	assert.Equal(t, []string{"Old Fashioned", "Negroni"}, names(filtered))
}

func TestFilter_TagsRequireEveryTag(t *testing.T) {
	menu := testMenu()

	assert.Equal(t, []string{"Old Fashioned", "Negroni"},
		names(catalog.Filter(menu, catalog.FilterCriteria{Tags: []string{"classic"}})))
	assert.Equal(t, []string{"Negroni"},
		names(catalog.Filter(menu, catalog.FilterCriteria{Tags: []string{"CLASSIC", "bitter"}})))
	assert.Empty(t, catalog.Filter(menu, catalog.FilterCriteria{Tags: []string{"classic", "rum"}}))
}

func TestFilter_CriteriaCombineWithAnd(t *testing.T) {
	menu := testMenu()

	// each criterion alone matches more than one cocktail; together they
	// intersect down to the Negroni
	bySearch := catalog.Filter(menu, catalog.FilterCriteria{Search: "classic"})
	require.Greater(t, len(bySearch), 1)

	byGlass := catalog.Filter(menu, catalog.FilterCriteria{Glassware: model.GlassRocks})
	require.Greater(t, len(byGlass), 1)

	both := catalog.Filter(menu, catalog.FilterCriteria{Search: "classic", Glassware: model.GlassRocks, Spirit: "campari"})
	assert.Equal(t, []string{"Negroni"}, names(both))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	menu := testMenu()

	_ = catalog.Filter(menu, catalog.FilterCriteria{Search: "negroni"})

	assert.Equal(t, names(testMenu()), names(menu))
}
