package catalog

import (
	"neat.bar/Neat/pkg/model"
)

// SampleCocktails returns the starter menu inserted on first run. DateAdded
// is stamped at save time.
func SampleCocktails() []model.Cocktail {
	return []model.Cocktail{
		{
			Name:        "Old Fashioned",
			Description: "A classic whiskey cocktail with a perfect balance of sweet and bitter.",
			Glassware:   model.GlassRocks,
			Ingredients: []model.Ingredient{
				{Name: "Bourbon", Amount: "2", Unit: "oz"},
				{Name: "Simple Syrup", Amount: "0.25", Unit: "oz"},
				{Name: "Angostura Bitters", Amount: "2", Unit: "dashes"},
				{Name: "Orange Peel", Amount: "1", Unit: "piece"},
			},
			Instructions: []string{
				"Add simple syrup and bitters to a rocks glass",
				"Add bourbon and stir",
				"Add ice (preferably a large cube)",
				"Garnish with an orange peel",
			},
			Tags: []string{"whiskey", "classic", "spirit-forward", "evening"},
		},
		{
			Name:        "Daiquiri",
			Description: "A refreshing rum cocktail with the perfect balance of sweet and sour.",
			Glassware:   model.GlassCoupe,
			Ingredients: []model.Ingredient{
				{Name: "White Rum", Amount: "2", Unit: "oz"},
				{Name: "Lime Juice", Amount: "0.75", Unit: "oz"},
				{Name: "Simple Syrup", Amount: "0.75", Unit: "oz"},
			},
			Instructions: []string{
				"Add all ingredients to a shaker with ice",
				"Shake vigorously for 10-15 seconds",
				"Double strain into a chilled coupe glass",
				"Garnish with a lime wheel (optional)",
			},
			Tags: []string{"rum", "refreshing", "citrus", "shaken", "summer"},
		},
		{
			Name:        "Negroni",
			Description: "A perfectly balanced bitter and sweet Italian classic.",
			Glassware:   model.GlassRocks,
			Ingredients: []model.Ingredient{
				{Name: "Gin", Amount: "1", Unit: "oz"},
				{Name: "Campari", Amount: "1", Unit: "oz"},
				{Name: "Sweet Vermouth", Amount: "1", Unit: "oz"},
			},
			Instructions: []string{
				"Add all ingredients to a mixing glass with ice",
				"Stir for 20-30 seconds until well-chilled",
				"Strain into a rocks glass over fresh ice",
				"Garnish with an orange peel",
			},
			Tags: []string{"gin", "bitter", "aperitif", "italian", "equal-parts"},
		},
		{
			Name:        "Margarita",
			Description: "A refreshing tequila cocktail with a perfect balance of sweet, sour, and salt.",
			Glassware:   model.GlassRocks,
			Ingredients: []model.Ingredient{
				{Name: "Tequila", Amount: "2", Unit: "oz"},
				{Name: "Lime Juice", Amount: "0.75", Unit: "oz"},
				{Name: "Cointreau", Amount: "0.75", Unit: "oz"},
				{Name: "Salt", Amount: "", Unit: "rim", Optional: true},
			},
			Instructions: []string{
				"Rim a rocks glass with salt (optional)",
				"Add all ingredients to a shaker with ice",
				"Shake vigorously for 10-15 seconds",
				"Strain into the prepared glass over fresh ice",
				"Garnish with a lime wheel",
			},
			Tags: []string{"tequila", "citrus", "refreshing", "summer", "shaken"},
		},
		{
			Name:        "Manhattan",
			Description: "A sophisticated whiskey cocktail with a rich, complex flavor profile.",
			Glassware:   model.GlassCoupe,
			Ingredients: []model.Ingredient{
				{Name: "Rye Whiskey", Amount: "2", Unit: "oz"},
				{Name: "Sweet Vermouth", Amount: "1", Unit: "oz"},
				{Name: "Angostura Bitters", Amount: "2", Unit: "dashes"},
				{Name: "Maraschino Cherry", Amount: "1", Unit: "piece"},
			},
			Instructions: []string{
				"Add all ingredients to a mixing glass with ice",
				"Stir for 20-30 seconds until well-chilled",
				"Strain into a chilled coupe glass",
				"Garnish with a maraschino cherry",
			},
			Tags: []string{"whiskey", "classic", "spirit-forward", "evening"},
		},
	}
}
