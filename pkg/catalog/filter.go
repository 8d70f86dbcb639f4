package catalog

import (
	"strings"

	"neat.bar/Neat/pkg/model"
)

// FilterCriteria combines with logical AND; zero-valued fields impose no
// constraint.
type FilterCriteria struct {
	// Search matches name or description, case-insensitive substring.
	Search string
	// Spirit matches any ingredient name, case-insensitive substring.
	Spirit string
	// Glassware is an exact match.
	Glassware model.Glassware
	// Tags must all be present on the cocktail, case-insensitive.
	Tags []string
}

// Filter returns the cocktails satisfying every provided criterion. The input
// slice is not modified.
func Filter(cocktails []model.Cocktail, criteria FilterCriteria) []model.Cocktail {
	matched := make([]model.Cocktail, 0, len(cocktails))

	for _, cocktail := range cocktails {
		if matches(cocktail, criteria) {
			matched = append(matched, cocktail)
		}
	}

	return matched
}

func matches(cocktail model.Cocktail, criteria FilterCriteria) bool {
	if criteria.Search != "" {
		search := strings.ToLower(criteria.Search)
		if !strings.Contains(strings.ToLower(cocktail.Name), search) &&
			!strings.Contains(strings.ToLower(cocktail.Description), search) {
			return false
		}
	}

	if criteria.Spirit != "" && !containsIngredient(cocktail.Ingredients, criteria.Spirit) {
		return false
	}

	if criteria.Glassware != "" && cocktail.Glassware != criteria.Glassware {
		return false
	}

	for _, tag := range criteria.Tags {
		if !hasTag(cocktail.Tags, tag) {
			return false
		}
	}

	return true
}

func containsIngredient(ingredients []model.Ingredient, spirit string) bool {
	spirit = strings.ToLower(spirit)

	for _, ingredient := range ingredients {
		if strings.Contains(strings.ToLower(ingredient.Name), spirit) {
			return true
		}
	}

	return false
}

func hasTag(tags []string, tag string) bool {
	for _, candidate := range tags {
		if strings.EqualFold(candidate, tag) {
			return true
		}
	}

	return false
}
