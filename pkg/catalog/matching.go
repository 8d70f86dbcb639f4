package catalog

import (
	"math"
	"strings"

	"neat.bar/Neat/pkg/model"
)

// Availability reports how much of a cocktail the bar cart can cover.
type Availability struct {
	Cocktail model.Cocktail
	// Missing holds the required ingredient names not on hand.
	Missing []string
	// Percent is round(100 * present / required).
	Percent int
	// Ready means every required ingredient is on hand.
	Ready bool
}

// MatchCocktail partitions the cocktail's required ingredients into present
// and missing by exact case-insensitive name match against the inventory. No
// fuzzy or synonym matching: "Whiskey" does not match "Bourbon".
//
// Ingredients marked optional are excluded from the required count and never
// reported missing; a skippable garnish should not block "ready to make". A
// cocktail with no required ingredients counts as fully makeable.
func MatchCocktail(cocktail model.Cocktail, inventory []string) Availability {
	onHand := make(map[string]bool, len(inventory))
	for _, name := range inventory {
		onHand[normalizeName(name)] = true
	}

	var required, present int

	var missing []string

	for _, ingredient := range cocktail.Ingredients {
		if ingredient.Optional {
			continue
		}

		required++

		if onHand[normalizeName(ingredient.Name)] {
			present++
		} else {
			missing = append(missing, ingredient.Name)
		}
	}

	percent := 100
	if required > 0 {
		percent = int(math.Round(100 * float64(present) / float64(required)))
	}

	return Availability{
		Cocktail: cocktail,
		Missing:  missing,
		Percent:  percent,
		Ready:    percent == 100,
	}
}

// MatchAll evaluates every cocktail against the bar cart.
func MatchAll(cocktails []model.Cocktail, items []model.BarItem) []Availability {
	inventory := make([]string, 0, len(items))
	for _, item := range items {
		inventory = append(inventory, item.Name)
	}

	matches := make([]Availability, 0, len(cocktails))
	for _, cocktail := range cocktails {
		matches = append(matches, MatchCocktail(cocktail, inventory))
	}

	return matches
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
