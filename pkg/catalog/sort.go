package catalog

import (
	"sort"
	"strings"

	"neat.bar/Neat/pkg/model"
)

type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortName      SortOrder = "name"
	SortRating    SortOrder = "rating"
	SortFavorites SortOrder = "favorites"
)

// Sort returns a sorted copy of the input. Every order is stable: favorites
// is a stable partition with favorites first, rating sorts highest first
// treating a missing rating as 0.
func Sort(cocktails []model.Cocktail, order SortOrder) []model.Cocktail {
	sorted := make([]model.Cocktail, len(cocktails))
	copy(sorted, cocktails)

	switch order {
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DateAdded.After(sorted[j].DateAdded)
		})
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DateAdded.Before(sorted[j].DateAdded)
		})
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ratingOrZero(sorted[i]) > ratingOrZero(sorted[j])
		})
	case SortFavorites:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].IsFavorite && !sorted[j].IsFavorite
		})
	}

	return sorted
}

func ratingOrZero(cocktail model.Cocktail) float64 {
	if cocktail.Rating == nil {
		return 0
	}

	return *cocktail.Rating
}
