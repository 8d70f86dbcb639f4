package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.openly.dev/pointy"

	"neat.bar/Neat/pkg/model"
	"neat.bar/Neat/pkg/repository"
)

type RateCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`

	Name    string `arg:"" help:"What you tasted"`
	Type    string `enum:"spirit,beer,wine,cocktail" default:"spirit" help:"Drink type"`
	Subtype string `help:"Subtype for the drink type, e.g. whiskey for a spirit"`
	Brand   string `help:"Brand or producer"`

	Aroma     int `default:"0" help:"Aroma score 0-5"`
	Flavor    int `default:"0" help:"Flavor score 0-5"`
	Mouthfeel int `default:"0" help:"Mouthfeel score 0-5"`
	Finish    int `default:"0" help:"Finish score 0-5"`
	Overall   int `default:"0" help:"Overall score 0-5"`

	Notes string `help:"Tasting notes"`
}

func (r *RateCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(r.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	drinkType := model.DrinkType(r.Type)

	scores := model.Scores{
		Aroma:     r.Aroma,
		Flavor:    r.Flavor,
		Mouthfeel: r.Mouthfeel,
		Finish:    r.Finish,
		Overall:   r.Overall,
	}

	if err := validateScores(scores); err != nil {
		return err
	}

	rating := model.Rating{
		ItemType: drinkType,
		ItemName: strings.TrimSpace(r.Name),
		Scores:   scores,
	}

	if rating.ItemName == "" {
		return fmt.Errorf("%w: rating needs an item name", repository.ErrValidation)
	}

	if r.Subtype != "" {
		subtype, err := matchSubtype(drinkType, r.Subtype)
		if err != nil {
			return err
		}

		rating.ItemSubType = pointy.String(subtype)
	}

	if r.Brand != "" {
		rating.Brand = pointy.String(r.Brand)
	}

	if r.Notes != "" {
		rating.Notes = pointy.String(r.Notes)
	}

	id, err := repo.Ratings().Add(context.Background(), &rating)
	if err != nil {
		return err
	}

	fmt.Printf("Rated %q %d/25 (#%d)\n", rating.ItemName, rating.Scores.Total(), id)

	return nil
}

func validateScores(scores model.Scores) error {
	for _, score := range []int{scores.Aroma, scores.Flavor, scores.Mouthfeel, scores.Finish, scores.Overall} {
		if score < 0 || score > 5 {
			return fmt.Errorf("%w: sub-scores run 0-5, got %d", repository.ErrValidation, score)
		}
	}

	return nil
}

func matchSubtype(drinkType model.DrinkType, subtype string) (string, error) {
	for _, candidate := range drinkType.Subtypes() {
		if strings.EqualFold(candidate, subtype) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %q is not a %s subtype (one of %s)",
		repository.ErrValidation, subtype, drinkType, strings.Join(drinkType.Subtypes(), ", "))
}

type RatingsCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`
}

func (r *RatingsCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(r.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	ratings, err := repo.Ratings().All(context.Background())
	if err != nil {
		return err
	}

	if len(ratings) == 0 {
		fmt.Println("No ratings recorded yet.")

		return nil
	}

	for _, rating := range ratings {
		kind := string(rating.ItemType)
		if rating.ItemSubType != nil {
			kind += "/" + *rating.ItemSubType
		}

		brand := ""
		if rating.Brand != nil {
			brand = " (" + *rating.Brand + ")"
		}

		fmt.Printf("#%-4d %-28s%s %-20s %2d/25  %s\n",
			rating.ID, rating.ItemName, brand, kind, rating.TotalScore, rating.DateAdded.Format("2006-01-02"))
	}

	return nil
}
