package cmd

import (
	"context"
	"fmt"
	"strings"

	"neat.bar/Neat/pkg/catalog"
	"neat.bar/Neat/pkg/model"
)

type MenuCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`

	Search    string   `help:"Match name or description"                                     short:"s"`
	Spirit    string   `help:"Match an ingredient name"`
	Glassware string   `enum:",rocks,coupe,highball,martini,wine,shot,mug,other" default:"" help:"Exact glassware match"`
	Tag       []string `help:"Require a tag (repeatable, all must match)"                    short:"t"`
	Sort      string   `enum:"newest,oldest,name,rating,favorites" default:"newest"          help:"Sort order"`
	Full      bool     `help:"Print ingredients and instructions"`
}

func (m *MenuCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(m.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	ctx := context.Background()

	menu := catalog.New(repo, logger)
	if err := menu.Seed(ctx); err != nil {
		return err
	}

	cocktails, err := menu.Filter(ctx, catalog.FilterCriteria{
		Search:    m.Search,
		Spirit:    m.Spirit,
		Glassware: model.Glassware(m.Glassware),
		Tags:      m.Tag,
	})
	if err != nil {
		return err
	}

	cocktails = catalog.Sort(cocktails, catalog.SortOrder(m.Sort))

	if len(cocktails) == 0 {
		fmt.Println("No cocktails match.")

		return nil
	}

	for i := range cocktails {
		printCocktail(&cocktails[i], m.Full)
	}

	return nil
}

func printCocktail(cocktail *model.Cocktail, full bool) {
	marker := " "
	if cocktail.IsFavorite {
		marker = "*"
	}

	rating := "unrated"
	if cocktail.Rating != nil {
		rating = fmt.Sprintf("%.1f/5", *cocktail.Rating)
	}

	fmt.Printf("%s #%-4d %-28s %-9s %-8s %s\n",
		marker, cocktail.ID, cocktail.Name, cocktail.Glassware, rating, strings.Join(cocktail.Tags, ", "))

	if !full {
		return
	}

	if cocktail.Description != "" {
		fmt.Printf("        %s\n", cocktail.Description)
	}

	for _, ingredient := range cocktail.Ingredients {
		optional := ""
		if ingredient.Optional {
			optional = " (optional)"
		}

		fmt.Printf("        - %s %s %s%s\n", ingredient.Amount, ingredient.Unit, ingredient.Name, optional)
	}

	for i, step := range cocktail.Instructions {
		fmt.Printf("        %d. %s\n", i+1, step)
	}

	if cocktail.Notes != nil {
		fmt.Printf("        Notes: %s\n", *cocktail.Notes)
	}

	fmt.Println()
}
