package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.openly.dev/pointy"

	"neat.bar/Neat/pkg/catalog"
	"neat.bar/Neat/pkg/imaging"
	"neat.bar/Neat/pkg/model"
	"neat.bar/Neat/pkg/repository"
)

type BarcartCmd struct {
	List   BarcartListCmd   `cmd:"" default:"1" help:"List the bar cart"`
	Add    BarcartAddCmd    `cmd:"" help:"Add an item to the bar cart"`
	Remove BarcartRemoveCmd `cmd:"" help:"Remove an item from the bar cart"`
}

type BarcartListCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`
}

func (b *BarcartListCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(b.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	items, err := repo.BarItems().All(context.Background())
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("The bar cart is empty.")

		return nil
	}

	byCategory := make(map[string][]model.BarItem)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	for _, category := range categoryOrder(byCategory) {
		fmt.Printf("%s\n", category)

		for _, item := range byCategory[category] {
			amount := ""
			if item.Amount != nil {
				amount = " (" + *item.Amount + ")"
			}

			sub := ""
			if item.SubCategory != nil {
				sub = " [" + *item.SubCategory + "]"
			}

			fmt.Printf("  #%-4d %s%s%s\n", item.ID, item.Name, sub, amount)
		}
	}

	return nil
}

// categoryOrder lists the standard categories first, then anything custom in
// insertion-independent alphabetical order.
func categoryOrder(byCategory map[string][]model.BarItem) []string {
	order := make([]string, 0, len(byCategory))
	seen := make(map[string]bool, len(byCategory))

	for _, category := range model.BarCategories() {
		if _, ok := byCategory[category]; ok {
			order = append(order, category)
			seen[category] = true
		}
	}

	extras := make([]string, 0, len(byCategory))

	for category := range byCategory {
		if !seen[category] {
			extras = append(extras, category)
		}
	}

	sort.Strings(extras)

	return append(order, extras...)
}

type BarcartAddCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`

	Name        string `arg:"" help:"Ingredient name"`
	Category    string `default:"Spirits" help:"Category, e.g. Spirits or Mixers"`
	SubCategory string `help:"Optional subcategory"`
	Amount      string `help:"On-hand amount, free text (e.g. '750ml')"`
	Notes       string `help:"Free-text notes"`
	Image       string `help:"Path to an image to embed" type:"existingfile"`
}

func (b *BarcartAddCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, repo, err := openRepository(b.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: bar item needs a name", repository.ErrValidation)
	}

	item := model.BarItem{
		Name:     strings.TrimSpace(b.Name),
		Category: b.Category,
	}

	if b.SubCategory != "" {
		item.SubCategory = pointy.String(b.SubCategory)
	}

	if b.Amount != "" {
		item.Amount = pointy.String(b.Amount)
	}

	if b.Notes != "" {
		item.Notes = pointy.String(b.Notes)
	}

	if b.Image != "" {
		file, err := os.Open(b.Image)
		if err != nil {
			return err
		}

		encoder := imaging.Encoder{
			MaxWidth:  conf.Images.MaxWidth,
			MaxHeight: conf.Images.MaxHeight,
			Quality:   conf.Images.Quality,
		}

		encoded, err := encoder.Encode(file)
		file.Close()

		if err != nil {
			return fmt.Errorf("%s: %w", b.Image, err)
		}

		item.Image = pointy.String(encoded)
	}

	id, err := repo.BarItems().Add(context.Background(), &item)
	if err != nil {
		return err
	}

	fmt.Printf("Added %q to the bar cart as #%d\n", item.Name, id)

	return nil
}

type BarcartRemoveCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`

	ID uint `arg:"" help:"Bar item id"`
}

func (b *BarcartRemoveCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(b.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	if err := repo.BarItems().Delete(context.Background(), b.ID); err != nil {
		return err
	}

	fmt.Printf("Removed #%d from the bar cart\n", b.ID)

	return nil
}

type ShakeCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`

	All bool `help:"Include cocktails with missing ingredients"`
}

func (s *ShakeCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(s.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	ctx := context.Background()

	menu := catalog.New(repo, logger)
	if err := menu.Seed(ctx); err != nil {
		return err
	}

	cocktails, err := menu.Cocktails().All(ctx)
	if err != nil {
		return err
	}

	items, err := repo.BarItems().All(ctx)
	if err != nil {
		return err
	}

	shown := 0

	for _, availability := range catalog.MatchAll(cocktails, items) {
		if !availability.Ready && !s.All {
			continue
		}

		shown++

		if availability.Ready {
			fmt.Printf("  %-28s ready to make\n", availability.Cocktail.Name)

			continue
		}

		fmt.Printf("  %-28s %3d%%  missing: %s\n",
			availability.Cocktail.Name, availability.Percent, strings.Join(availability.Missing, ", "))
	}

	if shown == 0 {
		fmt.Println("Nothing is makeable yet - stock the bar cart first.")
	}

	return nil
}
