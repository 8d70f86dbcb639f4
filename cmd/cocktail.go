package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.openly.dev/pointy"

	"neat.bar/Neat/configs"
	"neat.bar/Neat/pkg/imaging"
	"neat.bar/Neat/pkg/model"
	"neat.bar/Neat/pkg/repository"
)

type AddCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`

	Name        string   `arg:"" help:"Cocktail name"`
	Description string   `help:"Short description"`
	Glassware   string   `enum:"rocks,coupe,highball,martini,wine,shot,mug,other" default:"rocks" help:"Glassware category"`
	Ingredient  []string `help:"Ingredient as 'name|amount|unit', append '|optional' for garnishes" short:"i"`
	Instruction []string `help:"Instruction step, in order"`
	Tag         []string `help:"Tag (repeatable)" short:"t"`
	Notes       string   `help:"Free-text notes"`
	Image       []string `help:"Path to an image to embed" type:"existingfile"`
}

func (a *AddCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, repo, err := openRepository(a.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: cocktail needs a name", repository.ErrValidation)
	}

	ingredients := make([]model.Ingredient, 0, len(a.Ingredient))

	for _, raw := range a.Ingredient {
		ingredient, err := parseIngredient(raw)
		if err != nil {
			return err
		}

		ingredients = append(ingredients, ingredient)
	}

	images, err := encodeImages(a.Image, conf)
	if err != nil {
		return err
	}

	cocktail := model.Cocktail{
		Name:         strings.TrimSpace(a.Name),
		Description:  a.Description,
		Glassware:    model.Glassware(a.Glassware),
		Ingredients:  ingredients,
		Instructions: a.Instruction,
		Tags:         a.Tag,
		Images:       images,
	}

	if a.Notes != "" {
		cocktail.Notes = pointy.String(a.Notes)
	}

	id, err := repo.Cocktails().Add(context.Background(), &cocktail)
	if err != nil {
		return err
	}

	fmt.Printf("Added %q as #%d\n", cocktail.Name, id)

	return nil
}

type FavoriteCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`

	ID  uint `arg:"" help:"Cocktail id"`
	Off bool `help:"Clear the favorite flag instead of setting it"`
}

func (f *FavoriteCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(f.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	err = repo.Cocktails().Update(context.Background(), f.ID, map[string]any{"is_favorite": !f.Off})
	if err != nil {
		return err
	}

	if f.Off {
		fmt.Printf("Removed #%d from favorites\n", f.ID)
	} else {
		fmt.Printf("Added #%d to favorites\n", f.ID)
	}

	return nil
}

type RemoveCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`

	ID uint `arg:"" help:"Cocktail id"`
}

func (r *RemoveCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(r.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	if err := repo.Cocktails().Delete(context.Background(), r.ID); err != nil {
		return err
	}

	fmt.Printf("Removed #%d\n", r.ID)

	return nil
}

func parseIngredient(raw string) (model.Ingredient, error) {
	parts := strings.Split(raw, "|")

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return model.Ingredient{}, fmt.Errorf("%w: ingredient needs a name", repository.ErrValidation)
	}

	ingredient := model.Ingredient{Name: name}

	if len(parts) > 1 {
		ingredient.Amount = strings.TrimSpace(parts[1])
	}

	if len(parts) > 2 {
		ingredient.Unit = strings.TrimSpace(parts[2])
	}

	if len(parts) > 3 {
		ingredient.Optional = strings.EqualFold(strings.TrimSpace(parts[3]), "optional")
	}

	return ingredient, nil
}

func encodeImages(paths []string, conf *configs.Config) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	encoder := imaging.Encoder{
		MaxWidth:  conf.Images.MaxWidth,
		MaxHeight: conf.Images.MaxHeight,
		Quality:   conf.Images.Quality,
	}

	images := make([]string, 0, len(paths))

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}

		encoded, err := encoder.Encode(file)
		file.Close()

		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		images = append(images, encoded)
	}

	if !imaging.WithinLimit(images, conf.Images.MaxTotalMB) {
		return nil, fmt.Errorf("%w: embedded images exceed %dMB", repository.ErrValidation, conf.Images.MaxTotalMB)
	}

	return images, nil
}
