package cmd

import (
	"context"
	"fmt"

	"neat.bar/Neat/pkg/catalog"
	"neat.bar/Neat/pkg/mixologist"
)

type SurpriseCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`
}

func (s *SurpriseCmd) Run(cmdCtx *Context) error {
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

	cocktail, err := menu.Random(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Tonight you're having:")
	printCocktail(cocktail, true)

	return nil
}

type ChatCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`

	Message string `arg:"" optional:"" help:"What you're in the mood for"`
	Save    bool   `help:"Save the suggested recipe to the menu"`
}

func (ch *ChatCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(ch.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	ctx := context.Background()

	fmt.Printf("Mixologist: %s\n", mixologist.Greeting)

	if ch.Message == "" {
		return nil
	}

	fmt.Printf("You: %s\n", ch.Message)

	suggestion, err := mixologist.New().Suggest(ctx, ch.Message)
	if err != nil {
		return err
	}

	fmt.Printf("Mixologist: %s\n\n", suggestion.Reply)

	recipe := suggestion.Recipe
	printCocktail(&recipe, true)

	if !ch.Save {
		return nil
	}

	id, err := repo.Cocktails().Add(ctx, &recipe)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %q as #%d\n", recipe.Name, id)

	return nil
}
