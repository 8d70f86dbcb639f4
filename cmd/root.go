package cmd

import (
	"go.uber.org/zap"

	"neat.bar/Neat/configs"
	"neat.bar/Neat/pkg/repository"
)

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Menu     MenuCmd     `cmd:"" default:"1"                          help:"Browse the cocktail menu"`
	Add      AddCmd      `cmd:"" help:"Add a cocktail to the menu"`
	Favorite FavoriteCmd `cmd:"" help:"Toggle a cocktail's favorite flag"`
	Remove   RemoveCmd   `cmd:"" help:"Remove a cocktail from the menu"`
	Surprise SurpriseCmd `cmd:"" help:"Pick a random cocktail"`
	Shake    ShakeCmd    `cmd:"" help:"See what the bar cart can make"`
	Barcart  BarcartCmd  `cmd:"" help:"Manage the bar cart inventory"`
	Rate     RateCmd     `cmd:"" help:"Record a tasting rating"`
	Ratings  RatingsCmd  `cmd:"" help:"List recorded ratings"`
	Chat     ChatCmd     `cmd:"" help:"Ask the mixologist for a suggestion"`
	Export   ExportCmd   `cmd:"" help:"Export all collections to a JSON archive"`
	Import   ImportCmd   `cmd:"" help:"Import a JSON archive"`
	Migrate  MigrateCmd  `cmd:"" help:"Run database migrations"`
}

func newLogger(debug bool) *zap.Logger {
	logConfig := zap.NewProductionConfig()
	if debug {
		logConfig = zap.NewDevelopmentConfig()
	}

	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()

	return logger
}

func openRepository(configFile string, logger *zap.Logger) (*configs.Config, *repository.Repository, error) {
	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return nil, nil, err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error opening database", zap.Error(err))

		return nil, nil, err
	}

	return conf, repo, nil
}
