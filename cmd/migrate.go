package cmd

import (
	"context"

	"go.uber.org/zap"

	"neat.bar/Neat/pkg/catalog"
)

type MigrateCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`
	Seed       bool   `help:"Insert the sample cocktails after migrating"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(m.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	ctx := context.Background()

	if err := repo.Migrate(ctx); err != nil {
		logger.Error("error running migrations", zap.Error(err))

		return err
	}

	if m.Seed {
		return catalog.New(repo, logger).Seed(ctx)
	}

	return nil
}
