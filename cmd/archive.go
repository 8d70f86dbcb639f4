package cmd

import (
	"context"
	"fmt"
	"os"

	"neat.bar/Neat/pkg/backup"
)

type ExportCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`

	Out string `default:"neat-export.json" help:"Archive file to write" short:"o"`
}

func (e *ExportCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(e.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	file, err := os.Create(e.Out)
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck // write errors surface from Export

	archive, err := backup.Export(context.Background(), repo, file)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d cocktails, %d ratings, %d bar items to %s (archive %s)\n",
		len(archive.Cocktails), len(archive.Ratings), len(archive.BarItems), e.Out, archive.ID)

	return nil
}

type ImportCmd struct {
	ConfigFile string `default:".Neat.toml" help:"Path to config file" short:"c"`

	File string `arg:"" help:"Archive file to read" type:"existingfile"`
}

func (i *ImportCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(i.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do with a failed close

	file, err := os.Open(i.File)
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck // read-only file

	archive, err := backup.Import(context.Background(), repo, file)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d cocktails, %d ratings, %d bar items from archive %s\n",
		len(archive.Cocktails), len(archive.Ratings), len(archive.BarItems), archive.ID)

	return nil
}
