// Command arraygen emits the per-length operation sources for package
// arrayfn from the bounds declared in its yaml config.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/xeptore/arrayfn/internal/codegen"
	"github.com/xeptore/arrayfn/log"
)

func main() {
	logger := log.NewDefault()

	//nolint:exhaustruct
	app := &cli.Command{
		Name:    "arraygen",
		Usage:   "Generate per-length array operation sources",
		Suggest: true,
		Flags: []cli.Flag{
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file path",
				Value: "arraygen.yml",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); nil != err {
		if errors.Is(err, context.Canceled) {
			logger.Trace().Msg("Generation was canceled")
			os.Exit(1)
		}

		logger.Error().Err(err).Msg("Generation exited with error")
		os.Exit(10)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger := log.NewDefault()

	conf, err := codegen.Load(cmd.String("config"))
	if nil != err {
		return fmt.Errorf("failed to load config: %v", err)
	}

	logger.Info().Dict("config", conf.ToDict()).Msg("Loaded generator config")

	files := codegen.Render(conf)

	eg, _ := errgroup.WithContext(ctx)
	for _, file := range files {
		eg.Go(func() error {
			name := filepath.Join(conf.OutDir, file.Name)
			if err := os.WriteFile(name, file.Content, 0o644); nil != err {
				return fmt.Errorf("failed to write %s: %v", name, err)
			}

			logger.Info().Str("file", name).Int("bytes", len(file.Content)).Msg("Wrote generated file")

			return nil
		})
	}

	if err := eg.Wait(); nil != err {
		return fmt.Errorf("failed to write generated files: %v", err)
	}

	summary := table.NewWriter()
	summary.SetOutputMirror(os.Stdout)
	summary.AppendHeader(table.Row{"File", "Bytes", "Lengths"})
	for _, file := range files {
		summary.AppendRow(table.Row{
			file.Name,
			len(file.Content),
			fmt.Sprintf("%d..%d", conf.MinLen, conf.MaxLen),
		})
	}
	summary.Render()

	return nil
}
