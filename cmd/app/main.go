package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/rr-ventures/website-aiusecases/internal"
	"github.com/rr-ventures/website-aiusecases/internal/api"
	"github.com/rr-ventures/website-aiusecases/internal/dataset"
	"github.com/rr-ventures/website-aiusecases/internal/mcpserver"
	pkgconfig "github.com/rr-ventures/website-aiusecases/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(configPath, cfg); err != nil {
		// A missing config file at the default path is fine; defaults apply.
		if errors.Is(err, os.ErrNotExist) && !cmd.IsSet("config") {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

// runMCP loads the dataset once and serves the portfolio tools over stdio.
func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	loader := dataset.NewLoader(
		dataset.NewSource(cfg.Data.WinsPath),
		dataset.NewSource(cfg.Data.TimelinePath),
	)
	snap, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	store := dataset.NewStore()
	store.Replace(snap)

	srv := mcpserver.New(api.NewService(store))
	return srv.ServeStdio()
}

func main() {
	cmd := &cli.Command{
		Name:   "aiusecases",
		Usage:  "Read-only portfolio service for documented AI wins and a daily activity timeline",
		Action: runServe,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "mcp",
				Usage:  "Serve portfolio tools over the Model Context Protocol on stdio",
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
