package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	clilog "github.com/apex/log/handlers/cli"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/plexkit/movlist/internal/collection"
	"github.com/plexkit/movlist/internal/config"
	"github.com/plexkit/movlist/internal/render"
	"github.com/plexkit/movlist/internal/scan"
	"github.com/plexkit/movlist/internal/selector"
)

var Version = "v0.0.0"

func main() {
	app := &cli.App{
		Name:      "movlist",
		Usage:     "list a Plex-style movie library as a table",
		Version:   Version,
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "sort",
				Usage: "sort key: title, year, imdb or tmdb",
			},
			&cli.StringFlag{
				Name:  "filter",
				Usage: "only list titles matching the query",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a configuration file",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable styled output",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"debug"},
				Usage:   "debug log level",
			},
		},
		Before: func(ctx *cli.Context) error {
			log.SetHandler(clilog.New(os.Stderr))
			if ctx.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			if ctx.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%s", err)
	}
}

func run(ctx *cli.Context) error {
	cfg := config.Default()
	if ctx.IsSet("config") {
		var err error
		if cfg, err = config.Load(ctx.String("config")); err != nil {
			return fmt.Errorf("cannot load configuration: %w", err)
		}
	}

	path := cfg.Library
	if ctx.Args().Present() {
		path = ctx.Args().First()
	}
	if path == "" {
		return fmt.Errorf("no library path given and no default available")
	}
	log.Debugf("listing %s", path)

	c, err := scan.Load(path, config.IgnoredFiles())
	if err != nil {
		return err
	}
	log.Debugf("parsed %d entries", c.Len())

	sortKey := cfg.Sort
	if ctx.IsSet("sort") {
		sortKey = ctx.String("sort")
	}
	c.SortBy(collection.ParseSortKey(sortKey, log.Log), log.Log)

	movies := selector.Filter(c.Movies(), ctx.String("filter"))

	fmt.Println(render.Table(movies, render.DefaultStyle()))
	return nil
}
