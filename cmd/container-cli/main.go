package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"

	"github.com/Envuso/object-container/container"
	"github.com/Envuso/object-container/logger"
)

func main() {
	app := &cli.App{
		Name:      "object container demo",
		Usage:     "load key-value entries into a container and inspect the result",
		ArgsUsage: "key=value pairs to put after the input file is loaded",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "lowercaseKeys",
				Aliases: []string{"lk"},
				Usage:   "lowercase every key before lookup and storage",
			},
			&cli.BoolFlag{
				Name:    "lowercaseValues",
				Aliases: []string{"lv"},
				Usage:   "lowercase every string value before storage",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "path to a json file holding a flat string-to-string object",
			},
			&cli.StringSliceFlag{
				Name:    "get",
				Aliases: []string{"g"},
				Usage:   "key(s) to look up once all entries are loaded",
			},
			&cli.StringFlag{
				Name:    "logLevel",
				Aliases: []string{"l"},
				Usage:   `minimum log level, allowed values: "debug", "info", "error"`,
				Value:   "info",
			},
		},
		Action: func(ctx *cli.Context) error {
			logger.Setup(ctx.String("logLevel"), "container-cli")
			cfg := container.Config{
				LowercaseKeys:   ctx.Bool("lowercaseKeys"),
				LowercaseValues: ctx.Bool("lowercaseValues"),
			}
			return run(cfg, ctx.String("input"), ctx.Args().Slice(), ctx.StringSlice("get"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func run(cfg container.Config, inputFile string, pairs []string, lookups []string) error {
	runId := uuid.NewString()
	log.Info().Str("runId", runId).Bool("lowercaseKeys", cfg.LowercaseKeys).Bool("lowercaseValues", cfg.LowercaseValues).Msg("building container")

	initial, err := loadInput(inputFile)
	if err != nil {
		return err
	}

	c := container.NewWithConfig(initial, cfg)
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("invalid entry %q, expected key=value", pair)
		}
		c.Put(key, value)
	}
	log.Info().Int("entries", c.Len()).Msg("container populated")

	fmt.Println(renderEntries(c))

	for _, key := range lookups {
		value, found := c.Lookup(key)
		if !found {
			log.Info().Str("key", key).Msg("key not present")
			continue
		}
		log.Info().Str("key", key).Str("value", value).Msg("lookup")
	}
	return nil
}

func loadInput(inputFile string) (map[string]string, error) {
	if inputFile == "" {
		return nil, nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	var initial map[string]string
	if err := json.Unmarshal(data, &initial); err != nil {
		return nil, fmt.Errorf("failed to parse input file %s: %w", inputFile, err)
	}
	return initial, nil
}

func renderEntries(c *container.Container[string]) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Key", "Value"})

	keys := c.Keys()
	slices.Sort(keys)
	for _, key := range keys {
		t.AppendRow(table.Row{key, c.Get(key)})
	}
	return t.Render()
}
