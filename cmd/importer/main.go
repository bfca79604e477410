package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"greenlake/internal/domain/entity"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	names := make([]string, 0, len(entity.Datasets))
	for _, d := range entity.Datasets {
		names = append(names, string(d))
	}

	app := &cli.App{
		Name:  "importer",
		Usage: "Publishes the GreenLake tourism CSV datasets to the ingestion broker",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Aliases: []string{"e"}, Value: ".env", Usage: "Optional dotenv file loaded before the config"},
		},
		Before: func(c *cli.Context) error {
			if err := godotenv.Load(c.String("env-file")); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to load %s: %w", c.String("env-file"), err)
			}

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import one dataset file",
				ArgsUsage: "<file.csv>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "dataset",
						Aliases:  []string{"d"},
						Required: true,
						Usage:    "Dataset in the file (" + strings.Join(names, ", ") + ")",
					},
					&cli.BoolFlag{Name: "dry-run", Usage: "Validate without publishing"},
				},
				Action: runImport,
			},
			{
				Name:      "import-dir",
				Usage:     "Import every <dataset>.csv found in a directory",
				ArgsUsage: "<dir>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "dry-run", Usage: "Validate without publishing"},
				},
				Action: runImportDir,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
