package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"greenlake/config"
	"greenlake/internal/domain/constants"
	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"
	"greenlake/internal/infra/broker"
	"greenlake/internal/infra/dataset"
	logs "greenlake/internal/infra/log"
	"greenlake/internal/usecase"
	"greenlake/internal/usecase/impl"
	"greenlake/internal/util"

	"github.com/urfave/cli/v2"
)

// importer holds what every import run shares
type importer struct {
	importUC  usecase.DatasetImportUsecase
	publisher service.DatasetPublisher
	logger    *slog.Logger
}

func newImporter(ctx context.Context, dryRun bool) (*importer, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if dryRun {
		cfg.Broker = &config.BrokerConfig{Provider: constants.BrokerProviderNoop}
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	publisher, err := broker.NewPublisher(ctx, cfg.Broker, logger)
	if err != nil {
		return nil, err
	}

	return &importer{
		importUC: impl.NewDatasetImportService(impl.DatasetImportServiceParams{
			Publisher: publisher,
			Logger:    logger,
		}),
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (i *importer) close() {
	if err := i.publisher.Close(); err != nil {
		i.logger.Warn("Failed to close publisher", slog.Any("error", err))
	}
}

func runImport(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one CSV file")
	}
	ds, ok := entity.ParseDataset(c.String("dataset"))
	if !ok {
		return errors.Errorf("unknown dataset %q", c.String("dataset"))
	}

	imp, err := newImporter(c.Context, c.Bool("dry-run"))
	if err != nil {
		return err
	}
	defer imp.close()

	report, err := imp.importFile(c.Context, ds, c.Args().First())
	if err != nil {
		return err
	}
	if len(report.Rejected) > 0 {
		return cli.Exit(fmt.Sprintf("%d rows rejected", len(report.Rejected)), 2)
	}

	return nil
}

func runImportDir(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one directory")
	}
	dir := c.Args().First()

	imp, err := newImporter(c.Context, c.Bool("dry-run"))
	if err != nil {
		return err
	}
	defer imp.close()

	rejected := 0
	found := 0
	// Catalog datasets go first so occupancy rows can find their hotels
	for _, ds := range entity.Datasets {
		path := filepath.Join(dir, string(ds)+".csv")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		found++

		report, err := imp.importFile(c.Context, ds, path)
		if err != nil {
			return err
		}
		rejected += len(report.Rejected)
	}

	if found == 0 {
		return errors.Errorf("no dataset files found in %s", dir)
	}
	if rejected > 0 {
		return cli.Exit(fmt.Sprintf("%d rows rejected", rejected), 2)
	}

	return nil
}

func (i *importer) importFile(ctx context.Context, ds entity.Dataset, path string) (*usecase.ImportReport, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	checksum, err := util.CalculateFileChecksum(path)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Importing %s from %s (%s, sha256 %s)\n", ds, path, util.FormatBytes(info.Size()), checksum[:12])
	start := time.Now()

	records, err := dataset.NewCSVLoader(ds).LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	report, err := i.importUC.Import(ctx, ds, records)
	if err != nil {
		return nil, err
	}

	fmt.Printf("  ✅ %d/%d rows published in %s\n", report.Published, report.Total, util.FormatDuration(time.Since(start)))
	for _, rejected := range report.Rejected {
		fmt.Printf("  ❌ line %d (%s): %s\n", rejected.Line, rejected.Key, rejected.Reason)
	}

	return report, nil
}
