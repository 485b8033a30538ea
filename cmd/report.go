package main

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/Sebastian1234123/sistema-farmacia/internal/export"
	"github.com/Sebastian1234123/sistema-farmacia/internal/report"
	"github.com/Sebastian1234123/sistema-farmacia/internal/store"
	"github.com/spf13/cobra"
)

var (
	reportPeriod   string
	reportFormat   string
	reportSections []string
	reportOut      string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute a sales report and export its sections",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportPeriod, "period", "p", "last_30_days", "today, last_7_days, last_30_days, last_90_days or last_year")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "csv", "csv or json")
	reportCmd.Flags().StringSliceVarP(&reportSections, "section", "s", nil, "sections to export (default all)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", ".", "output directory, or - for stdout")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	sections := export.Sections
	if len(reportSections) > 0 {
		sections = make([]export.Section, 0, len(reportSections))
		for _, raw := range reportSections {
			s, err := export.ParseSection(raw)
			if err != nil {
				return err
			}
			sections = append(sections, s)
		}
	}
	sink, err := export.SinkFor(reportFormat)
	if err != nil {
		return err
	}

	dbCfg := cfg.DB
	dbCfg.Automigrate = false
	db, err := store.New(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("couldn't connect to mysql: %w", err)
	}
	defer db.Close()

	svc, err := report.New(cfg.Reports, db.Projection())
	if err != nil {
		return err
	}
	r, err := svc.Report(ctx, reportPeriod)
	if err != nil {
		return err
	}

	if reportOut == "-" {
		for _, s := range sections {
			tbl, err := export.Build(r, s)
			if err != nil {
				return err
			}
			if err := sink.Write(os.Stdout, tbl); err != nil {
				return err
			}
		}
		return nil
	}

	paths, err := export.WriteFiles(ctx, r, sections, sink, reportOut)
	if err != nil {
		return err
	}
	for _, p := range paths {
		slog.Default().InfoContext(ctx, "section exported", slog.String("path", p))
	}
	return nil
}
