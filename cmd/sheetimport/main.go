// Command sheetimport loads a spreadsheet export into the event hub database.
//
// It runs once and exits. Every recognised sheet is upserted, so the same
// workbook can be imported again after fixing rows that were skipped.
//
// Usage:
//
//	go run ./cmd/sheetimport -file export.xlsx
//	go run ./cmd/sheetimport -file Events.xls -sheet Events
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"eventhub/internal/config"
	"eventhub/internal/database"
	"eventhub/internal/dto"
	"eventhub/internal/repositories"
	"eventhub/internal/services"
	"eventhub/internal/sheets"
)

func main() {
	file := flag.String("file", "", "workbook to import (.xlsx, or single-sheet .xls)")
	sheet := flag.String("sheet", "", "sheet name for a .xls file, e.g. Events")
	actor := flag.String("actor", "sheetimport", "name recorded in the audit log")
	envFile := flag.String("env", ".env", "KEY=value file loaded before reading the environment")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "sheetimport: -file is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*file, *sheet, *actor, *envFile); err != nil {
		fmt.Fprintf(os.Stderr, "sheetimport: %v\n", err)
		os.Exit(1)
	}
}

func run(path, sheetName, actor, envFile string) error {
	if err := config.LoadEnvFiles(envFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if sheetName == "" {
		sheetName = cfg.Import.DefaultSheet
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	book, err := sheets.Read(f, filepath.Base(path), sheetName, cfg.Import.MaxRows)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	auditService := services.NewAuditService(repositories.NewAuditLogRepository(db.DB), logger)
	importService := services.NewImportService(
		services.ImportRepositories{
			Staff:       repositories.NewStaffRepository(db.DB),
			Profiles:    repositories.NewStaffProfileRepository(db.DB),
			Events:      repositories.NewEventRepository(db.DB),
			Reports:     repositories.NewReportRepository(db.DB),
			Assignments: repositories.NewAssignmentRepository(db.DB),
			Sales:       repositories.NewSalesRepository(db.DB),
		},
		services.ImportBreakerConfig(cfg.Import),
		services.NewPinService(cfg.Security.BCryptCost, cfg.Security.PinLength),
		auditService,
		services.NewAuditLogger(logger),
		services.NewPrometheusMetrics(),
		logger,
	)

	fmt.Printf("Importing %s\n\n", path)
	summary, err := importService.Import(ctx, book, actor)
	if summary != nil {
		printSummary(summary)
	}
	if err != nil {
		if errors.Is(err, services.ErrCircuitBreakerOpen) {
			return fmt.Errorf("%w; rows above were stored, re-run once the database recovers", err)
		}
		return err
	}
	return nil
}

func printSummary(summary *dto.ImportSummary) {
	for _, sheet := range summary.Sheets {
		fmt.Printf("%-20s imported %5d  skipped %5d\n", sheet.Sheet, sheet.Imported, sheet.Skipped)
		for _, rowErr := range sheet.Errors {
			fmt.Printf("    %s\n", rowErr)
		}
	}
	for _, name := range summary.Unrecognised {
		fmt.Printf("%-20s not recognised, left alone\n", name)
	}

	imported, skipped := summary.Total()
	fmt.Printf("\nTotal: %d imported, %d skipped\n", imported, skipped)
}
