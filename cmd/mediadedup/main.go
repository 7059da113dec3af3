package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/wky114/media-duplicate-cleaner/internal/domain/port"
	"github.com/wky114/media-duplicate-cleaner/internal/infra/config"
	"github.com/wky114/media-duplicate-cleaner/internal/infra/ffprobe"
	"github.com/wky114/media-duplicate-cleaner/internal/infra/imagemeta"
	"github.com/wky114/media-duplicate-cleaner/internal/infra/report"
	"github.com/wky114/media-duplicate-cleaner/internal/infra/runlog"
	"github.com/wky114/media-duplicate-cleaner/internal/infra/term"
	"github.com/wky114/media-duplicate-cleaner/internal/infra/walker"
	"github.com/wky114/media-duplicate-cleaner/internal/usecase"
	"github.com/wky114/media-duplicate-cleaner/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	assumeYes := pflag.BoolP("yes", "y", false, "delete without asking for confirmation")
	logLevel := pflag.String("log-level", "", "override MDC_LOG_LEVEL")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	console := term.NewStdinConfirmer(os.Stdin, os.Stdout)

	root := pflag.Arg(0)
	if root == "" {
		root, err = console.Prompt("Directory to scan")
		if err != nil {
			return err
		}
		if root == "" {
			return fmt.Errorf("no directory given")
		}
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve directory: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("invalid directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	runID := uuid.New()
	actionLog, err := runlog.Create(cfg.LogDir, time.Now(), runID, root)
	if err != nil {
		return err
	}
	defer actionLog.Close()

	var metadata port.MetadataProvider
	if ffprobe.Available() {
		metadata = ffprobe.NewProvider(time.Duration(cfg.FFprobeTimeoutSec)*time.Second, log)
	} else {
		log.Warn("ffprobe not found on PATH, video duplicate detection disabled")
	}

	ctx := context.Background()

	files, err := walker.New(log).Scan(root)
	if err != nil {
		return err
	}
	log.Info("scan finished", zap.String("root", root), zap.Int("media_files", len(files)))

	planner := usecase.NewPlanner(metadata, imagemeta.NewProber(), log, usecase.PlannerConfig{
		DurationToleranceSec: cfg.DurationToleranceSec,
		FPSTolerance:         cfg.FPSTolerance,
	})
	plan, err := planner.BuildPlan(ctx, runID, root, files)
	if err != nil {
		return err
	}

	printer := report.NewPrinter(os.Stdout)
	printer.PrintPlan(plan)

	if plan.DeleteCount() == 0 {
		fmt.Println("No duplicates found.")
		return nil
	}

	approved := *assumeYes
	if !approved {
		approved, err = console.Confirm(fmt.Sprintf("Delete %d files", plan.DeleteCount()))
		if err != nil {
			return err
		}
	}

	sum := usecase.NewExecutor(actionLog, log).Execute(plan, approved)
	printer.PrintSummary(sum, actionLog.Path())
	return nil
}
