package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"curgo/config"
	"curgo/internal/app"
	"curgo/internal/color"
	"curgo/internal/domain/models"
	"curgo/internal/format"
	"curgo/internal/lib/logger/sl"
	"curgo/internal/persist"
	"curgo/internal/tui"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("cur", "env", cfg.Env, "files", len(cfg.Files))

	if len(cfg.Files) == 0 {
		fmt.Fprintln(os.Stderr, "cur: at least one input file is required")
		os.Exit(1)
	}

	application := app.New(log, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-stop
		log.Info("received shutdown signal")
		cancel()
	}()

	start := time.Now()
	if err := application.LoadAll(ctx, nil); err != nil {
		fmt.Fprintln(os.Stderr, "cur:", err)
		os.Exit(1)
	}
	log.Info("index built", "elapsed", format.Duration(time.Since(start)))

	reports := application.Reports()

	prior, hadPrior, err := persist.Load(cfg.PersistPath)
	if err != nil {
		log.Error("failed to read persisted state", "error", sl.Err(err))
	}

	if cfg.Interactive {
		runInteractive(log, reports)
	} else {
		printReports(reports)
	}

	printSummary(reports, prior, hadPrior)

	totals := sumReports(reports)
	if err := persist.Save(cfg.PersistPath, totals); err != nil {
		log.Error("failed to write persisted state", "error", sl.Err(err))
	}

	if err := application.Close(); err != nil {
		log.Error("failed to close application", "error", sl.Err(err))
	}
}

func runInteractive(log *slog.Logger, reports []models.Report) {
	browser, err := tui.New(log, reports)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cur: failed to start interactive browser:", err)
		os.Exit(1)
	}
	defer browser.Close()
	if err := browser.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "cur: interactive browser exited with error:", err)
		os.Exit(1)
	}
}

func printReports(reports []models.Report) {
	enabled := color.Enabled()
	for _, r := range reports {
		header := fmt.Sprintf("severity %d: %d repeats of length %d", r.Severity, r.Count, r.Length)
		fmt.Println(color.Yellow(header, enabled))

		fmt.Print("@")
		for _, loc := range r.Locations {
			fmt.Printf(" (%s,%d)", loc.File, loc.LineNo)
		}
		fmt.Println()

		for _, line := range r.Lines {
			fmt.Println(color.Red(line, enabled))
		}
		fmt.Println()
	}
}

func printSummary(reports []models.Report, prior persist.State, hadPrior bool) {
	totals := sumReports(reports)
	fmt.Printf("%d/%d can be refactored\n", totals.TotalSeverity, totals.TotalLines)
	if hadPrior {
		fmt.Printf("previous run: %d/%d\n", prior.TotalSeverity, prior.TotalLines)
	}
}

func sumReports(reports []models.Report) persist.State {
	var s persist.State
	for _, r := range reports {
		s.TotalSeverity += r.Severity
		s.TotalLines += r.Length
	}
	return s
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
