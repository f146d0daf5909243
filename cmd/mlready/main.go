package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/cli"
	"github.com/teundejong/mlready/internal/config"
	"github.com/teundejong/mlready/internal/db"
	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/repository"
	"github.com/teundejong/mlready/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.NoColor {
		// termenv honors NO_COLOR on first render.
		os.Setenv("NO_COLOR", "1")
	}

	// Load the question bank: embedded by default, external when configured.
	var b *bank.Bank
	if cfg.BankPath != "" {
		b, err = bank.LoadFile(cfg.BankPath)
	} else {
		b, err = bank.Load()
	}
	if err != nil {
		return err
	}

	if len(cfg.MinimumLevels) > 0 {
		overrides := make(map[string]domain.Level, len(cfg.MinimumLevels))
		for name, lvl := range cfg.MinimumLevels {
			overrides[name] = domain.Level(lvl)
		}
		if err := b.ApplyMinimumOverrides(overrides); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." && cfg.DBPath != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)
	answerRepo := repository.NewSQLiteAnswerRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.Observer = service.NoopObserver{}
	if os.Getenv("MLREADY_DEBUG") != "" {
		observer = service.NewLogObserver(os.Stderr)
	}

	evalSvc := service.NewEvaluationService(assessmentRepo, answerRepo, b, observer)

	app := &cli.App{
		Bank:        b,
		Assessments: service.NewAssessmentService(assessmentRepo, answerRepo, observer),
		Eligibility: service.NewEligibilityService(assessmentRepo, observer),
		Responses:   service.NewResponseService(assessmentRepo, answerRepo, b, observer),
		Evaluations: evalSvc,
		Advice:      service.NewAdviceService(evalSvc, b),
		Transfers:   service.NewTransferService(uow, assessmentRepo, answerRepo, b, observer),
	}

	return cli.NewRootCmd(app).Execute()
}
