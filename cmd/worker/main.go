package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"custodian/internal/application/evidence/usecases"
	"custodian/internal/infrastructure/config"
	"custodian/internal/infrastructure/database"
	"custodian/internal/infrastructure/email"
	"custodian/internal/infrastructure/repository"
	"custodian/internal/shared/logger"
)

// The worker runs the retention reminder sweep on a cron schedule. Items
// whose reminder fails stay due and are retried on the next run.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting retention worker", "environment", env, "schedule", cfg.Retention.CheckSchedule)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	evidenceRepo := repository.NewEvidenceRepository(database.Get())
	userRepo := repository.NewUserRepository(database.Get())
	assignmentRepo := repository.NewAssignmentRepository(database.Get())

	sender := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})
	notifier := email.NewNotifier(sender, userRepo, assignmentRepo, log)
	sweep := usecases.NewRetentionSweepUseCase(evidenceRepo, notifier, log)

	runSweep := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		result, err := sweep.Execute(ctx)
		if err != nil {
			log.Errorw("retention sweep failed", "error", err)
			return
		}
		log.Infow("retention sweep completed",
			"examined", result.Examined, "sent", result.Sent, "failed", result.Failed)
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Retention.CheckSchedule, runSweep); err != nil {
		log.Fatalw("invalid retention schedule", "schedule", cfg.Retention.CheckSchedule, "error", err)
	}

	// Catch up on anything due before the first scheduled run.
	runSweep()

	scheduler.Start()
	log.Infow("retention worker started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
		log.Warnw("timed out waiting for running sweep to finish")
	}

	log.Infow("retention worker stopped")
}
