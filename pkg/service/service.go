// Package service wires the ledger components for the binaries.
package service

import (
	"context"
	"log/slog"

	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/kudos-ledger/pkg/allocation"
	"github.com/chris/kudos-ledger/pkg/claims"
	"github.com/chris/kudos-ledger/pkg/config"
	"github.com/chris/kudos-ledger/pkg/ledger"
	"github.com/chris/kudos-ledger/pkg/notifications"
	"github.com/chris/kudos-ledger/pkg/scheduler"
	"github.com/chris/kudos-ledger/pkg/storage"
	"github.com/chris/kudos-ledger/pkg/storage/dynamodb"
	"github.com/chris/kudos-ledger/pkg/storage/memory"
)

// Services holds the wired components.
type Services struct {
	Store      storage.Storage
	Ledger     *ledger.Ledger
	Claims     *claims.Workflow
	Allocation *allocation.Engine
	Publisher  notifications.Publisher

	// Scheduler is nil when no allocation queue is configured.
	Scheduler scheduler.Scheduler
}

// New builds the components for the backend selected in cfg.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	s := &Services{Publisher: notifications.NoOpPublisher{}}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		logger.Warn("using in-memory storage, data is lost on exit")
		s.Store = memory.New()
	default:
		awsCfg, err := config.LoadAWS(ctx)
		if err != nil {
			return nil, err
		}
		s.Store = dynamodb.New(awsdynamodb.NewFromConfig(awsCfg), cfg.Tables)

		if cfg.AllocationQueueURL != "" || cfg.NotificationsQueueURL != "" {
			sqsClient := sqs.NewFromConfig(awsCfg)
			if cfg.AllocationQueueURL != "" {
				s.Scheduler = scheduler.NewSQSScheduler(sqsClient, cfg.AllocationQueueURL)
			}
			if cfg.NotificationsQueueURL != "" {
				s.Publisher = notifications.NewSQSPublisher(sqsClient, cfg.NotificationsQueueURL)
			}
		}
	}

	s.Ledger = ledger.New(s.Store)
	s.Claims = claims.NewWorkflow(s.Store, s.Ledger, s.Publisher, logger)
	s.Allocation = allocation.NewEngine(s.Store, s.Ledger, s.Publisher, logger)
	return s, nil
}
