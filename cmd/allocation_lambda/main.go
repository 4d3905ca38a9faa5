package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/kudos-ledger/pkg/allocation"
	"github.com/chris/kudos-ledger/pkg/config"
	"github.com/chris/kudos-ledger/pkg/service"
)

var engine *allocation.Engine

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := config.NewLogger(cfg.LogLevel)

	// Initialize dependencies once.
	svc, err := service.New(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialise services: %v", err)
	}
	engine = svc.Allocation
}

// HandleRequest runs every active allocation definition. It is invoked by an
// EventBridge schedule; see cadence.Cadence.ScheduleExpression.
func HandleRequest(ctx context.Context, event events.CloudWatchEvent) error {
	log.Printf("Allocation tick %s at %s", event.ID, event.Time)

	results, err := engine.RunDue(ctx)
	if err != nil {
		log.Printf("ERROR: allocation tick failed: %v", err)
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			log.Printf("ERROR: definition %s (%s): %v", r.DefinitionId, r.Cadence, r.Err)
			continue
		}
		log.Printf("Definition %s (%s): %s", r.DefinitionId, r.Cadence, r.Outcome)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
