package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/kudos-ledger/pkg/allocation"
	"github.com/chris/kudos-ledger/pkg/cadence"
	"github.com/chris/kudos-ledger/pkg/config"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/service"
	"github.com/chris/kudos-ledger/pkg/storage"
)

// Runner runs one scheduled allocation.
type Runner interface {
	RunScheduled(ctx context.Context, definitionID string, c cadence.Cadence) (allocation.Outcome, error)
}

var runner Runner

// HandleRequest processes queued allocation requests. Failed messages are
// reported individually so SQS only redelivers those.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		if err := process(ctx, runner, message); err != nil {
			log.Printf("ERROR: message %s: %v", message.MessageId, err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
		}
	}
	return resp, nil
}

func process(ctx context.Context, r Runner, message events.SQSMessage) error {
	var req models.AllocationRequest
	if err := json.Unmarshal([]byte(message.Body), &req); err != nil {
		// A malformed body will never succeed; drop it.
		log.Printf("ERROR: failed to unmarshal allocation request from SQS message %s: %v", message.MessageId, err)
		return nil
	}

	outcome, err := r.RunScheduled(ctx, req.DefinitionId, req.Cadence)
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, allocation.ErrCadenceMismatch):
		log.Printf("ERROR: dropping request for %s (%s): %v", req.DefinitionId, req.Cadence, err)
		return nil
	case err != nil:
		return err
	}

	log.Printf("Definition %s (%s): %s", req.DefinitionId, req.Cadence, outcome)
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := config.NewLogger(cfg.LogLevel)

	svc, err := service.New(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialise services: %v", err)
	}
	runner = svc.Allocation

	lambda.Start(HandleRequest)
}
