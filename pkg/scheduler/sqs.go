package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/chris/kudos-ledger/pkg/models"
)

// maxDelay is the longest delivery delay SQS accepts.
const maxDelay = 15 * time.Minute

// SQSAPI is the subset of the SQS client used to publish messages.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSScheduler implements the Scheduler interface using AWS SQS.
type SQSScheduler struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSScheduler creates a new SQSScheduler.
func NewSQSScheduler(client SQSAPI, queueURL string) *SQSScheduler {
	return &SQSScheduler{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Scheduler = (*SQSScheduler)(nil)

// ScheduleAllocation sends the allocation request to an SQS queue for later processing.
func (s *SQSScheduler) ScheduleAllocation(ctx context.Context, req *models.AllocationRequest, delay time.Duration) error {
	if delay < 0 || delay > maxDelay {
		return fmt.Errorf("delay %s outside the SQS range of 0 to %s", delay, maxDelay)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal allocation request for SQS: %w", err)
	}

	_, err = s.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:     aws.String(s.QueueURL),
		MessageBody:  aws.String(string(body)),
		DelaySeconds: int32(delay / time.Second),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"definition_id": {
				DataType:    aws.String("String"),
				StringValue: aws.String(req.DefinitionId),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
