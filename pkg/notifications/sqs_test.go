package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/kudos-ledger/pkg/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSQSPublisher(t *testing.T) {
	msg := &Message{
		Kind:        ClaimApproved,
		ClaimId:     "claim-1",
		ReceiverIds: []string{"bob"},
		Amount:      20,
		OccurredAt:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := mocks.NewSQSAPI(t)
		p := NewSQSPublisher(mockClient, "notifications")

		mockClient.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
			var decoded Message
			if err := json.Unmarshal([]byte(*in.MessageBody), &decoded); err != nil {
				return false
			}
			return decoded.Kind == ClaimApproved &&
				*in.MessageAttributes["kind"].StringValue == "claimApproved"
		})).Return(&sqs.SendMessageOutput{}, nil).Once()

		require.NoError(t, p.Publish(context.Background(), msg))
	})

	t.Run("Send Fails", func(t *testing.T) {
		mockClient := mocks.NewSQSAPI(t)
		p := NewSQSPublisher(mockClient, "notifications")

		mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("sqs down")).Once()

		err := p.Publish(context.Background(), msg)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send notification to SQS")
	})
}

func TestNoOpPublisher(t *testing.T) {
	assert.NoError(t, NoOpPublisher{}.Publish(context.Background(), &Message{Kind: ClaimRejected}))
}
