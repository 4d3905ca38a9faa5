package scheduler

import (
	"context"
	"time"

	"github.com/chris/kudos-ledger/pkg/models"
)

// Scheduler defines the interface for a component that queues allocation runs
// for asynchronous processing by the allocation worker.
type Scheduler interface {
	// ScheduleAllocation enqueues a run of one allocation definition. The run is
	// not visible to workers before delay has elapsed.
	ScheduleAllocation(ctx context.Context, req *models.AllocationRequest, delay time.Duration) error
}
