package dispatch

import (
	"context"
	"log"
)

// StubProvider logs and drops jobs; replace with a queue-backed provider
// in deployments that do real delivery.
type StubProvider struct{}

func (s *StubProvider) Enqueue(ctx context.Context, job Job) error {
	if job.ScheduledAt != nil {
		log.Printf("[dispatch] queued scheduled %s message for customer %d (user %d) at %s",
			job.Platform, job.CustomerID, job.UserID, job.ScheduledAt.Format("2006-01-02 15:04"))
		return nil
	}
	log.Printf("[dispatch] queued %s message for customer %d (user %d)",
		job.Platform, job.CustomerID, job.UserID)
	return nil
}
