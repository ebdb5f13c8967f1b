package dispatch

import (
	"context"
	"time"
)

// Job describes one outbound delivery for the external dispatch
// collaborator. Real platform delivery (WhatsApp Business API, SMS
// gateway, email) happens outside this service; the core only queues.
type Job struct {
	UserID      uint
	CustomerID  uint
	Platform    string
	Message     string
	ScheduledAt *time.Time // nil means deliver as soon as possible
}

// Provider queues delivery work. Enqueue must not block on delivery; the
// core never awaits the outcome (fire-and-forget).
type Provider interface {
	Enqueue(ctx context.Context, job Job) error
}
