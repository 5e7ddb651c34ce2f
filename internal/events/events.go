// Package events publishes application lifecycle events to a message broker.
// The broker backend is chosen by configuration; publishing is best-effort
// and never blocks a request outcome.
package events

import (
	"context"
	"time"
)

// ApplicationsChannel is the channel all application events are published to.
const ApplicationsChannel = "job.applications"

// Event type values.
const (
	TypeApplied   = "application.applied"
	TypeWithdrawn = "application.withdrawn"
)

// ApplicationEvent describes an apply or withdraw mutation.
type ApplicationEvent struct {
	Type       string    `json:"type"`
	ApplyID    string    `json:"apply_id"`
	UserID     string    `json:"user_id"`
	JobID      string    `json:"job_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers serialized events to a named channel and returns the
// broker-assigned message id.
type Publisher interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
	Close() error
}
