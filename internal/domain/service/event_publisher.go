package service

import (
	"context"
	"time"
)

// Address lifecycle event types.
const (
	AddressEventCreated = "address.created"
	AddressEventDeleted = "address.deleted"
)

// AddressEvent describes an address lifecycle change for downstream
// consumers (feeds, moderation, analytics).
type AddressEvent struct {
	Type       string    `json:"type"`
	AddressID  string    `json:"address_id"`
	UserID     string    `json:"user_id"`
	IsPublic   bool      `json:"is_public"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes address lifecycle events. Publishing is
// best-effort from the mutation gateway's point of view: a publish failure
// never fails the mutation that triggered it.
type EventPublisher interface {
	PublishAddressEvent(ctx context.Context, event *AddressEvent) error
	Close() error
}
