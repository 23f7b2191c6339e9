package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventQueryStart EventType = "query_start"
	EventQueryEnd   EventType = "query_end"
	EventAPICall    EventType = "api_call"
	EventAPIReturn  EventType = "api_return"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// QueryEvent describes one question moving through the dispatcher.
type QueryEvent struct {
	EventBase
	Query string `json:"query"`
	// Pattern and Handler identify the table entry that fired. Empty on
	// query_start and when nothing matched.
	Pattern string `json:"pattern,omitempty"`
	Handler string `json:"handler,omitempty"`
	// Kind is the final ResultKind; only set on query_end.
	Kind ResultKind `json:"kind,omitempty"`
	// Answers is the untruncated result count; only set on query_end.
	Answers  int           `json:"answers,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// APIEvent describes one outbound API request.
type APIEvent struct {
	EventBase
	Endpoint string        `json:"endpoint"`
	Status   int           `json:"status,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	IsError  bool          `json:"is_error,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
// Any field may be nil; firing is skipped for nil hooks.
type LifecycleHooks struct {
	OnQueryStart func(context.Context, *QueryEvent)
	OnQueryEnd   func(context.Context, *QueryEvent)
	OnAPICall    func(context.Context, *APIEvent)
	OnAPIReturn  func(context.Context, *APIEvent)
}
