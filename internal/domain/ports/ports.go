// Package ports defines interfaces for external dependencies.
// Usecases depend on these abstractions, not concrete implementations;
// adapters implement them.
package ports

import (
	"context"

	"github.com/chartwell/andy/internal/domain/entities"
)

// DocumentStore holds the retrieval corpus. A durable backend can be
// substituted for the in-memory adapter without touching retrieval
// logic.
type DocumentStore interface {
	// Append adds a document. Duplicate ids are rejected, not overwritten.
	Append(ctx context.Context, doc entities.Document) error

	// ListAll returns every document in insertion order. The returned
	// slice is a consistent snapshot: later appends do not mutate it.
	ListAll(ctx context.Context) ([]entities.Document, error)
}

// SolarSimulator runs a photovoltaic yield simulation. The real
// implementation proxies a third-party HTTP service and owns its own
// timeout policy; the core never blocks on it.
type SolarSimulator interface {
	Simulate(ctx context.Context, scenario entities.SolarScenario) (*entities.SolarEstimate, error)
}
