package memory

import (
	"sync"

	"emberwild/internal/app/ports"
	"emberwild/internal/domain/discovery"
)

// Store backs every memory repo for one process: tests and DSN-less runs.
type Store struct {
	mu            sync.RWMutex
	progress      map[string]discovery.Progress
	progressOrder []string
	completions   []ports.CompletionRow
	completedIDs  map[string]struct{}
	notifications []ports.NotificationRecord
}

func NewStore() *Store {
	return &Store{
		progress:     map[string]discovery.Progress{},
		completedIDs: map[string]struct{}{},
	}
}
