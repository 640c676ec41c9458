package ports

import (
	"context"

	"emberwild/internal/domain/discovery"
)

// WorldProvider answers environment lookups for the terrain collaborator.
// An error degrades the caller to a neutral environment, never a failed tick.
type WorldProvider interface {
	EnvironmentAt(ctx context.Context, pos discovery.Position) (discovery.EnvironmentTag, error)
}
