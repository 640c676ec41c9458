package ports

import (
	"context"

	"emberwild/internal/domain/discovery"
)

// AgentDirectory is the read-only population collaborator. All lookups
// return ErrNotFound when nobody matches; callers degrade to the generic
// actor label.
type AgentDirectory interface {
	ResolveNear(ctx context.Context, pos discovery.Position) (discovery.AgentRef, error)
	ResolveByID(ctx context.Context, id string) (discovery.AgentRef, error)
	ResolveByName(ctx context.Context, name string) (discovery.AgentRef, error)
}
