package progress

import (
	"context"
	"errors"
	"strings"

	"emberwild/internal/app/ports"
	"emberwild/internal/app/sim"
)

var ErrInvalidRequest = errors.New("invalid progress request")

// UseCase is the read-only query surface for presentation and other systems.
type UseCase struct {
	Sim *sim.Coordinator
}

func (u UseCase) Get(_ context.Context, templateID string) (Snapshot, error) {
	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		return Snapshot{}, ErrInvalidRequest
	}
	p, ok := u.Sim.Progress(templateID)
	if !ok {
		return Snapshot{}, ports.ErrNotFound
	}
	return Snapshot{Progress: p}, nil
}

func (u UseCase) List(_ context.Context) ListResponse {
	return ListResponse{Items: u.Sim.AllProgress()}
}

func (u UseCase) IsDiscovered(_ context.Context, templateID string) bool {
	return u.Sim.IsDiscovered(templateID)
}

func (u UseCase) HasCapability(_ context.Context, tag string) bool {
	return u.Sim.HasCapability(tag)
}

func (u UseCase) IsStructureUnlocked(_ context.Context, tag string) bool {
	return u.Sim.IsStructureUnlocked(tag)
}

func (u UseCase) Summary(_ context.Context) CompletionSummary {
	return CompletionSummary{
		Day:            u.Sim.Day(),
		CompletedCount: u.Sim.CompletedCount(),
		CompletedIDs:   u.Sim.CompletedIDs(),
		Capabilities:   u.Sim.CapabilityTags(),
		Structures:     u.Sim.StructureTags(),
	}
}
