package activity

import (
	"context"
	"errors"
	"strings"

	"emberwild/internal/app/ports"
	"emberwild/internal/app/sim"
	"emberwild/internal/domain/discovery"
)

var ErrInvalidRequest = errors.New("invalid activity request")

// UseCase ingests ActivityPerformed events. Agent and environment are
// resolved from collaborators before the event reaches the engine; either
// lookup failing degrades the event, never rejects it.
type UseCase struct {
	Sim    *sim.Coordinator
	Agents ports.AgentDirectory
	World  ports.WorldProvider
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	tag := strings.TrimSpace(req.ActivityTag)
	if tag == "" {
		return Response{}, ErrInvalidRequest
	}

	agent := u.resolveAgent(ctx, req)
	env := discovery.EnvironmentTag("")
	if u.World != nil {
		if tagAt, err := u.World.EnvironmentAt(ctx, req.Position); err == nil {
			env = tagAt
		}
	}

	records, err := u.Sim.RecordActivity(ctx, discovery.Activity{
		Tag:         discovery.ActivityTag(tag),
		Agent:       agent,
		Environment: env,
		Position:    req.Position,
	})
	if err != nil {
		return Response{}, err
	}
	return Response{Notifications: records}, nil
}

func (u UseCase) resolveAgent(ctx context.Context, req Request) discovery.AgentRef {
	if u.Agents == nil {
		return discovery.AgentRef{}
	}
	if id := strings.TrimSpace(req.AgentID); id != "" {
		if agent, err := u.Agents.ResolveByID(ctx, id); err == nil {
			return agent
		}
		return discovery.AgentRef{}
	}
	if agent, err := u.Agents.ResolveNear(ctx, req.Position); err == nil {
		return agent
	}
	return discovery.AgentRef{}
}
