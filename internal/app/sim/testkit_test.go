package sim

import (
	"context"

	"emberwild/internal/app/ports"
	"emberwild/internal/domain/discovery"
)

// fakeDirectory resolves agents from a fixed map keyed by id.
type fakeDirectory map[string]discovery.AgentRef

func (d fakeDirectory) ResolveByID(_ context.Context, id string) (discovery.AgentRef, error) {
	if a, ok := d[id]; ok {
		return a, nil
	}
	return discovery.AgentRef{}, ports.ErrNotFound
}

func (d fakeDirectory) ResolveByName(_ context.Context, name string) (discovery.AgentRef, error) {
	for _, a := range d {
		if a.Name == name {
			return a, nil
		}
	}
	return discovery.AgentRef{}, ports.ErrNotFound
}

func (d fakeDirectory) ResolveNear(context.Context, discovery.Position) (discovery.AgentRef, error) {
	return discovery.AgentRef{}, ports.ErrNotFound
}

func certainTemplate() discovery.Template {
	return discovery.Template{
		ID:                   "bow_drill",
		Description:          "Bow Drill Fire Starting",
		Tier:                 discovery.TierStandard,
		ObservationThreshold: 2,
		SparkHint:            "{agent} keeps staring at the spinning stick",
		ExperimentSeconds:    10,
		FailureChance:        0,
		RequiredActivity:     "tend_fire",
		UnlockCapabilities:   []string{"fire_starting"},
	}
}

func doomedTemplate() discovery.Template {
	tpl := certainTemplate()
	tpl.ID = "clay_hearth"
	tpl.FailureChance = 1
	return tpl
}
