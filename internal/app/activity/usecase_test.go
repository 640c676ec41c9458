package activity

import (
	"context"
	"errors"
	"testing"

	memrepo "emberwild/internal/adapter/repo/memory"
	worldmock "emberwild/internal/adapter/world/mock"
	"emberwild/internal/app/ports"
	"emberwild/internal/app/sim"
	"emberwild/internal/domain/discovery"
)

type fakeAgents struct {
	byID map[string]discovery.AgentRef
	near discovery.AgentRef
}

func (f fakeAgents) ResolveByID(_ context.Context, id string) (discovery.AgentRef, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return discovery.AgentRef{}, ports.ErrNotFound
}

func (f fakeAgents) ResolveByName(context.Context, string) (discovery.AgentRef, error) {
	return discovery.AgentRef{}, ports.ErrNotFound
}

func (f fakeAgents) ResolveNear(context.Context, discovery.Position) (discovery.AgentRef, error) {
	if f.near.IsZero() {
		return discovery.AgentRef{}, ports.ErrNotFound
	}
	return f.near, nil
}

func observingCoordinator(t *testing.T, tpl discovery.Template) *sim.Coordinator {
	t.Helper()
	ctx := context.Background()
	store := memrepo.NewStore()
	c := sim.New(sim.Config{
		Seed:           1,
		ProgressRepo:   memrepo.NewProgressRepo(store),
		CompletionRepo: memrepo.NewCompletionRepo(store),
		NotifRepo:      memrepo.NewNotificationRepo(store),
		Tx:             memrepo.NewTxManager(store),
	})
	if _, err := c.RegisterTemplates(ctx, []discovery.Template{tpl}); err != nil {
		t.Fatalf("RegisterTemplates: %v", err)
	}
	if _, err := c.AdvanceTick(ctx, 1); err != nil {
		t.Fatalf("AdvanceTick: %v", err)
	}
	return c
}

func observedTemplate() discovery.Template {
	return discovery.Template{
		ID:                   "woven_basket",
		Description:          "Woven Reed Basket",
		Tier:                 discovery.TierBasic,
		ObservationThreshold: 10,
		RequiredActivity:     "gather_reeds",
		BonusEnvironment:     "riverbank",
		BonusMultiplier:      2,
		UnlockCapabilities:   []string{"weaving"},
	}
}

func TestExecute_EmptyTagRejected(t *testing.T) {
	u := UseCase{}
	_, err := u.Execute(context.Background(), Request{ActivityTag: "  "})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestExecute_ExplicitAgentWinsOverProximity(t *testing.T) {
	c := observingCoordinator(t, observedTemplate())
	u := UseCase{
		Sim: c,
		Agents: fakeAgents{
			byID: map[string]discovery.AgentRef{
				"wren": {ID: "wren", Name: "Wren", Traits: []discovery.Trait{discovery.TraitCurious}},
			},
			near: discovery.AgentRef{ID: "bram", Name: "Bram"},
		},
	}

	resp, err := u.Execute(context.Background(), Request{ActivityTag: "gather_reeds", AgentID: "wren"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(resp.Notifications) != 1 {
		t.Fatalf("notifications = %+v", resp.Notifications)
	}
	p, _ := c.Progress("woven_basket")
	if p.Observation != 1.25 {
		t.Fatalf("observation = %v, want curious bonus from the explicit agent", p.Observation)
	}
}

func TestExecute_FallsBackToNearestAgent(t *testing.T) {
	c := observingCoordinator(t, observedTemplate())
	u := UseCase{
		Sim:    c,
		Agents: fakeAgents{near: discovery.AgentRef{ID: "bram", Name: "Bram"}},
	}

	if _, err := u.Execute(context.Background(), Request{ActivityTag: "gather_reeds"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	p, _ := c.Progress("woven_basket")
	if p.Observation != 1 {
		t.Fatalf("observation = %v, want plain increment", p.Observation)
	}
}

func TestExecute_UnknownAgentDegradesToAnonymous(t *testing.T) {
	c := observingCoordinator(t, observedTemplate())
	u := UseCase{Sim: c, Agents: fakeAgents{}}

	resp, err := u.Execute(context.Background(), Request{ActivityTag: "gather_reeds", AgentID: "ghost"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(resp.Notifications) != 1 {
		t.Fatalf("event should still reach the engine, got %+v", resp.Notifications)
	}
}

func TestExecute_EnvironmentBonusFromWorldProvider(t *testing.T) {
	c := observingCoordinator(t, observedTemplate())
	u := UseCase{Sim: c, World: worldmock.Provider{Tag: "riverbank"}}

	if _, err := u.Execute(context.Background(), Request{ActivityTag: "gather_reeds"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	p, _ := c.Progress("woven_basket")
	if p.Observation != 2 {
		t.Fatalf("observation = %v, want environment bonus applied", p.Observation)
	}
}

func TestExecute_WorldErrorDegradesToNeutral(t *testing.T) {
	c := observingCoordinator(t, observedTemplate())
	u := UseCase{Sim: c, World: worldmock.Provider{Err: errors.New("terrain offline")}}

	if _, err := u.Execute(context.Background(), Request{ActivityTag: "gather_reeds"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	p, _ := c.Progress("woven_basket")
	if p.Observation != 1 {
		t.Fatalf("observation = %v, want neutral increment on world error", p.Observation)
	}
}
