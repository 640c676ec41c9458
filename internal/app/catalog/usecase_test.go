package catalog

import (
	"context"
	"errors"
	"testing"

	memrepo "emberwild/internal/adapter/repo/memory"
	"emberwild/internal/app/sim"
	"emberwild/internal/domain/discovery"
)

type fakeProvider struct {
	templates []discovery.Template
	err       error
}

func (f fakeProvider) Templates(context.Context) ([]discovery.Template, error) {
	return f.templates, f.err
}

func newSim() *sim.Coordinator {
	store := memrepo.NewStore()
	return sim.New(sim.Config{
		Seed:         1,
		ProgressRepo: memrepo.NewProgressRepo(store),
		NotifRepo:    memrepo.NewNotificationRepo(store),
		Tx:           memrepo.NewTxManager(store),
	})
}

func TestReload_RegistersTemplatesOnce(t *testing.T) {
	u := UseCase{
		Provider: fakeProvider{templates: []discovery.Template{
			{ID: "controlled_flame", Tier: discovery.TierBasic, ObservationThreshold: 10, RequiredActivity: "tend_fire"},
			{ID: "bow_drill", Tier: discovery.TierStandard, ObservationThreshold: 20, ExperimentSeconds: 15, RequiredActivity: "tend_fire"},
		}},
		Sim: newSim(),
	}
	ctx := context.Background()

	added, err := u.Reload(ctx)
	if err != nil || added != 2 {
		t.Fatalf("first Reload = (%d, %v), want (2, nil)", added, err)
	}
	added, err = u.Reload(ctx)
	if err != nil || added != 0 {
		t.Fatalf("second Reload = (%d, %v), want (0, nil)", added, err)
	}
}

func TestReload_EmptyCatalogRejected(t *testing.T) {
	u := UseCase{Provider: fakeProvider{}, Sim: newSim()}
	if _, err := u.Reload(context.Background()); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestReload_ProviderErrorPropagates(t *testing.T) {
	boom := errors.New("bad yaml")
	u := UseCase{Provider: fakeProvider{err: boom}, Sim: newSim()}
	if _, err := u.Reload(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestReset_ClearsSession(t *testing.T) {
	c := newSim()
	u := UseCase{
		Provider: fakeProvider{templates: []discovery.Template{
			{ID: "controlled_flame", Tier: discovery.TierBasic, ObservationThreshold: 1, RequiredActivity: "tend_fire"},
		}},
		Sim: c,
	}
	ctx := context.Background()
	if _, err := u.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if _, err := c.AdvanceTick(ctx, 1); err != nil {
		t.Fatalf("AdvanceTick: %v", err)
	}
	c.RecordActivity(ctx, discovery.Activity{Tag: "tend_fire"})
	if c.CompletedCount() != 1 {
		t.Fatalf("setup: expected one completion")
	}

	if err := u.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if c.CompletedCount() != 0 {
		t.Fatalf("completions survived reset")
	}
	p, _ := c.Progress("controlled_flame")
	if p.Phase != discovery.PhaseInactive {
		t.Fatalf("phase after reset = %s", p.Phase)
	}
}
