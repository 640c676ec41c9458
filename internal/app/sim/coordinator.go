package sim

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"emberwild/internal/app/ports"
	"emberwild/internal/domain/discovery"
	"emberwild/internal/domain/world"

	"github.com/google/uuid"
)

// Coordinator is the single serialization point in front of the engine: all
// mutation funnels through its mutex, so same-tick completions produce a
// deterministic notification order and unlock accumulation even with
// concurrent HTTP callers.
type Coordinator struct {
	mu     sync.Mutex
	engine *discovery.Engine

	progressRepo   ports.ProgressRepository
	completionRepo ports.CompletionRepository
	notifRepo      ports.NotificationRepository
	tx             ports.TxManager
	metrics        ports.DiscoveryMetrics

	calendar world.Calendar
	elapsed  float64

	now   func() time.Time
	newID func() string
}

type Config struct {
	Seed           int64
	Calendar       world.Calendar
	Agents         ports.AgentDirectory
	ProgressRepo   ports.ProgressRepository
	CompletionRepo ports.CompletionRepository
	NotifRepo      ports.NotificationRepository
	Tx             ports.TxManager
	Metrics        ports.DiscoveryMetrics
	Now            func() time.Time
	NewID          func() string
}

func New(cfg Config) *Coordinator {
	roll := rand.New(rand.NewSource(cfg.Seed)).Float64
	if cfg.Seed == 0 {
		roll = rand.Float64
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	return &Coordinator{
		engine:         discovery.NewEngine(discovery.NewCompletionRegistry(), directoryLookup{dir: cfg.Agents}, roll),
		progressRepo:   cfg.ProgressRepo,
		completionRepo: cfg.CompletionRepo,
		notifRepo:      cfg.NotifRepo,
		tx:             cfg.Tx,
		metrics:        cfg.Metrics,
		calendar:       cfg.Calendar,
		now:            cfg.Now,
		newID:          cfg.NewID,
	}
}

// directoryLookup adapts the AgentDirectory port to the engine's weak
// inspired-agent lookup; any resolution error degrades to "not found".
type directoryLookup struct {
	dir ports.AgentDirectory
}

func (l directoryLookup) ResolveByID(id string) (discovery.AgentRef, bool) {
	if l.dir == nil {
		return discovery.AgentRef{}, false
	}
	agent, err := l.dir.ResolveByID(context.Background(), id)
	if err != nil {
		return discovery.AgentRef{}, false
	}
	return agent, true
}

// RegisterTemplates registers every template, counting the ones that were
// new. Safe to call repeatedly with the same catalog.
func (c *Coordinator) RegisterTemplates(ctx context.Context, templates []discovery.Template) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	added := 0
	for _, tpl := range templates {
		if c.engine.Register(tpl) {
			added++
		}
	}
	return added, nil
}

// Hydrate restores a previous session from the repositories: persisted
// progress snapshots first, then completion rows to rebuild the registry
// unlock sets from the registered templates.
func (c *Coordinator) Hydrate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.progressRepo != nil {
		rows, err := c.progressRepo.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, p := range rows {
			c.engine.Restore(p)
		}
	}
	if c.completionRepo != nil {
		rows, err := c.completionRepo.ListCompleted(ctx)
		if err != nil {
			return err
		}
		for _, row := range rows {
			tpl, known := c.engine.Template(row.TemplateID)
			if !known {
				continue
			}
			c.engine.Registry().Complete(tpl, row.Reason)
		}
	}
	return nil
}

// RecordActivity delivers one ActivityPerformed event and persists the
// resulting state changes and notifications in a single transaction.
func (c *Coordinator) RecordActivity(ctx context.Context, act discovery.Activity) ([]ports.NotificationRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commit(ctx, c.engine.RecordActivity(act))
}

// AdvanceTick runs one scheduler tick: the activation scan first, then the
// experiment countdown, preserving the in-tick ordering guarantee. With a
// calendar configured, accumulated tick time rolls the day forward; an
// explicitly set later day is never rolled back.
func (c *Coordinator) AdvanceTick(ctx context.Context, deltaSeconds float64) ([]ports.NotificationRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed += deltaSeconds
	if c.calendar.DaySeconds() > 0 {
		if day := c.calendar.DayAt(c.elapsed); day > c.engine.Day() {
			c.engine.SetDay(day)
		}
	}
	notifs := c.engine.ScanActivations()
	notifs = append(notifs, c.engine.AdvanceExperiments(deltaSeconds)...)
	return c.commit(ctx, notifs)
}

// AdvanceDay stamps the calendar day used on completion records. Not a
// transition trigger.
func (c *Coordinator) AdvanceDay(_ context.Context, day int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.SetDay(day)
}

// ResetAll is the session-boundary bulk reset: engine, registry and all
// durable state cleared together, no notification emitted.
func (c *Coordinator) ResetAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.ResetAll()
	c.elapsed = 0
	return c.runInTx(ctx, func(txCtx context.Context) error {
		if c.progressRepo != nil {
			if err := c.progressRepo.DeleteAll(txCtx); err != nil {
				return err
			}
		}
		if c.completionRepo != nil {
			if err := c.completionRepo.Clear(txCtx); err != nil {
				return err
			}
		}
		if c.notifRepo != nil {
			if err := c.notifRepo.Clear(txCtx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *Coordinator) Progress(templateID string) (discovery.Progress, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Progress(templateID)
}

func (c *Coordinator) AllProgress() []discovery.Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.AllProgress()
}

func (c *Coordinator) IsDiscovered(templateID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Registry().IsCompleted(templateID)
}

func (c *Coordinator) HasCapability(tag string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Registry().HasCapability(tag)
}

func (c *Coordinator) IsStructureUnlocked(tag string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Registry().IsStructureUnlocked(tag)
}

func (c *Coordinator) CompletedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Registry().CompletedCount()
}

func (c *Coordinator) CompletedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Registry().CompletedIDs()
}

func (c *Coordinator) CapabilityTags() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Registry().CapabilityTags()
}

func (c *Coordinator) StructureTags() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Registry().StructureTags()
}

func (c *Coordinator) Day() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Day()
}

// commit stamps notification records, persists touched progress rows,
// completion rows and the notification log, and feeds the KPI recorder.
// Caller holds the mutex.
func (c *Coordinator) commit(ctx context.Context, notifs []discovery.Notification) ([]ports.NotificationRecord, error) {
	if len(notifs) == 0 {
		return nil, nil
	}
	records := make([]ports.NotificationRecord, 0, len(notifs))
	for _, n := range notifs {
		records = append(records, ports.NotificationRecord{
			ID:         c.newID(),
			Kind:       n.Kind(),
			TemplateID: n.Template(),
			OccurredAt: c.now(),
			Body:       n,
		})
	}

	err := c.runInTx(ctx, func(txCtx context.Context) error {
		if c.progressRepo != nil {
			for _, id := range touchedTemplates(notifs) {
				p, ok := c.engine.Progress(id)
				if !ok {
					continue
				}
				if err := c.progressRepo.Save(txCtx, p); err != nil {
					return err
				}
			}
		}
		if c.completionRepo != nil {
			for _, n := range notifs {
				done, ok := n.(discovery.DiscoveryCompleted)
				if !ok {
					continue
				}
				p, _ := c.engine.Progress(done.TemplateID)
				row := ports.CompletionRow{
					TemplateID:   done.TemplateID,
					CompletedDay: p.CompletedDay,
					DiscoveredBy: p.DiscoveredBy,
					Reason:       done.Reason,
					CompletedAt:  c.now(),
				}
				if err := c.completionRepo.MarkCompleted(txCtx, row); err != nil {
					return err
				}
			}
		}
		if c.notifRepo != nil {
			if err := c.notifRepo.Append(txCtx, records); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.record(notifs)
	return records, nil
}

func (c *Coordinator) record(notifs []discovery.Notification) {
	if c.metrics == nil {
		return
	}
	for _, n := range notifs {
		switch v := n.(type) {
		case discovery.PhaseActivated:
			c.metrics.RecordActivation()
		case discovery.SparkTriggered:
			c.metrics.RecordSpark()
		case discovery.ExperimentProgress:
			if v.Failed {
				c.metrics.RecordFailure()
			}
		case discovery.DiscoveryCompleted:
			tpl, _ := c.engine.Template(v.TemplateID)
			c.metrics.RecordCompletion(tpl.Tier)
		}
	}
}

func (c *Coordinator) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if c.tx == nil {
		return fn(ctx)
	}
	return c.tx.RunInTx(ctx, fn)
}

func touchedTemplates(notifs []discovery.Notification) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(notifs))
	for _, n := range notifs {
		id := n.Template()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
