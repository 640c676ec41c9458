package discovery

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	sparkAgentPlaceholder = "{agent}"

	CompletionReasonObservation = "observation"
	CompletionReasonExperiment  = "experiment"
)

// Engine owns one Progress record per registered template and is the only
// writer of those records. It is not safe for concurrent use; callers funnel
// every mutation through one serialization point (app/sim.Coordinator).
type Engine struct {
	templates map[string]Template
	order     []string
	progress  map[string]*Progress
	registry  *CompletionRegistry
	agents    AgentLookup
	roll      func() float64
	day       int
}

// NewEngine builds an engine around the given registry. roll is the injected
// random source in [0,1); pass a seeded one for reproducible runs. agents may
// be nil, in which case experiment resolution uses neutral traits and the
// generic actor label.
func NewEngine(registry *CompletionRegistry, agents AgentLookup, roll func() float64) *Engine {
	if registry == nil {
		registry = NewCompletionRegistry()
	}
	if roll == nil {
		roll = rand.Float64
	}
	return &Engine{
		templates: map[string]Template{},
		progress:  map[string]*Progress{},
		registry:  registry,
		agents:    agents,
		roll:      roll,
	}
}

// Register adds a template and its dormant progress record. Re-registering
// an existing id is a no-op and returns false; the catalog may be
// (re-)populated any number of times.
func (e *Engine) Register(tpl Template) bool {
	if _, exists := e.templates[tpl.ID]; exists {
		return false
	}
	e.templates[tpl.ID] = tpl
	e.order = append(e.order, tpl.ID)
	e.progress[tpl.ID] = &Progress{TemplateID: tpl.ID, Phase: PhaseInactive}
	return true
}

func (e *Engine) Registry() *CompletionRegistry { return e.registry }

// SetDay records the current calendar day; it only stamps completion
// records and never triggers a transition.
func (e *Engine) SetDay(day int) { e.day = day }

func (e *Engine) Day() int { return e.day }

// RecordActivity feeds one ActivityPerformed event to every observing item
// whose required activity matches. Crossing the threshold completes a basic
// tier item immediately and sparks experimentation for the others.
func (e *Engine) RecordActivity(act Activity) []Notification {
	var out []Notification
	for _, id := range e.order {
		tpl := e.templates[id]
		p := e.progress[id]
		if p.Phase != PhaseObserving || tpl.RequiredActivity != act.Tag {
			continue
		}
		p.Observation += ObservationMultiplier(tpl, act.Environment, act.Agent)
		p.Version++
		if p.Observation < tpl.ObservationThreshold {
			out = append(out, ObservationProgress{TemplateID: id, Current: p.Observation, Threshold: tpl.ObservationThreshold})
			continue
		}
		if tpl.Tier == TierBasic {
			// Basic discoveries skip experimentation; whoever pushed the
			// accumulator over the line gets the credit.
			if done, ok := e.finalize(tpl, p, agentLabel(act.Agent), CompletionReasonObservation); ok {
				out = append(out, done)
			}
			continue
		}
		out = append(out, e.spark(tpl, p, act))
	}
	return out
}

// spark is the transient Sparked pseudo-state: the phase passes through
// PhaseSparked and lands in PhaseExperimenting within this one call, so no
// caller ever observes Sparked across a tick boundary.
func (e *Engine) spark(tpl Template, p *Progress, act Activity) Notification {
	p.Phase = PhaseSparked
	name := agentLabel(act.Agent)
	p.InspiredAgentID = act.Agent.ID
	p.ExperimentRemaining = tpl.ExperimentSeconds * ExperimentDurationMultiplier(act.Agent)
	p.ExperimentProgress = 0
	p.Phase = PhaseExperimenting
	return SparkTriggered{
		TemplateID: tpl.ID,
		AgentName:  name,
		Hint:       strings.ReplaceAll(tpl.SparkHint, sparkAgentPlaceholder, name),
		Position:   act.Position,
	}
}

// AdvanceExperiments applies one fixed-interval countdown step to every
// experimenting item and resolves those that run out of time.
func (e *Engine) AdvanceExperiments(deltaSeconds float64) []Notification {
	var out []Notification
	for _, id := range e.order {
		tpl := e.templates[id]
		p := e.progress[id]
		if p.Phase != PhaseExperimenting {
			continue
		}
		p.ExperimentRemaining -= deltaSeconds
		p.Version++
		if p.ExperimentRemaining > 0 {
			if tpl.ExperimentSeconds > 0 {
				p.ExperimentProgress = clamp01(1 - p.ExperimentRemaining/tpl.ExperimentSeconds)
			}
			agent, _ := e.inspiredAgent(p)
			out = append(out, ExperimentProgress{TemplateID: id, AgentName: agentLabel(agent), Progress: p.ExperimentProgress})
			continue
		}
		out = append(out, e.resolveExperiment(tpl, p)...)
	}
	return out
}

// resolveExperiment implements the failure-as-feature policy: a trait
// discounted roll, forced success once the failure counter hits the
// protection threshold, and partial credit on every failure so repeated
// attempts trend toward success even without more activity.
func (e *Engine) resolveExperiment(tpl Template, p *Progress) []Notification {
	agent, _ := e.inspiredAgent(p)
	name := agentLabel(agent)

	protected := p.FailureCount >= BadLuckProtectionThreshold
	if protected || e.roll() >= EffectiveFailureChance(tpl.FailureChance, agent) {
		if done, ok := e.finalize(tpl, p, name, CompletionReasonExperiment); ok {
			return []Notification{done}
		}
		return nil
	}

	p.FailureCount++
	floor := tpl.ObservationThreshold * FailureFloorFactor * float64(p.FailureCount)
	if floor > p.Observation {
		p.Observation = floor
	}
	p.ExperimentProgress = 0
	p.ExperimentRemaining = 0
	p.InspiredAgentID = ""
	p.Phase = PhaseObserving
	return []Notification{ExperimentProgress{
		TemplateID:     tpl.ID,
		AgentName:      name,
		Progress:       0,
		Failed:         true,
		FailureMessage: fmt.Sprintf("%s's experiment failed, but the notes survived", name),
	}}
}

func (e *Engine) finalize(tpl Template, p *Progress, discoverer, reason string) (DiscoveryCompleted, bool) {
	done, ok := e.registry.Complete(tpl, reason)
	if !ok {
		return DiscoveryCompleted{}, false
	}
	p.Phase = PhaseComplete
	p.InspiredAgentID = ""
	p.ExperimentRemaining = 0
	p.CompletedDay = e.day
	p.DiscoveredBy = discoverer
	p.Version++
	return done, true
}

// Restore overwrites the record for an already-registered template with a
// persisted snapshot. Used at session rehydration, never during play.
func (e *Engine) Restore(p Progress) bool {
	if _, known := e.templates[p.TemplateID]; !known {
		return false
	}
	cp := p
	e.progress[p.TemplateID] = &cp
	return true
}

// Progress returns a snapshot copy; the second return is false for an
// unknown template id.
func (e *Engine) Progress(templateID string) (Progress, bool) {
	p, ok := e.progress[templateID]
	if !ok {
		return Progress{}, false
	}
	return *p, true
}

// AllProgress returns snapshot copies in registration order.
func (e *Engine) AllProgress() []Progress {
	out := make([]Progress, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, *e.progress[id])
	}
	return out
}

func (e *Engine) Template(templateID string) (Template, bool) {
	tpl, ok := e.templates[templateID]
	return tpl, ok
}

// ResetAll returns every record to its dormant initial state and clears the
// registry in the same step, so no inspiration flag can outlive the reset.
func (e *Engine) ResetAll() {
	for _, id := range e.order {
		e.progress[id] = &Progress{TemplateID: id, Phase: PhaseInactive}
	}
	e.registry.ResetAll()
	e.day = 0
}

func (e *Engine) inspiredAgent(p *Progress) (AgentRef, bool) {
	if p.InspiredAgentID == "" || e.agents == nil {
		return AgentRef{}, false
	}
	return e.agents.ResolveByID(p.InspiredAgentID)
}

func agentLabel(agent AgentRef) string {
	if agent.Name != "" {
		return agent.Name
	}
	if agent.ID != "" {
		return agent.ID
	}
	return FallbackAgentName
}
