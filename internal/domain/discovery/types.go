package discovery

type Tier string

const (
	TierBasic    Tier = "basic"
	TierStandard Tier = "standard"
	TierMajor    Tier = "major"
)

type Phase string

const (
	PhaseInactive      Phase = "inactive"
	PhaseObserving     Phase = "observing"
	PhaseSparked       Phase = "sparked"
	PhaseExperimenting Phase = "experimenting"
	PhaseComplete      Phase = "complete"
)

type Trait string

const (
	TraitCurious  Trait = "curious"
	TraitSkilled  Trait = "skilled"
	TraitCautious Trait = "cautious"
)

type ActivityTag string

type EnvironmentTag string

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Template is an immutable catalog entry. The engine never mutates one after
// registration; re-registering an existing id is a no-op.
type Template struct {
	ID                   string         `json:"id"`
	Description          string         `json:"description"`
	Tier                 Tier           `json:"tier"`
	ObservationThreshold float64        `json:"observation_threshold"`
	SparkHint            string         `json:"spark_hint"`
	ExperimentSeconds    float64        `json:"experiment_seconds"`
	FailureChance        float64        `json:"failure_chance"`
	RequiredActivity     ActivityTag    `json:"required_activity"`
	Prerequisites        []string       `json:"prerequisites,omitempty"`
	BonusEnvironment     EnvironmentTag `json:"bonus_environment,omitempty"`
	BonusMultiplier      float64        `json:"bonus_multiplier,omitempty"`
	UnlockCapabilities   []string       `json:"unlock_capabilities,omitempty"`
	UnlockStructures     []string       `json:"unlock_structures,omitempty"`
	UnlockResources      []string       `json:"unlock_resources,omitempty"`
}

// Progress is the per-template mutable record. Created once at registration,
// mutated only by the Engine, never destroyed during a session.
//
// Observation never decreases and FailureCount never resets outside ResetAll.
// InspiredAgentID is a weak reference: the agent is looked up on demand and a
// vanished agent degrades to the generic actor label.
type Progress struct {
	TemplateID          string    `json:"template_id"`
	Phase               Phase     `json:"phase"`
	Observation         float64   `json:"observation"`
	InspiredAgentID     string    `json:"inspired_agent_id,omitempty"`
	ExperimentProgress  float64   `json:"experiment_progress"`
	ExperimentRemaining float64   `json:"experiment_remaining"`
	FailureCount        int       `json:"failure_count"`
	CompletedDay        int       `json:"completed_day,omitempty"`
	DiscoveredBy        string    `json:"discovered_by,omitempty"`
	Version             int64     `json:"version"`
}

// AgentRef is a read-only view of a colonist resolved from the population
// collaborator. A zero AgentRef means "nobody resolvable".
type AgentRef struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Traits []Trait `json:"traits,omitempty"`
}

func (a AgentRef) IsZero() bool {
	return a.ID == "" && a.Name == ""
}

func (a AgentRef) HasTrait(t Trait) bool {
	for _, have := range a.Traits {
		if have == t {
			return true
		}
	}
	return false
}

// Activity is one delivered ActivityPerformed event, already enriched with
// the resolved agent and the environment tag at the activity position.
type Activity struct {
	Tag         ActivityTag
	Agent       AgentRef
	Environment EnvironmentTag
	Position    Position
}

// AgentLookup resolves the weakly held inspired agent at experiment
// resolution time. A nil lookup or a false return degrades gracefully.
type AgentLookup interface {
	ResolveByID(id string) (AgentRef, bool)
}
