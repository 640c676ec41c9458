package discovery

type NotificationKind string

const (
	KindPhaseActivated      NotificationKind = "phase_activated"
	KindObservationProgress NotificationKind = "observation_progress"
	KindSparkTriggered      NotificationKind = "spark_triggered"
	KindExperimentProgress  NotificationKind = "experiment_progress"
	KindDiscoveryCompleted  NotificationKind = "discovery_completed"
)

// Notification is a one-shot outbound event. Implementations are plain value
// types so a subscriber can never observe partially mutated state.
type Notification interface {
	Kind() NotificationKind
	Template() string
}

type PhaseActivated struct {
	TemplateID string `json:"template_id"`
}

func (PhaseActivated) Kind() NotificationKind { return KindPhaseActivated }
func (n PhaseActivated) Template() string     { return n.TemplateID }

type ObservationProgress struct {
	TemplateID string  `json:"template_id"`
	Current    float64 `json:"current"`
	Threshold  float64 `json:"threshold"`
}

func (ObservationProgress) Kind() NotificationKind { return KindObservationProgress }
func (n ObservationProgress) Template() string     { return n.TemplateID }

type SparkTriggered struct {
	TemplateID string   `json:"template_id"`
	AgentName  string   `json:"agent_name"`
	Hint       string   `json:"hint"`
	Position   Position `json:"position"`
}

func (SparkTriggered) Kind() NotificationKind { return KindSparkTriggered }
func (n SparkTriggered) Template() string     { return n.TemplateID }

type ExperimentProgress struct {
	TemplateID     string  `json:"template_id"`
	AgentName      string  `json:"agent_name"`
	Progress       float64 `json:"progress"`
	Failed         bool    `json:"failed,omitempty"`
	FailureMessage string  `json:"failure_message,omitempty"`
}

func (ExperimentProgress) Kind() NotificationKind { return KindExperimentProgress }
func (n ExperimentProgress) Template() string     { return n.TemplateID }

type DiscoveryCompleted struct {
	TemplateID     string `json:"template_id"`
	Description    string `json:"description"`
	Reason         string `json:"reason"`
	UnlocksSummary string `json:"unlocks_summary"`
	Major          bool   `json:"major"`
}

func (DiscoveryCompleted) Kind() NotificationKind { return KindDiscoveryCompleted }
func (n DiscoveryCompleted) Template() string     { return n.TemplateID }
