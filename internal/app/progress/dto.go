package progress

import "emberwild/internal/domain/discovery"

type Snapshot struct {
	Progress discovery.Progress `json:"progress"`
}

type ListResponse struct {
	Items []discovery.Progress `json:"items"`
}

type CompletionSummary struct {
	Day            int      `json:"day"`
	CompletedCount int      `json:"completed_count"`
	CompletedIDs   []string `json:"completed_ids"`
	Capabilities   []string `json:"capabilities"`
	Structures     []string `json:"structures"`
}
