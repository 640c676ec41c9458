package inmemory

import (
	"sync"

	"emberwild/internal/domain/discovery"
)

type Snapshot struct {
	Activations       uint64            `json:"activations"`
	Sparks            uint64            `json:"sparks"`
	Failures          uint64            `json:"failures"`
	Completions       uint64            `json:"completions"`
	CompletionsByTier map[string]uint64 `json:"completions_by_tier"`
}

type Recorder struct {
	mu          sync.Mutex
	activations uint64
	sparks      uint64
	failures    uint64
	byTier      map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byTier: map[string]uint64{},
	}
}

func (r *Recorder) RecordActivation() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activations++
}

func (r *Recorder) RecordSpark() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sparks++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *Recorder) RecordCompletion(tier discovery.Tier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTier[string(tier)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		Activations:       r.activations,
		Sparks:            r.sparks,
		Failures:          r.failures,
		CompletionsByTier: make(map[string]uint64, len(r.byTier)),
	}
	for tier, n := range r.byTier {
		out.CompletionsByTier[tier] = n
		out.Completions += n
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
