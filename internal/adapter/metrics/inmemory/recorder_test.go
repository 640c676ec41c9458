package inmemory

import (
	"testing"

	"emberwild/internal/domain/discovery"
)

func TestRecorder_SnapshotAggregates(t *testing.T) {
	r := NewRecorder()
	r.RecordActivation()
	r.RecordActivation()
	r.RecordSpark()
	r.RecordFailure()
	r.RecordCompletion(discovery.TierBasic)
	r.RecordCompletion(discovery.TierMajor)
	r.RecordCompletion(discovery.TierMajor)

	snap := r.Snapshot()
	if snap.Activations != 2 || snap.Sparks != 1 || snap.Failures != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Completions != 3 || snap.CompletionsByTier["major"] != 2 || snap.CompletionsByTier["basic"] != 1 {
		t.Fatalf("completions = %+v", snap)
	}
}

func TestRecorder_SnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordCompletion(discovery.TierBasic)
	snap := r.Snapshot()
	snap.CompletionsByTier["basic"] = 99

	if r.Snapshot().CompletionsByTier["basic"] != 1 {
		t.Fatalf("snapshot shares internal map with recorder")
	}
}
