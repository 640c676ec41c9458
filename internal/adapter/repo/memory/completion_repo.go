package memory

import (
	"context"

	"emberwild/internal/app/ports"
)

type CompletionRepo struct {
	store *Store
}

func NewCompletionRepo(store *Store) CompletionRepo {
	return CompletionRepo{store: store}
}

func (r CompletionRepo) MarkCompleted(_ context.Context, row ports.CompletionRow) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, dup := r.store.completedIDs[row.TemplateID]; dup {
		return nil
	}
	r.store.completedIDs[row.TemplateID] = struct{}{}
	r.store.completions = append(r.store.completions, row)
	return nil
}

func (r CompletionRepo) ListCompleted(_ context.Context) ([]ports.CompletionRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.CompletionRow, len(r.store.completions))
	copy(out, r.store.completions)
	return out, nil
}

func (r CompletionRepo) Clear(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.completions = nil
	r.store.completedIDs = map[string]struct{}{}
	return nil
}
