package catalog

import (
	"context"
	"errors"

	"emberwild/internal/app/ports"
	"emberwild/internal/app/sim"
)

var ErrEmptyCatalog = errors.New("catalog has no templates")

// UseCase loads templates from the catalog provider into the engine and
// owns the session-boundary reset. Reload is idempotent: templates already
// registered are skipped.
type UseCase struct {
	Provider ports.CatalogProvider
	Sim      *sim.Coordinator
}

func (u UseCase) Reload(ctx context.Context) (int, error) {
	templates, err := u.Provider.Templates(ctx)
	if err != nil {
		return 0, err
	}
	if len(templates) == 0 {
		return 0, ErrEmptyCatalog
	}
	return u.Sim.RegisterTemplates(ctx, templates)
}

func (u UseCase) Reset(ctx context.Context) error {
	return u.Sim.ResetAll(ctx)
}
