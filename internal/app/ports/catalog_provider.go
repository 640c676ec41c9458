package ports

import (
	"context"

	"emberwild/internal/domain/discovery"
)

type CatalogProvider interface {
	Templates(ctx context.Context) ([]discovery.Template, error)
}
