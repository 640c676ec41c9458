package mock

import (
	"context"

	"emberwild/internal/domain/discovery"
)

// Provider returns a fixed environment tag, or a fixed error, for tests.
type Provider struct {
	Tag discovery.EnvironmentTag
	Err error
}

func (p Provider) EnvironmentAt(context.Context, discovery.Position) (discovery.EnvironmentTag, error) {
	if p.Err != nil {
		return "", p.Err
	}
	return p.Tag, nil
}
