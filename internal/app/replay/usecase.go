package replay

import (
	"context"

	"emberwild/internal/app/ports"
)

// UseCase reads the stored notification log. An unknown kind or template id
// just yields an empty page.
type UseCase struct {
	Notifications ports.NotificationRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	records, err := u.Notifications.List(ctx, req.Limit, req.Kind, req.TemplateID)
	if err != nil {
		return Response{}, err
	}
	return Response{Records: records}, nil
}
