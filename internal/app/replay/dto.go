package replay

import (
	"emberwild/internal/app/ports"
	"emberwild/internal/domain/discovery"
)

type Request struct {
	Limit      int
	Kind       discovery.NotificationKind
	TemplateID string
}

type Response struct {
	Records []ports.NotificationRecord `json:"records"`
}
