package activity

import (
	"emberwild/internal/app/ports"
	"emberwild/internal/domain/discovery"
)

type Request struct {
	ActivityTag string
	AgentID     string
	Position    discovery.Position
}

type Response struct {
	Notifications []ports.NotificationRecord `json:"notifications"`
}
