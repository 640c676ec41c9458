package tick

import "emberwild/internal/app/ports"

type Request struct {
	DeltaSeconds float64
}

type Response struct {
	Notifications []ports.NotificationRecord `json:"notifications"`
}

type DayRequest struct {
	Day int
}
