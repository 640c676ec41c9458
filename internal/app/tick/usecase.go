package tick

import (
	"context"
	"errors"

	"emberwild/internal/app/sim"
)

var ErrInvalidRequest = errors.New("invalid tick request")

// UseCase drives the scheduler inputs: TickAdvanced runs the activation scan
// and the experiment countdown, DayAdvanced only stamps the calendar day.
type UseCase struct {
	Sim *sim.Coordinator
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.DeltaSeconds <= 0 {
		return Response{}, ErrInvalidRequest
	}
	records, err := u.Sim.AdvanceTick(ctx, req.DeltaSeconds)
	if err != nil {
		return Response{}, err
	}
	return Response{Notifications: records}, nil
}

func (u UseCase) AdvanceDay(ctx context.Context, req DayRequest) error {
	if req.Day <= 0 {
		return ErrInvalidRequest
	}
	u.Sim.AdvanceDay(ctx, req.Day)
	return nil
}
