package network

import (
	"fmt"
	"log/slog"
	"time"

	"elevfleet/src/config"
	"elevfleet/src/elev"
	"elevfleet/src/types"
)

type Dispatcher interface {
	Call(floor int, dir types.Direction) (*elev.Elevator, bool)
	SelectFloor(id, floor int) error
	OpenDoor(id int) error
	CloseDoor(id int) error
	GetElevatorsState() []types.ElevSnapshot
}

// Handler validates client requests and forwards them to the dispatcher.
type Handler struct {
	disp Dispatcher
	cfg  config.Config
	now  func() time.Time
}

func NewHandler(disp Dispatcher, cfg config.Config) *Handler {
	return &Handler{
		disp: disp,
		cfg:  cfg,
		now:  time.Now,
	}
}

// Handle returns the replies owed to the requesting client, if any.
func (h *Handler) Handle(req Request) []Reply {
	switch req.Event {
	case EvtGetElevators:
		return []Reply{
			{Event: EvtElevatorState, Data: h.disp.GetElevatorsState()},
			{Event: EvtFloorInfo, Data: FloorInformation{Min: h.cfg.MinFloor, Max: h.cfg.MaxFloor}},
		}

	case EvtCallElevator:
		floor, err := h.validateFloor(req.Floor)
		if err != nil {
			return h.errorReply(err)
		}
		dir, err := types.ParseCallDirection(req.Direction)
		if err != nil {
			return h.errorReply(err)
		}
		e, ok := h.disp.Call(floor, dir)
		if !ok {
			slog.Debug("Call ignored, floor already targeted", "floor", floor)
			return nil
		}
		return []Reply{{Event: EvtAssigned, Data: Assignment{ElevatorID: e.ID()}}}

	case EvtSelectFloor:
		floor, err := h.validateFloor(req.Floor)
		if err != nil {
			return h.errorReply(err)
		}
		return h.errorReply(h.disp.SelectFloor(req.ElevatorID, floor))

	case EvtOpenDoor:
		return h.errorReply(h.disp.OpenDoor(req.ElevatorID))

	case EvtCloseDoor:
		return h.errorReply(h.disp.CloseDoor(req.ElevatorID))
	}

	return h.errorReply(fmt.Errorf("%w: unknown event %q", types.ErrInvalidArgument, req.Event))
}

func (h *Handler) validateFloor(floor *int) (int, error) {
	if floor == nil {
		return 0, fmt.Errorf("%w: floor is required", types.ErrInvalidArgument)
	}
	if !h.cfg.FloorInRange(*floor) {
		return 0, fmt.Errorf("%w: floor must be between %d and %d", types.ErrInvalidArgument, h.cfg.MinFloor, h.cfg.MaxFloor)
	}
	return *floor, nil
}

// errorReply returns nil for a nil error.
func (h *Handler) errorReply(err error) []Reply {
	if err == nil {
		return nil
	}
	slog.Warn("Request failed", "err", err)
	return []Reply{{
		Event: EvtError,
		Data: ErrorData{
			Message:   err.Error(),
			Status:    "error",
			Timestamp: h.now().UTC().Format(time.RFC3339Nano),
		},
	}}
}
