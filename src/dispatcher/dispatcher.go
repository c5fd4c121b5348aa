package dispatcher

import (
	"log/slog"

	"elevfleet/src/config"
	"elevfleet/src/elev"
	"elevfleet/src/fleet"
	"elevfleet/src/types"
)

// Dispatcher assigns hall calls to cars and routes car commands by id.
type Dispatcher struct {
	fleet             *fleet.Fleet
	busyPenalty       int
	unsuitablePenalty int
}

func New(f *fleet.Fleet, cfg config.Config) *Dispatcher {
	return &Dispatcher{
		fleet:             f,
		busyPenalty:       cfg.BusyPenalty,
		unsuitablePenalty: cfg.UnsuitablePenalty,
	}
}

// Call assigns a hall call to the lowest-cost car and returns it.
// Returns false, and assigns nothing, if some car already has floor in its active queue.
func (d *Dispatcher) Call(floor int, dir types.Direction) (*elev.Elevator, bool) {
	for _, e := range d.fleet.Elevators() {
		if e.HasTarget(floor) {
			slog.Debug("Call already served", "floor", floor, "elevator", e.ID())
			return nil, false
		}
	}

	assignee := d.findAssignee(floor, dir)
	if assignee == nil {
		return nil, false
	}
	assignee.AddTarget(floor)
	return assignee, true
}

// findAssignee reads each car's position under that car's lock only. Ties go to the first car in fleet order.
func (d *Dispatcher) findAssignee(floor int, dir types.Direction) *elev.Elevator {
	var assignee *elev.Elevator
	lowestCost := 0

	for _, e := range d.fleet.Elevators() {
		carFloor, carDir := e.Position()
		cost := Cost(carFloor, carDir, floor, dir, d.busyPenalty, d.unsuitablePenalty)
		if assignee == nil || cost < lowestCost {
			assignee = e
			lowestCost = cost
		}
	}

	if assignee == nil {
		slog.Error("No elevator to assign call to", "floor", floor)
		return nil
	}
	slog.Info("Assigning call", "floor", floor, "direction", dir, "elevator", assignee.ID(), "cost", lowestCost)
	return assignee
}

func (d *Dispatcher) SelectFloor(id, floor int) error {
	e, err := d.fleet.Get(id)
	if err != nil {
		return err
	}
	e.AddTarget(floor)
	return nil
}

func (d *Dispatcher) OpenDoor(id int) error {
	e, err := d.fleet.Get(id)
	if err != nil {
		return err
	}
	e.ForceOpenDoor()
	return nil
}

func (d *Dispatcher) CloseDoor(id int) error {
	e, err := d.fleet.Get(id)
	if err != nil {
		return err
	}
	e.ForceCloseDoor()
	return nil
}

func (d *Dispatcher) GetElevatorsState() []types.ElevSnapshot {
	return d.fleet.GetElevatorsState()
}
