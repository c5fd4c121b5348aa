package elev

import (
	"slices"

	"elevfleet/src/types"
)

// GetState returns a snapshot of the car. Pending floors are merged into Targets.
func (e *Elevator) GetState() types.ElevSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Position returns the floor and direction used for dispatch scoring.
func (e *Elevator) Position() (int, types.Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.floor, e.dir
}

// HasTarget reports whether floor is in the active queue. Pending floors are not considered.
func (e *Elevator) HasTarget(floor int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Contains(e.targets, floor)
}

func (e *Elevator) snapshot() types.ElevSnapshot {
	targets := make([]int, 0, len(e.targets)+len(e.pending))
	for _, floor := range append(slices.Clone(e.targets), e.pending...) {
		if !slices.Contains(targets, floor) {
			targets = append(targets, floor)
		}
	}
	return types.ElevSnapshot{
		ID:           e.id,
		CurrentFloor: e.floor,
		Direction:    e.dir,
		IsMoving:     e.isMoving,
		DoorOpen:     e.doorOpen,
		Targets:      targets,
	}
}
