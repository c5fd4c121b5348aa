// Transitions of a single car. Every function here expects the caller to hold e.mu.
package elev

import (
	"slices"

	"elevfleet/src/types"
)

// tick advances the car by one step.
//  1. While dwelling, nothing happens until the dwell timer fires
//  2. With no work left, the car goes idle and the loop stops
//  3. With only pending work, pending floors become the active queue
//  4. At the head of the queue, the car stops and opens the door
//  5. Otherwise it moves one floor toward the head
func (e *Elevator) tick() {
	if e.dwelling {
		return
	}
	if len(e.targets) == 0 && len(e.pending) == 0 {
		e.setIdle()
		e.stop()
		return
	}
	if len(e.targets) == 0 {
		e.promotePending()
	}
	if e.targets[0] == e.floor {
		e.arrive()
		return
	}
	e.moveOneFloor()
}

func (e *Elevator) setIdle() {
	if e.dir != types.DirIdle || e.isMoving || e.doorOpen {
		e.logger.Info("Elevator idle", "floor", e.floor)
	}
	e.dir = types.DirIdle
	e.isMoving = false
	e.doorOpen = false
}

func (e *Elevator) promotePending() {
	e.setDirectionTowards(e.pending[0])
	e.targets = sortTargets(e.dir, e.pending)
	e.pending = nil
	e.logger.Debug("Promoted pending targets", "targets", e.targets, "direction", e.dir)
}

func (e *Elevator) arrive() {
	e.doorOpen = true
	e.isMoving = false
	e.dir = types.DirIdle
	e.targets = slices.Delete(e.targets, 0, 1)
	e.startDwell()
	e.logger.Info("Arrived at floor", "floor", e.floor, "remaining", len(e.targets)+len(e.pending))
}

func (e *Elevator) moveOneFloor() {
	target := e.targets[0]
	e.isMoving = true
	e.doorOpen = false
	e.dwelling = false
	e.door.Stop()

	e.dir = types.DirectionTo(e.floor, target)
	switch e.dir {
	case types.DirUp:
		e.floor++
	case types.DirDown:
		e.floor--
	}
	e.logger.Debug("Moved", "floor", e.floor, "target", target, "direction", e.dir)
}

func (e *Elevator) startDwell() {
	e.dwelling = true
	e.door.Start(e.cfg.DoorOpenDuration, e.onDwellExpired)
}

func (e *Elevator) endDwell() {
	e.door.Stop()
	e.doorOpen = false
	e.dwelling = false
}

// ForceOpenDoor holds the door open for a fresh dwell period. Ignored while moving.
// Unlike an arrival, no target is consumed.
func (e *Elevator) ForceOpenDoor() {
	e.update(func() {
		if e.isMoving {
			e.logger.Debug("Ignoring open door while moving")
			return
		}
		if !e.doorOpen {
			e.doorOpen = true
			e.dir = types.DirIdle
		}
		e.startDwell()
		e.logger.Debug("Door forced open", "floor", e.floor)
	})
}

// ForceCloseDoor ends the dwell early. Ignored while moving.
// With targets queued the car moves on the next tick.
func (e *Elevator) ForceCloseDoor() {
	e.update(func() {
		if e.isMoving {
			e.logger.Debug("Ignoring close door while moving")
			return
		}
		e.endDwell()
		if len(e.targets) > 0 {
			e.start()
		}
		e.logger.Debug("Door forced closed", "floor", e.floor)
	})
}
