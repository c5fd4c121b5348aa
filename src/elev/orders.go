package elev

import (
	"slices"

	"elevfleet/src/types"
)

// AddTarget requests a stop at floor.
//   - A floor already queued, active or pending, is ignored
//   - A floor behind the committed direction is deferred to the pending queue
//   - Otherwise the floor joins the active queue, and the tick loop is started
func (e *Elevator) AddTarget(floor int) {
	e.update(func() {
		e.addTarget(floor)
	})
}

func (e *Elevator) addTarget(floor int) {
	if slices.Contains(e.targets, floor) || slices.Contains(e.pending, floor) {
		return
	}
	if e.wrongDirection(floor) {
		e.pending = append(e.pending, floor)
		e.logger.Debug("Deferred target", "floor", floor, "direction", e.dir)
		return
	}

	e.setDirectionTowards(floor)
	e.targets = sortTargets(e.dir, append(slices.Clone(e.targets), floor))
	e.logger.Debug("Added target", "floor", floor, "targets", e.targets)
	e.start()
}

func (e *Elevator) wrongDirection(floor int) bool {
	return (e.dir == types.DirUp && e.floor > floor) ||
		(e.dir == types.DirDown && e.floor < floor)
}

// setDirectionTowards keeps the current direction when floor is the current floor.
func (e *Elevator) setDirectionTowards(floor int) {
	if dir := types.DirectionTo(e.floor, floor); dir != types.DirIdle {
		e.dir = dir
	}
}

// sortTargets returns a deduplicated copy of floors, ascending for up and descending for down.
// With no direction the insertion order is kept.
func sortTargets(dir types.Direction, floors []int) []int {
	sorted := make([]int, 0, len(floors))
	for _, floor := range floors {
		if !slices.Contains(sorted, floor) {
			sorted = append(sorted, floor)
		}
	}
	switch dir {
	case types.DirUp:
		slices.Sort(sorted)
	case types.DirDown:
		slices.Sort(sorted)
		slices.Reverse(sorted)
	}
	return sorted
}
