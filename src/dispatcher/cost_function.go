package dispatcher

import (
	"elevfleet/src/types"
)

// Cost scores a car at floor carFloor travelling in carDir for a call at floor going callDir. Lower is better.
//   - An idle car costs the distance
//   - A car already heading the requested way, and not yet past the caller, adds busyPenalty
//   - Any other car is moving away or has passed the caller, and adds unsuitablePenalty
func Cost(carFloor int, carDir types.Direction, floor int, callDir types.Direction, busyPenalty, unsuitablePenalty int) int {
	distance := abs(carFloor - floor)

	if carDir == types.DirIdle {
		return distance
	}
	if carDir == callDir && notPassed(carFloor, carDir, floor) {
		return distance + busyPenalty
	}
	return distance + unsuitablePenalty
}

func notPassed(carFloor int, carDir types.Direction, floor int) bool {
	switch carDir {
	case types.DirUp:
		return carFloor <= floor
	case types.DirDown:
		return carFloor >= floor
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
