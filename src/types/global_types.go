package types

import (
	"fmt"
	"slices"
)

type Direction int

const (
	DirIdle Direction = iota
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirIdle:
		return "idle"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "up":
		*d = DirUp
	case "down":
		*d = DirDown
	case "idle":
		*d = DirIdle
	default:
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidArgument, text)
	}
	return nil
}

// ParseCallDirection accepts only the directions a hall call can request.
func ParseCallDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	}
	return DirIdle, fmt.Errorf("%w: direction must be either \"up\" or \"down\"", ErrInvalidArgument)
}

// DirectionTo returns the direction of travel from one floor to another, or DirIdle when they are equal.
func DirectionTo(from, to int) Direction {
	switch {
	case from < to:
		return DirUp
	case from > to:
		return DirDown
	}
	return DirIdle
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
	DoorOpen
)

func (b ElevBehaviour) String() string {
	switch b {
	case Moving:
		return "MOVING"
	case DoorOpen:
		return "DOOR_OPEN"
	}
	return "IDLE"
}

// ElevSnapshot is the observable state of one car. Targets merges the active and pending queues.
type ElevSnapshot struct {
	ID           int       `json:"id"`
	CurrentFloor int       `json:"currentFloor"`
	Direction    Direction `json:"direction"`
	IsMoving     bool      `json:"isMoving"`
	DoorOpen     bool      `json:"doorOpen"`
	Targets      []int     `json:"targets"`
}

func (s ElevSnapshot) Behaviour() ElevBehaviour {
	switch {
	case s.IsMoving:
		return Moving
	case s.DoorOpen:
		return DoorOpen
	}
	return Idle
}

func (s ElevSnapshot) Equal(other ElevSnapshot) bool {
	return s.ID == other.ID &&
		s.CurrentFloor == other.CurrentFloor &&
		s.Direction == other.Direction &&
		s.IsMoving == other.IsMoving &&
		s.DoorOpen == other.DoorOpen &&
		slices.Equal(s.Targets, other.Targets)
}
