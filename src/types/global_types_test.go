package types

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseCallDirection(t *testing.T) {
	testCases := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", DirUp, false},
		{"down", DirDown, false},
		{"idle", DirIdle, true},
		{"UP", DirIdle, true},
		{"", DirIdle, true},
	}
	for _, tc := range testCases {
		got, err := ParseCallDirection(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseCallDirection(%q): expected ErrInvalidArgument, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseCallDirection(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestDirectionTo(t *testing.T) {
	if d := DirectionTo(1, 5); d != DirUp {
		t.Errorf("expected up, got %v", d)
	}
	if d := DirectionTo(5, 1); d != DirDown {
		t.Errorf("expected down, got %v", d)
	}
	if d := DirectionTo(3, 3); d != DirIdle {
		t.Errorf("expected idle, got %v", d)
	}
}

func TestSnapshotJSON(t *testing.T) {
	snap := ElevSnapshot{ID: 2, CurrentFloor: 4, Direction: DirDown, IsMoving: true, Targets: []int{3, 1}}
	b, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":2,"currentFloor":4,"direction":"down","isMoving":true,"doorOpen":false,"targets":[3,1]}`
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}

func TestSnapshotBehaviour(t *testing.T) {
	if b := (ElevSnapshot{IsMoving: true}).Behaviour(); b != Moving {
		t.Errorf("expected MOVING, got %v", b)
	}
	if b := (ElevSnapshot{DoorOpen: true}).Behaviour(); b != DoorOpen {
		t.Errorf("expected DOOR_OPEN, got %v", b)
	}
	if b := (ElevSnapshot{}).Behaviour(); b != Idle {
		t.Errorf("expected IDLE, got %v", b)
	}
}

func TestSnapshotEqual(t *testing.T) {
	a := ElevSnapshot{ID: 1, CurrentFloor: 2, Targets: []int{3}}
	b := ElevSnapshot{ID: 1, CurrentFloor: 2, Targets: []int{3}}
	if !a.Equal(b) {
		t.Error("expected equal snapshots")
	}
	b.Targets = []int{3, 4}
	if a.Equal(b) {
		t.Error("expected differing targets to compare unequal")
	}
}
