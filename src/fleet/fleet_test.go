package fleet

import (
	"errors"
	"testing"
	"time"

	"elevfleet/src/config"
	"elevfleet/src/types"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.TickInterval = 5 * time.Millisecond
	cfg.DoorOpenDuration = 20 * time.Millisecond
	return cfg
}

func TestNewCreatesFleetInOrder(t *testing.T) {
	f := New(config.Default())
	t.Cleanup(f.Close)

	states := f.GetElevatorsState()
	if len(states) != 3 {
		t.Fatalf("expected 3 cars, got %d", len(states))
	}
	for i, s := range states {
		if s.ID != i+1 || s.CurrentFloor != 1 || s.Direction != types.DirIdle {
			t.Errorf("unexpected state for car %d: %+v", i+1, s)
		}
	}
}

func TestGet(t *testing.T) {
	f := New(config.Default())
	t.Cleanup(f.Close)

	e, err := f.Get(2)
	if err != nil || e.ID() != 2 {
		t.Fatalf("expected car 2, got %v, %v", e, err)
	}
	if _, err := f.Get(4); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSubscribeReceivesChanges(t *testing.T) {
	f := New(testConfig())
	t.Cleanup(f.Close)

	updates := make(chan []types.ElevSnapshot, 100)
	f.Subscribe(func(states []types.ElevSnapshot) {
		updates <- states
	})

	e, _ := f.Get(3)
	e.AddTarget(3)

	timeout := time.After(2 * time.Second)
	for {
		select {
		case states := <-updates:
			if len(states) != 3 {
				t.Fatalf("expected full fleet in notification, got %d", len(states))
			}
			if s := states[2]; s.DoorOpen && s.CurrentFloor == 3 {
				return
			}
		case <-timeout:
			t.Fatal("never observed car 3 arriving at floor 3")
		}
	}
}

func TestSubscribersGetIndependentCopies(t *testing.T) {
	cfg := config.Default()
	cfg.TickInterval = time.Hour
	f := New(cfg)
	t.Cleanup(f.Close)

	var first, second []types.ElevSnapshot
	f.Subscribe(func(states []types.ElevSnapshot) { first = states })
	f.Subscribe(func(states []types.ElevSnapshot) { second = states })

	e, _ := f.Get(1)
	e.AddTarget(6)

	if first == nil || second == nil {
		t.Fatal("expected both subscribers to be notified")
	}
	first[0].Targets[0] = 99
	if second[0].Targets[0] != 6 {
		t.Errorf("expected subscribers to receive independent copies, got %v", second[0].Targets)
	}
}
