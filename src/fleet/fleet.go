package fleet

import (
	"fmt"
	"log/slog"
	"sync"

	"elevfleet/src/config"
	"elevfleet/src/elev"
	"elevfleet/src/types"

	"github.com/tiendc/go-deepcopy"
)

// StateChangedFunc receives the state of every car after any car changes.
type StateChangedFunc func(states []types.ElevSnapshot)

// Fleet is the fixed set of cars. It relays every observable car change to its subscribers.
type Fleet struct {
	elevators []*elev.Elevator

	notifyMu sync.Mutex
	sinks    []StateChangedFunc
}

// New creates cfg.NumElevators idle cars with ids 1..N.
func New(cfg config.Config) *Fleet {
	f := &Fleet{}
	for id := 1; id <= cfg.NumElevators; id++ {
		e := elev.New(id, cfg)
		e.SetOnChange(f.notify)
		f.elevators = append(f.elevators, e)
	}
	slog.Info("Fleet created", "elevators", cfg.NumElevators, "minFloor", cfg.MinFloor, "maxFloor", cfg.MaxFloor)
	return f
}

// Elevators returns the cars in fleet order. The slice must not be modified.
func (f *Fleet) Elevators() []*elev.Elevator {
	return f.elevators
}

func (f *Fleet) Get(id int) (*elev.Elevator, error) {
	for _, e := range f.elevators {
		if e.ID() == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("elevator %d: %w", id, types.ErrNotFound)
}

// GetElevatorsState reads each car under its own lock, one car at a time.
func (f *Fleet) GetElevatorsState() []types.ElevSnapshot {
	states := make([]types.ElevSnapshot, 0, len(f.elevators))
	for _, e := range f.elevators {
		states = append(states, e.GetState())
	}
	return states
}

// Subscribe registers fn for state change notifications. Calls to fn are serialized.
func (f *Fleet) Subscribe(fn StateChangedFunc) {
	f.notifyMu.Lock()
	defer f.notifyMu.Unlock()
	f.sinks = append(f.sinks, fn)
}

func (f *Fleet) notify() {
	f.notifyMu.Lock()
	defer f.notifyMu.Unlock()
	if len(f.sinks) == 0 {
		return
	}

	states := f.GetElevatorsState()
	for _, sink := range f.sinks {
		var copied []types.ElevSnapshot
		if err := deepcopy.Copy(&copied, states); err != nil {
			slog.Error("Failed to copy fleet state", "err", err)
			continue
		}
		sink(copied)
	}
}

// Close stops every car's tick loop and dwell timer.
func (f *Fleet) Close() {
	for _, e := range f.elevators {
		e.Close()
	}
}
