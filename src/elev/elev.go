package elev

import (
	"log/slog"

	"elevfleet/src/config"
	"elevfleet/src/types"
)

// New creates an idle car at the lowest floor. The tick loop starts on the first target.
func New(id int, cfg config.Config) *Elevator {
	e := &Elevator{
		id:     id,
		cfg:    cfg,
		logger: slog.Default().With("elevator", id),
		floor:  cfg.MinFloor,
		dir:    types.DirIdle,
	}
	e.logger.Debug("Elevator initialized", "floor", e.floor)
	return e
}

func (e *Elevator) ID() int {
	return e.id
}

// SetOnChange registers fn to be called after every command, tick or dwell expiry that changes the snapshot.
// fn is called without the car's lock held, so it may read the state of any car.
func (e *Elevator) SetOnChange(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = fn
}

// Close stops the tick loop and any running dwell timer.
func (e *Elevator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stop()
}

// update runs fn under the car's lock and reports the change, if any, once the lock is released.
func (e *Elevator) update(fn func()) {
	e.mu.Lock()
	before := e.snapshot()
	fn()
	after := e.snapshot()
	onChange := e.onChange
	e.mu.Unlock()

	if onChange != nil && !before.Equal(after) {
		onChange()
	}
}

func (e *Elevator) start() {
	if e.ticker.Start(e.cfg.TickInterval, e.onTick) {
		e.logger.Debug("Tick loop started")
	}
}

func (e *Elevator) stop() {
	e.ticker.Stop()
	e.door.Stop()
}

func (e *Elevator) onTick(seq uint64) {
	e.update(func() {
		if !e.ticker.Valid(seq) {
			return
		}
		e.tick()
	})
}

func (e *Elevator) onDwellExpired(seq uint64) {
	e.update(func() {
		if !e.door.Valid(seq) {
			return
		}
		e.endDwell()
		e.logger.Debug("Door closed after dwell", "floor", e.floor)
	})
}
