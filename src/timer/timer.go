// Scheduling handles owned by a single car. Neither type is safe for concurrent use on its own;
// the owner calls every method under its own lock, and checks Valid under that same lock when a callback runs.
package timer

import "time"

// Ticker runs fn once per interval on its own goroutine until stopped.
type Ticker struct {
	stopCh chan struct{}
	seq    uint64
}

// Start launches the loop. Returns false if it is already running.
func (t *Ticker) Start(interval time.Duration, fn func(seq uint64)) bool {
	if t.stopCh != nil {
		return false
	}
	t.seq++
	seq := t.seq
	stopCh := make(chan struct{})
	t.stopCh = stopCh

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				fn(seq)
			}
		}
	}()
	return true
}

// Stop ends the loop. Safe to call from inside fn.
func (t *Ticker) Stop() {
	if t.stopCh == nil {
		return
	}
	close(t.stopCh)
	t.stopCh = nil
	t.seq++
}

func (t *Ticker) Running() bool {
	return t.stopCh != nil
}

// Valid reports whether seq belongs to the loop that is currently running.
func (t *Ticker) Valid(seq uint64) bool {
	return t.stopCh != nil && seq == t.seq
}

// DoorTimer is a one-shot dwell timer. Starting it again replaces the pending expiry.
type DoorTimer struct {
	timer *time.Timer
	seq   uint64
}

func (d *DoorTimer) Start(duration time.Duration, fn func(seq uint64)) {
	d.Stop()
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(duration, func() {
		fn(seq)
	})
}

func (d *DoorTimer) Stop() {
	if d.timer == nil {
		return
	}
	d.timer.Stop()
	d.timer = nil
	d.seq++
}

func (d *DoorTimer) Active() bool {
	return d.timer != nil
}

// Valid reports whether seq belongs to the expiry that is currently pending.
// The owner must call Stop (or Start) after acting on a valid expiry.
func (d *DoorTimer) Valid(seq uint64) bool {
	return d.timer != nil && seq == d.seq
}
