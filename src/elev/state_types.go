// State types are defined in elev package to make method receivers possible in elev.go and fsm.go.
package elev

import (
	"log/slog"
	"sync"

	"elevfleet/src/config"
	"elevfleet/src/timer"
	"elevfleet/src/types"
)

// Elevator owns the state of one car. All fields below mu are guarded by it, and are only
// mutated by the tick loop, the dwell timer and the exported commands.
type Elevator struct {
	id     int
	cfg    config.Config
	logger *slog.Logger

	mu       sync.Mutex
	floor    int
	dir      types.Direction
	isMoving bool
	doorOpen bool
	dwelling bool  // door held open at a floor, ticks are skipped until the dwell ends
	targets  []int // ascending while going up, descending while going down
	pending  []int // requested against the committed direction, served after targets drain
	ticker   timer.Ticker
	door     timer.DoorTimer
	onChange func()
}
