package network

const (
	EvtGetElevators  = "get-elevators"
	EvtCallElevator  = "call-elevator"
	EvtSelectFloor   = "select-floor"
	EvtOpenDoor      = "open-door"
	EvtCloseDoor     = "close-door"
	EvtElevatorState = "elevator-state"
	EvtFloorInfo     = "floor-information"
	EvtAssigned      = "elevator-assigned"
	EvtError         = "error"
)

// Request is a client command. Floor is a pointer so that a missing floor can be told apart from floor 0.
type Request struct {
	Event      string `json:"event"`
	Floor      *int   `json:"floor,omitempty"`
	Direction  string `json:"direction,omitempty"`
	ElevatorID int    `json:"elevatorId,omitempty"`
}

type Reply struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type FloorInformation struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Assignment struct {
	ElevatorID int `json:"elevatorId"`
}

type ErrorData struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
