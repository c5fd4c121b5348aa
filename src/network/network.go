package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"elevfleet/src/config"
	"elevfleet/src/types"
)

// Transmitter broadcasts fleet state to observers. It is registered as a fleet subscriber.
type Transmitter struct {
	conn  net.PacketConn
	addr  net.Addr
	txBuf chan []types.ElevSnapshot
}

func NewTransmitter(conn net.PacketConn, addr net.Addr) *Transmitter {
	return &Transmitter{
		conn:  conn,
		addr:  addr,
		txBuf: make(chan []types.ElevSnapshot, 16),
	}
}

// Publish queues states for broadcast without blocking. When the buffer is full the oldest
// queued state is dropped, since every state supersedes the ones before it.
func (t *Transmitter) Publish(states []types.ElevSnapshot) {
	for {
		select {
		case t.txBuf <- states:
			return
		default:
		}
		select {
		case <-t.txBuf:
		default:
		}
	}
}

// Run transmits queued states until ctx is done.
func (t *Transmitter) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case states := <-t.txBuf:
			payload, err := json.Marshal(Reply{Event: EvtElevatorState, Data: states})
			if err != nil {
				slog.Error("Failed to encode fleet state", "err", err)
				continue
			}
			t.burstTransmit(payload)
		}
	}
}

// burstTransmit sends the same datagram several times to make up for UDP loss.
func (t *Transmitter) burstTransmit(payload []byte) {
	for i := 0; i < config.MsgRepetitions; i++ {
		if _, err := t.conn.WriteTo(payload, t.addr); err != nil {
			slog.Warn("Broadcast failed", "addr", t.addr, "err", err)
			return
		}
		time.Sleep(config.MsgInterval)
	}
}

// Receiver reads JSON requests from conn and writes the replies back to each sender.
// conn is closed when ctx is done.
func Receiver(ctx context.Context, conn net.PacketConn, h *Handler) error {
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	buf := make([]byte, config.MaxPacketSize)
	for {
		n, addr, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return ctx.Err()
			}
			slog.Warn("Receive failed", "err", err)
			continue
		}

		var req Request
		var replies []Reply
		if err := json.Unmarshal(buf[:n], &req); err != nil {
			replies = h.errorReply(fmt.Errorf("%w: malformed request: %v", types.ErrInvalidArgument, err))
		} else {
			slog.Debug("Received request", "event", req.Event, "from", addr)
			replies = h.Handle(req)
		}

		for _, reply := range replies {
			payload, err := json.Marshal(reply)
			if err != nil {
				slog.Error("Failed to encode reply", "event", reply.Event, "err", err)
				continue
			}
			if _, err := conn.WriteTo(payload, addr); err != nil {
				slog.Warn("Reply failed", "addr", addr, "err", err)
			}
		}
	}
}
