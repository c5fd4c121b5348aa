package network

import (
	"context"
	"fmt"
	"net"
	"syscall"
)

// DialBroadcastUDP opens a UDP socket on port that may send to the broadcast address.
// Port 0 picks an ephemeral port.
func DialBroadcastUDP(port int) (net.PacketConn, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var sockErr error
			err := c.Control(func(fd uintptr) {
				if sockErr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_REUSEADDR, 1); sockErr != nil {
					return
				}
				sockErr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_BROADCAST, 1)
			})
			if err != nil {
				return err
			}
			return sockErr
		},
	}
	conn, err := lc.ListenPacket(context.Background(), "udp4", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("open broadcast socket on port %d: %w", port, err)
	}
	return conn, nil
}

func BroadcastAddr(port int) *net.UDPAddr {
	return &net.UDPAddr{IP: net.IPv4bcast, Port: port}
}
