package shared

import (
	"fmt"
	"net"
	"time"
)

// CreateUDPSocket creates a UDP socket bound to the given local address and
// port. An empty address binds to all interfaces; port 0 picks an ephemeral
// port.
func CreateUDPSocket(localAddr string, port int) (*net.UDPConn, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(localAddr, fmt.Sprintf("%d", port)))
	if err != nil {
		return nil, NewTransportError("resolve", err)
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, NewTransportError("bind", err)
	}

	return conn, nil
}

// ResolveServerAddr resolves a STUN server host and port to a UDP address.
func ResolveServerAddr(host string, port int) (*net.UDPAddr, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, fmt.Sprintf("%d", port)))
	if err != nil {
		return nil, NewTransportError("resolve", err)
	}
	return addr, nil
}

// CloseUDPSocketGracefully closes a UDP socket with a small delay to ensure port release
func CloseUDPSocketGracefully(conn *net.UDPConn) {
	if conn != nil {
		conn.Close()
		time.Sleep(DefaultSocketReleaseDelay)
	}
}
