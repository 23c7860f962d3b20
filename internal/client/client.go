// Package client implements the STUN Binding client: a single
// request/response exchange that discovers the reflexive transport address
// of a local UDP socket.
package client

import (
	"context"
	"net"
	"time"

	"github.com/stunkit/stunner/internal/codec"
	"github.com/stunkit/stunner/internal/message"
	"github.com/stunkit/stunner/pkg/shared"
)

// Client discovers reflexive addresses via STUN Binding Requests
type Client interface {
	DiscoverMappedAddress(ctx context.Context, conn *net.UDPConn, server *net.UDPAddr) (*net.UDPAddr, error)
}

// DefaultClient implements Client
type DefaultClient struct{}

// New creates a new STUN Binding client
func New() Client {
	return &DefaultClient{}
}

// DiscoverMappedAddress sends one Binding Request from the already-bound
// socket to the server and blocks for exactly one reply, returning the
// address carried in its XOR-MAPPED-ADDRESS attribute.
//
// No retransmission is attempted. Without a context deadline the receive
// blocks indefinitely on a non-responding server.
func (c *DefaultClient) DiscoverMappedAddress(ctx context.Context, conn *net.UDPConn, server *net.UDPAddr) (*net.UDPAddr, error) {
	request := message.NewBindingRequest(shared.SoftwareName)

	encoded, err := codec.Encode(request)
	if err != nil {
		return nil, shared.WrapError(err, "failed to build binding request")
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetReadDeadline(deadline); err != nil {
			return nil, shared.NewTransportError("set deadline", err)
		}
		defer conn.SetReadDeadline(time.Time{})
	}

	if _, err := conn.WriteToUDP(encoded, server); err != nil {
		return nil, shared.NewTransportError("send", err)
	}

	buf := make([]byte, shared.MaxMessageSize)
	n, _, err := conn.ReadFromUDP(buf)
	if err != nil {
		return nil, shared.NewTransportError("receive", err)
	}

	response, err := codec.Decode(buf[:n])
	if err != nil {
		return nil, err
	}

	mapped, ok := response.MappedAddress()
	if !ok {
		return nil, shared.NewProtocolError("no mapped address in response")
	}
	return mapped, nil
}
