// Package server implements the STUN Binding server: a single-threaded
// loop that classifies each inbound datagram and answers with at most one
// reply. No state survives beyond the processing of one datagram.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/stunkit/stunner/internal/codec"
	"github.com/stunkit/stunner/pkg/shared"
)

// Server owns one listening UDP socket and serves Binding traffic on it.
type Server struct {
	conn *net.UDPConn
}

// New creates a server on an already-bound listening socket.
func New(conn *net.UDPConn) *Server {
	return &Server{conn: conn}
}

// LocalAddr returns the address the server is listening on.
func (s *Server) LocalAddr() *net.UDPAddr {
	return s.conn.LocalAddr().(*net.UDPAddr)
}

// Serve receives datagrams until ctx is done, fully processing each one
// before the next receive. Per-datagram failures are logged and never
// terminate the loop; the only fatal error is an internally built reply
// that fails to encode, which indicates a programming error.
func (s *Server) Serve(ctx context.Context) error {
	shared.StructuredInfo("serving STUN binding requests",
		slog.String("addr", s.conn.LocalAddr().String()))

	// Unblock the pending receive when the context is cancelled.
	stop := context.AfterFunc(ctx, func() {
		s.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	buf := make([]byte, shared.MaxMessageSize)
	for {
		n, src, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				shared.StructuredInfo("STUN server stopped")
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			shared.StructuredWarn("receive failed",
				slog.String("error", err.Error()))
			continue
		}

		reply := HandleDatagram(buf[:n], src)
		if reply == nil {
			continue
		}

		encoded, err := codec.Encode(reply)
		if err != nil {
			return shared.WrapError(err, "failed to encode reply")
		}

		if _, err := s.conn.WriteToUDP(encoded, src); err != nil {
			shared.StructuredError("failed to send reply",
				slog.String("dest", src.String()),
				slog.String("error", err.Error()))
		}
	}
}
