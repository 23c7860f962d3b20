package server

import (
	"log/slog"
	"net"

	"github.com/stunkit/stunner/internal/codec"
	"github.com/stunkit/stunner/internal/message"
	"github.com/stunkit/stunner/pkg/shared"
)

// Reject replies carry a 400 error code (RFC 5389 section 15.6).
const (
	rejectErrorClass  = 4
	rejectErrorNumber = 0
	rejectReason      = "Invalid binding request class"
)

// HandleDatagram interprets one inbound datagram and returns the reply
// message, or nil when the datagram warrants no reply. The caller is
// responsible for sending the reply back to src. The handler keeps no
// state across datagrams.
func HandleDatagram(raw []byte, src *net.UDPAddr) *message.Message {
	m, err := codec.Decode(raw)
	if err != nil {
		// Malformed or non-STUN traffic is dropped without a reply so the
		// server cannot be used to reflect garbage input.
		shared.LogDebug("dropping datagram that is not a STUN message",
			slog.String("source", src.String()),
			slog.String("error", err.Error()))
		return nil
	}

	switch m.Type {
	case message.Type{Method: message.MethodBinding, Class: message.ClassRequest}:
		shared.LogDebug("binding request received",
			slog.String("source", src.String()))
		return message.NewBindingSuccess(m.TransactionID, src, shared.SoftwareName)

	case message.Type{Method: message.MethodBinding, Class: message.ClassIndication}:
		// Indications are fire-and-forget (RFC 5389 section 7.3.2).
		shared.LogDebug("binding indication received",
			slog.String("source", src.String()))
		return nil

	case message.Type{Method: message.MethodBinding, Class: message.ClassSuccessResponse},
		message.Type{Method: message.MethodBinding, Class: message.ClassErrorResponse}:
		// Responses do not belong at a server endpoint. The reject reply
		// does not copy the inbound transaction identifier; see the
		// correlation note in DESIGN.md.
		shared.LogDebug("rejecting misdirected binding response",
			slog.String("source", src.String()),
			slog.String("class", m.Type.Class.String()))
		return message.NewBindingError(rejectErrorClass, rejectErrorNumber, rejectReason)

	default:
		// Methods other than Binding are outside this server's usage and
		// are dropped like undecodable traffic.
		shared.LogDebug("dropping message with unsupported method",
			slog.String("source", src.String()),
			slog.String("method", m.Type.Method.String()))
		return nil
	}
}
