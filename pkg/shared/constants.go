package shared

import "time"

// Network constants
const (
	// DefaultServerPort is the IANA-assigned STUN port.
	DefaultServerPort = 3478
	// DefaultLocalAddr binds to all interfaces.
	DefaultLocalAddr = "0.0.0.0"
	// DefaultLocalPort lets the system pick an ephemeral port.
	DefaultLocalPort = 0
)

// Protocol constants
const (
	// MaxMessageSize is the receive buffer capacity for a single STUN
	// datagram, sized per RFC 5389 section 7.1 for the worst-case MTU.
	// Larger datagrams are truncated by the receive call and rejected
	// by the codec as malformed.
	MaxMessageSize = 1280

	// SoftwareName identifies this implementation in SOFTWARE attributes.
	SoftwareName = "stunner"
)

// Timeout constants
const (
	// NoTimeout disables the client receive deadline; a non-responding
	// server then blocks the exchange indefinitely.
	NoTimeout time.Duration = 0

	DefaultSocketReleaseDelay = 100 * time.Millisecond
)
