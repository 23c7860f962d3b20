package server

import (
	"context"
	"crypto/rand"
	"net"
	"testing"
	"time"

	"github.com/stunkit/stunner/internal/client"
)

// startTestServer binds a server on an ephemeral loopback port and serves
// until the test ends.
func startTestServer(t *testing.T) *net.UDPAddr {
	t.Helper()

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	if err != nil {
		t.Fatalf("Failed to bind server socket: %v", err)
	}

	srv := New(conn)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.Serve(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
		conn.Close()
	})

	return srv.LocalAddr()
}

func TestServe_EndToEndDiscovery(t *testing.T) {
	serverAddr := startTestServer(t)

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	if err != nil {
		t.Fatalf("Failed to bind client socket: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mapped, err := client.New().DiscoverMappedAddress(ctx, conn, serverAddr)
	if err != nil {
		t.Fatalf("Expected discovery to succeed, got %v", err)
	}

	local := conn.LocalAddr().(*net.UDPAddr)
	if !mapped.IP.Equal(local.IP) {
		t.Errorf("Expected mapped IP %v, got %v", local.IP, mapped.IP)
	}
	if mapped.Port != local.Port {
		t.Errorf("Expected mapped port %d, got %d", local.Port, mapped.Port)
	}
}

func TestServe_IgnoresRawGarbage(t *testing.T) {
	serverAddr := startTestServer(t)

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	if err != nil {
		t.Fatalf("Failed to bind probe socket: %v", err)
	}
	defer conn.Close()

	garbage := make([]byte, 4)
	rand.Read(garbage)
	if _, err := conn.WriteToUDP(garbage, serverAddr); err != nil {
		t.Fatalf("Failed to send garbage datagram: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	buf := make([]byte, 1280)
	if n, _, err := conn.ReadFromUDP(buf); err == nil {
		t.Errorf("Expected no reply to garbage, got %d bytes", n)
	}

	// The server must still answer valid traffic afterwards.
	conn.SetReadDeadline(time.Time{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.New().DiscoverMappedAddress(ctx, conn, serverAddr); err != nil {
		t.Errorf("Expected server to keep serving after garbage, got %v", err)
	}
}
