package server

import (
	"net"
	"testing"

	"github.com/pion/stun"

	"github.com/stunkit/stunner/internal/codec"
	"github.com/stunkit/stunner/internal/message"
)

var testSource = &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}

func encode(t *testing.T, m *message.Message) []byte {
	t.Helper()
	raw, err := codec.Encode(m)
	if err != nil {
		t.Fatalf("Failed to encode test message: %v", err)
	}
	return raw
}

func TestHandleDatagram_BindingRequest(t *testing.T) {
	req := message.NewBindingRequest("stunner")

	reply := HandleDatagram(encode(t, req), testSource)
	if reply == nil {
		t.Fatal("Expected a reply to a binding request")
	}

	if reply.Type.Method != message.MethodBinding {
		t.Errorf("Expected method binding, got %v", reply.Type.Method)
	}
	if reply.Type.Class != message.ClassSuccessResponse {
		t.Errorf("Expected class success response, got %v", reply.Type.Class)
	}
	if reply.TransactionID != req.TransactionID {
		t.Errorf("Expected transaction identifier copied from the request, got %v", reply.TransactionID)
	}

	var mappedCount int
	for _, attr := range reply.Attributes {
		if _, ok := attr.(message.XORMappedAddress); ok {
			mappedCount++
		}
	}
	if mappedCount != 1 {
		t.Errorf("Expected exactly one XOR-MAPPED-ADDRESS attribute, got %d", mappedCount)
	}

	mapped, ok := reply.MappedAddress()
	if !ok {
		t.Fatal("Expected a XOR-MAPPED-ADDRESS attribute")
	}
	if !mapped.IP.Equal(testSource.IP) || mapped.Port != testSource.Port {
		t.Errorf("Expected mapped address %v, got %v", testSource, mapped)
	}
}

func TestHandleDatagram_BindingIndication(t *testing.T) {
	ind := &message.Message{
		Type:          message.Type{Method: message.MethodBinding, Class: message.ClassIndication},
		TransactionID: message.NewTransactionID(),
	}

	if reply := HandleDatagram(encode(t, ind), testSource); reply != nil {
		t.Errorf("Expected no reply to a binding indication, got %v", reply)
	}
}

func TestHandleDatagram_MisdirectedResponses(t *testing.T) {
	cases := []struct {
		name  string
		class message.Class
	}{
		{"SuccessResponse", message.ClassSuccessResponse},
		{"ErrorResponse", message.ClassErrorResponse},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inbound := &message.Message{
				Type:          message.Type{Method: message.MethodBinding, Class: tc.class},
				TransactionID: message.NewTransactionID(),
			}

			reply := HandleDatagram(encode(t, inbound), testSource)
			if reply == nil {
				t.Fatal("Expected a reject reply to a misdirected response")
			}
			if reply.Type.Class != message.ClassErrorResponse {
				t.Errorf("Expected class error response, got %v", reply.Type.Class)
			}

			var codeCount int
			for _, attr := range reply.Attributes {
				if _, ok := attr.(message.ErrorCode); ok {
					codeCount++
				}
			}
			if codeCount != 1 {
				t.Errorf("Expected exactly one ERROR-CODE attribute, got %d", codeCount)
			}

			code, ok := reply.ErrorCode()
			if !ok {
				t.Fatal("Expected an ERROR-CODE attribute")
			}
			if code.Class != 4 || code.Number != 0 {
				t.Errorf("Expected error class 4 number 0, got class %d number %d", code.Class, code.Number)
			}
			if code.Reason != "Invalid binding request class" {
				t.Errorf("Unexpected reason: %s", code.Reason)
			}

			// Documented discrepancy: unlike the request path, the reject
			// path does not copy the inbound transaction identifier, so
			// the reply cannot be correlated by the original sender.
			if reply.TransactionID == inbound.TransactionID {
				t.Error("Reject path unexpectedly copied the inbound transaction identifier")
			}
			if reply.TransactionID != (message.TransactionID{}) {
				t.Errorf("Expected a zero transaction identifier on the reject reply, got %v", reply.TransactionID)
			}
		})
	}
}

func TestHandleDatagram_Garbage(t *testing.T) {
	if reply := HandleDatagram([]byte{0x01, 0x02, 0x03, 0x04}, testSource); reply != nil {
		t.Errorf("Expected no reply to undecodable bytes, got %v", reply)
	}
}

func TestHandleDatagram_Empty(t *testing.T) {
	if reply := HandleDatagram(nil, testSource); reply != nil {
		t.Errorf("Expected no reply to an empty datagram, got %v", reply)
	}
}

func TestHandleDatagram_NonBindingMethod(t *testing.T) {
	// An Allocate request belongs to TURN, not to this server's usage.
	raw, err := stun.Build(stun.NewType(stun.MethodAllocate, stun.ClassRequest), stun.TransactionID)
	if err != nil {
		t.Fatalf("Failed to build allocate request: %v", err)
	}

	if reply := HandleDatagram(raw.Raw, testSource); reply != nil {
		t.Errorf("Expected no reply to a non-Binding method, got %v", reply)
	}
}
