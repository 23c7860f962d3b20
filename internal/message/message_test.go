package message

import (
	"net"
	"testing"
)

func TestNewBindingRequest(t *testing.T) {
	req := NewBindingRequest("stunner")

	if req.Type.Method != MethodBinding {
		t.Errorf("Expected method binding, got %v", req.Type.Method)
	}
	if req.Type.Class != ClassRequest {
		t.Errorf("Expected class request, got %v", req.Type.Class)
	}
	if req.TransactionID == (TransactionID{}) {
		t.Error("Expected a fresh transaction identifier, got all zeros")
	}

	software, ok := req.SoftwareDescription()
	if !ok {
		t.Fatal("Expected a SOFTWARE attribute on the request")
	}
	if software != "stunner" {
		t.Errorf("Expected software description stunner, got %s", software)
	}
}

func TestNewBindingRequest_FreshTransactionIDs(t *testing.T) {
	a := NewBindingRequest("stunner")
	b := NewBindingRequest("stunner")

	if a.TransactionID == b.TransactionID {
		t.Error("Expected distinct transaction identifiers for distinct requests")
	}
}

func TestNewBindingSuccess(t *testing.T) {
	txID := TransactionID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	src := &net.UDPAddr{IP: net.IPv4(203, 0, 113, 7), Port: 54321}

	resp := NewBindingSuccess(txID, src, "stunner")

	if resp.Type.Class != ClassSuccessResponse {
		t.Errorf("Expected class success response, got %v", resp.Type.Class)
	}
	if resp.TransactionID != txID {
		t.Errorf("Expected transaction identifier copied from the request, got %v", resp.TransactionID)
	}

	mapped, ok := resp.MappedAddress()
	if !ok {
		t.Fatal("Expected a XOR-MAPPED-ADDRESS attribute on the response")
	}
	if !mapped.IP.Equal(src.IP) || mapped.Port != src.Port {
		t.Errorf("Expected mapped address %v, got %v", src, mapped)
	}
}

func TestNewBindingError(t *testing.T) {
	resp := NewBindingError(4, 0, "Invalid binding request class")

	if resp.Type.Class != ClassErrorResponse {
		t.Errorf("Expected class error response, got %v", resp.Type.Class)
	}
	if resp.TransactionID != (TransactionID{}) {
		t.Errorf("Expected no transaction identifier on the error reply, got %v", resp.TransactionID)
	}

	code, ok := resp.ErrorCode()
	if !ok {
		t.Fatal("Expected an ERROR-CODE attribute on the response")
	}
	if code.Class != 4 || code.Number != 0 {
		t.Errorf("Expected error class 4 number 0, got class %d number %d", code.Class, code.Number)
	}
	if code.Code() != 400 {
		t.Errorf("Expected combined code 400, got %d", code.Code())
	}
	if code.Reason != "Invalid binding request class" {
		t.Errorf("Unexpected reason: %s", code.Reason)
	}
}

func TestMappedAddress_Absent(t *testing.T) {
	m := &Message{
		Type:       Type{Method: MethodBinding, Class: ClassSuccessResponse},
		Attributes: []Attribute{Software{Description: "stunner"}},
	}

	if _, ok := m.MappedAddress(); ok {
		t.Error("Expected no mapped address on a response without the attribute")
	}
}

func TestClassString(t *testing.T) {
	cases := map[Class]string{
		ClassRequest:         "request",
		ClassIndication:      "indication",
		ClassSuccessResponse: "success response",
		ClassErrorResponse:   "error response",
	}
	for class, want := range cases {
		if got := class.String(); got != want {
			t.Errorf("Expected %q for class %d, got %q", want, class, got)
		}
	}
}
