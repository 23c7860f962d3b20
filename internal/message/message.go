// Package message defines the protocol-level model of a STUN message: a
// method, a class, a transaction identifier, and an ordered attribute list.
// The binary wire format is owned entirely by the codec package.
package message

import (
	"crypto/rand"
	"net"
)

// Method identifies the STUN method of a message. Only Binding is defined
// by this tool; other methods still decode so the server can drop them.
type Method uint16

// MethodBinding is the STUN Binding method (RFC 5389 section 3).
const MethodBinding Method = 0x001

func (m Method) String() string {
	if m == MethodBinding {
		return "binding"
	}
	return "unknown"
}

// Class identifies the STUN message class.
type Class uint8

const (
	ClassRequest Class = iota
	ClassIndication
	ClassSuccessResponse
	ClassErrorResponse
)

func (c Class) String() string {
	switch c {
	case ClassRequest:
		return "request"
	case ClassIndication:
		return "indication"
	case ClassSuccessResponse:
		return "success response"
	case ClassErrorResponse:
		return "error response"
	default:
		return "unknown"
	}
}

// Type is the (method, class) pair a message is dispatched on.
type Type struct {
	Method Method
	Class  Class
}

// TransactionIDSize is the length of a STUN transaction identifier.
const TransactionIDSize = 12

// TransactionID correlates a request with its response. It is opaque to
// this tool beyond equality.
type TransactionID [TransactionIDSize]byte

// NewTransactionID generates a fresh random transaction identifier.
func NewTransactionID() TransactionID {
	var id TransactionID
	if _, err := rand.Read(id[:]); err != nil {
		// crypto/rand never fails on supported platforms; a zero ID is
		// still a valid, if predictable, identifier.
		return id
	}
	return id
}

// Message is a decoded STUN message: header plus ordered attributes.
type Message struct {
	Type          Type
	TransactionID TransactionID
	Attributes    []Attribute
}

// NewBindingRequest builds a Binding Request with a fresh transaction
// identifier and a SOFTWARE attribute identifying the sender.
func NewBindingRequest(software string) *Message {
	return &Message{
		Type:          Type{Method: MethodBinding, Class: ClassRequest},
		TransactionID: NewTransactionID(),
		Attributes:    []Attribute{Software{Description: software}},
	}
}

// NewBindingSuccess builds a Binding success response correlated to txID,
// carrying the observed source address of the request.
func NewBindingSuccess(txID TransactionID, addr *net.UDPAddr, software string) *Message {
	return &Message{
		Type:          Type{Method: MethodBinding, Class: ClassSuccessResponse},
		TransactionID: txID,
		Attributes: []Attribute{
			XORMappedAddress{IP: addr.IP, Port: addr.Port},
			Software{Description: software},
		},
	}
}

// NewBindingError builds a Binding error response with the given error
// code. No transaction identifier is set; callers that want correlation
// must assign one explicitly.
func NewBindingError(class, number uint8, reason string) *Message {
	return &Message{
		Type:       Type{Method: MethodBinding, Class: ClassErrorResponse},
		Attributes: []Attribute{ErrorCode{Class: class, Number: number, Reason: reason}},
	}
}

// MappedAddress scans the attributes for XOR-MAPPED-ADDRESS and returns the
// contained transport address.
func (m *Message) MappedAddress() (*net.UDPAddr, bool) {
	for _, attr := range m.Attributes {
		if a, ok := attr.(XORMappedAddress); ok {
			return &net.UDPAddr{IP: a.IP, Port: a.Port}, true
		}
	}
	return nil, false
}

// ErrorCode scans the attributes for ERROR-CODE.
func (m *Message) ErrorCode() (ErrorCode, bool) {
	for _, attr := range m.Attributes {
		if a, ok := attr.(ErrorCode); ok {
			return a, true
		}
	}
	return ErrorCode{}, false
}

// SoftwareDescription scans the attributes for SOFTWARE.
func (m *Message) SoftwareDescription() (string, bool) {
	for _, attr := range m.Attributes {
		if a, ok := attr.(Software); ok {
			return a.Description, true
		}
	}
	return "", false
}
