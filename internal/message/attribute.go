package message

import (
	"fmt"
	"net"
)

// Attribute is a tagged variant over the attributes this tool understands.
// The marker method keeps the set closed so dispatch over attributes stays
// exhaustive.
type Attribute interface {
	isAttribute()
}

// Software is the SOFTWARE attribute: a free-text description of the
// sending agent.
type Software struct {
	Description string
}

func (Software) isAttribute() {}

func (s Software) String() string {
	return fmt.Sprintf("SOFTWARE: %s", s.Description)
}

// XORMappedAddress is the XOR-MAPPED-ADDRESS attribute. The XOR obscuring
// is a wire concern handled by the codec; here it is a plain address.
type XORMappedAddress struct {
	IP   net.IP
	Port int
}

func (XORMappedAddress) isAttribute() {}

func (a XORMappedAddress) String() string {
	return fmt.Sprintf("XOR-MAPPED-ADDRESS: %s:%d", a.IP, a.Port)
}

// ErrorCode is the ERROR-CODE attribute: a class digit, a number, and a
// human-readable reason.
type ErrorCode struct {
	Class  uint8
	Number uint8
	Reason string
}

func (ErrorCode) isAttribute() {}

// Code returns the combined error code, e.g. class 4 number 0 is 400.
func (e ErrorCode) Code() int {
	return int(e.Class)*100 + int(e.Number)
}

func (e ErrorCode) String() string {
	return fmt.Sprintf("ERROR-CODE: %d %s", e.Code(), e.Reason)
}
