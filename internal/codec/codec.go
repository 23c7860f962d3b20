// Package codec converts between the message model and STUN wire bytes.
// All binary concerns (magic cookie, TLV attribute encoding, XOR masking
// of mapped addresses) are delegated to github.com/pion/stun.
package codec

import (
	"fmt"

	"github.com/pion/stun"

	"github.com/stunkit/stunner/internal/message"
)

// DecodeError reports bytes that could not be parsed as a STUN message.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode STUN message: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Encode serializes a message to STUN wire bytes. Encode failures are not
// expected for internally constructed messages.
func Encode(m *message.Message) ([]byte, error) {
	msgType, err := wireType(m.Type)
	if err != nil {
		return nil, err
	}

	setters := []stun.Setter{
		msgType,
		stun.NewTransactionIDSetter(m.TransactionID),
	}
	for _, attr := range m.Attributes {
		setter, err := attributeSetter(attr)
		if err != nil {
			return nil, err
		}
		setters = append(setters, setter)
	}

	encoded, err := stun.Build(setters...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode STUN message: %w", err)
	}

	// Build reuses its internal buffer; hand back a copy.
	raw := make([]byte, len(encoded.Raw))
	copy(raw, encoded.Raw)
	return raw, nil
}

// Decode parses STUN wire bytes into a message. Malformed or non-STUN
// input yields a *DecodeError. Attributes other than SOFTWARE,
// XOR-MAPPED-ADDRESS and ERROR-CODE are ignored.
func Decode(data []byte) (*message.Message, error) {
	raw := &stun.Message{Raw: append([]byte(nil), data...)}
	if err := raw.Decode(); err != nil {
		return nil, &DecodeError{Err: err}
	}

	m := &message.Message{
		Type: message.Type{
			Method: message.Method(raw.Type.Method),
			Class:  modelClass(raw.Type.Class),
		},
		TransactionID: message.TransactionID(raw.TransactionID),
	}

	for _, attr := range raw.Attributes {
		switch attr.Type {
		case stun.AttrSoftware:
			var software stun.Software
			if err := software.GetFrom(raw); err != nil {
				return nil, &DecodeError{Err: err}
			}
			m.Attributes = append(m.Attributes, message.Software{Description: software.String()})
		case stun.AttrXORMappedAddress:
			var xorAddr stun.XORMappedAddress
			if err := xorAddr.GetFrom(raw); err != nil {
				return nil, &DecodeError{Err: err}
			}
			m.Attributes = append(m.Attributes, message.XORMappedAddress{IP: xorAddr.IP, Port: xorAddr.Port})
		case stun.AttrErrorCode:
			var errCode stun.ErrorCodeAttribute
			if err := errCode.GetFrom(raw); err != nil {
				return nil, &DecodeError{Err: err}
			}
			m.Attributes = append(m.Attributes, message.ErrorCode{
				Class:  uint8(int(errCode.Code) / 100),
				Number: uint8(int(errCode.Code) % 100),
				Reason: string(errCode.Reason),
			})
		}
	}

	return m, nil
}

// wireType maps a model (method, class) pair onto the pion message type.
func wireType(t message.Type) (stun.MessageType, error) {
	if t.Method != message.MethodBinding {
		return stun.MessageType{}, fmt.Errorf("unsupported STUN method: %d", t.Method)
	}
	switch t.Class {
	case message.ClassRequest:
		return stun.BindingRequest, nil
	case message.ClassIndication:
		return stun.NewType(stun.MethodBinding, stun.ClassIndication), nil
	case message.ClassSuccessResponse:
		return stun.BindingSuccess, nil
	case message.ClassErrorResponse:
		return stun.BindingError, nil
	default:
		return stun.MessageType{}, fmt.Errorf("unsupported STUN class: %d", t.Class)
	}
}

// modelClass maps a pion message class onto the model class.
func modelClass(c stun.MessageClass) message.Class {
	switch c {
	case stun.ClassRequest:
		return message.ClassRequest
	case stun.ClassIndication:
		return message.ClassIndication
	case stun.ClassSuccessResponse:
		return message.ClassSuccessResponse
	default:
		return message.ClassErrorResponse
	}
}

// attributeSetter maps a model attribute onto its pion setter.
func attributeSetter(attr message.Attribute) (stun.Setter, error) {
	switch a := attr.(type) {
	case message.Software:
		return stun.NewSoftware(a.Description), nil
	case message.XORMappedAddress:
		return stun.XORMappedAddress{IP: a.IP, Port: a.Port}, nil
	case message.ErrorCode:
		return stun.ErrorCodeAttribute{
			Code:   stun.ErrorCode(a.Code()),
			Reason: []byte(a.Reason),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported STUN attribute: %T", attr)
	}
}
