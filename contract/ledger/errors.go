package ledger

import (
	"sort"
	"strings"
)

// Error is a ledger failure with a stable code and a short symbol that is
// reported to the caller when a call reverts.
type Error struct {
	Code    uint
	Symbol  string
	Message string
	Data    map[string]string
}

func NewError(code uint, symbol, message string) *Error {
	return &Error{Code: code, Symbol: symbol, Message: message}
}

func (o *Error) Error() string {
	if len(o.Data) == 0 {
		return o.Message
	}
	keys := make([]string, 0, len(o.Data))
	for k := range o.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(o.Message)
	b.WriteString(" (")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(o.Data[k])
	}
	b.WriteByte(')')
	return b.String()
}

// Clone copies the error so SetData never touches the shared sentinel.
func (o *Error) Clone() *Error {
	c := *o
	c.Data = make(map[string]string, len(o.Data))
	for k, v := range o.Data {
		c.Data[k] = v
	}
	return &c
}

func (o *Error) SetData(k, v string) *Error {
	if o.Data == nil {
		o.Data = map[string]string{}
	}
	o.Data[k] = v
	return o
}

// Is matches by code, so errors.Is(err, ErrWrongAsset) holds for clones too.
func (o *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == o.Code
}

var (
	ErrNotInitialized               = NewError(100, "not_initialized", "contract not initialized")
	ErrAlreadyInitialized           = NewError(101, "already_initialized", "contract already initialized")
	ErrInvalidAsset                 = NewError(102, "invalid_asset", "asset identity required")
	ErrInvalidSender                = NewError(103, "invalid_sender", "sender cannot hold escrow")
	ErrWrongAsset                   = NewError(110, "wrong_asset", "attached asset is not the accepted asset")
	ErrMissingTransfer              = NewError(111, "missing_transfer", "deposit requires a transfer.allow intent")
	ErrExceedsAllowance             = NewError(112, "exceeds_allowance", "amount exceeds transfer.allow limit")
	ErrInvalidAmount                = NewError(120, "invalid_amount", "amount must be greater than zero")
	ErrInsufficientAvailableBalance = NewError(121, "insufficient_balance", "insufficient available balance")
	ErrOverflow                     = NewError(130, "overflow", "arithmetic overflow")
	ErrCorruptState                 = NewError(140, "corrupt_state", "stored value could not be decoded")
	ErrInvalidPayload               = NewError(150, "invalid_payload", "payload could not be parsed")
)
