//go:build !wasm

package ledger

// Address identifies an account holding escrow in the ledger.
type Address string

// Asset is the opaque identity of the accepted fungible token.
type Asset string

func (a Address) String() string { return string(a) }
func (a Asset) String() string   { return string(a) }
