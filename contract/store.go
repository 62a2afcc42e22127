package contract

import (
	"errors"

	"voting_ledger/contract/ledger"
	"voting_ledger/sdk"
)

// hostStore persists the ledger into the contract's host kv storage.
type hostStore struct{}

func (hostStore) Get(key string) *string {
	return sdk.StateGetObject(key)
}

func (hostStore) Set(key, value string) {
	sdk.StateSetObject(key, value)
}

// openLedger starts the ledger view for the current call.
func openLedger() *ledger.State {
	return ledger.Open(hostStore{})
}

// openInitializedLedger reverts with not_initialized before any payload is
// looked at, so callers of an uninitialized contract always get that error.
func openInitializedLedger() *ledger.State {
	st := openLedger()
	abortOnError(st.CheckInitialized())
	return st
}

// abortOnError reverts the whole call with the error's symbol. The host
// discards every write and transfer of a reverted call.
func abortOnError(err error) {
	if err == nil {
		return
	}
	var le *ledger.Error
	if errors.As(err, &le) {
		sdk.Revert(le.Error(), le.Symbol)
		return
	}
	sdk.Revert(err.Error(), "contract_error")
}
