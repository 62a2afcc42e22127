package contract

import "voting_ledger/contract/ledger"

// ContractInit fixes the asset the ledger accepts, with the caller as owner.
// It must run before any other call and only once.
// Payload: the asset identity, e.g. "contract:token"
func ContractInit(payload *string) *string {
	asset, err := decodeAsset(payload)
	abortOnError(err)

	owner := getSenderAddress()
	st := openLedger()
	abortOnError(st.Initialize(asset, ledger.Address(owner)))
	st.Commit()

	emitInitEvent(owner.String(), asset.String())
	return strptr("initialized")
}
