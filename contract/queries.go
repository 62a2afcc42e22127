package contract

import "voting_ledger/contract/ledger"

// GetBalance returns the total escrow held by the contract.
func GetBalance(_ *string) *string {
	total, err := openLedger().Balance()
	abortOnError(err)
	return strptr(total.String())
}

// GetUserBalance returns the sender's escrow, committed part included.
func GetUserBalance(_ *string) *string {
	bal, err := openLedger().UserBalance(ledger.Address(getSenderAddress()))
	abortOnError(err)
	return strptr(bal.String())
}

func GetFavoriteNumber(_ *string) *string {
	fav, err := openLedger().FavoriteNumber()
	abortOnError(err)
	return strptr(fav.String())
}

// GetNumberOfVotes returns the weight a candidate gathered, 0 if unseen.
// Payload: candidate
func GetNumberOfVotes(payload *string) *string {
	st := openInitializedLedger()
	candidate, err := decodeCandidate(payload)
	abortOnError(err)
	n, err := st.NumberOfVotes(candidate)
	abortOnError(err)
	return strptr(n.String())
}

// GetAccount returns balance, committed and available escrow as JSON.
// Payload: address (optional, defaults to the sender)
func GetAccount(payload *string) *string {
	st := openInitializedLedger()
	addr, err := decodeAccount(payload)
	abortOnError(err)
	view, err := st.Account(ledger.Address(addr))
	abortOnError(err)
	out, err := ledger.EncodeJSON(view)
	abortOnError(err)
	return strptr(out)
}

// GetLedger returns asset, owner, total, favorite and candidate count as JSON.
func GetLedger(_ *string) *string {
	sum, err := openLedger().Summary()
	abortOnError(err)
	out, err := ledger.EncodeJSON(sum)
	abortOnError(err)
	return strptr(out)
}
