package contract

import (
	"strconv"

	"voting_ledger/contract/ledger"
)

// Vote pledges part of the sender's uncommitted escrow to a candidate.
// Payload: "candidate|weight" or {"candidate":5,"weight":500000}
func Vote(payload *string) *string {
	st := openInitializedLedger()
	args, err := decodeVoteArgs(payload)
	abortOnError(err)

	sender := getSenderAddress()
	abortOnError(st.Vote(ledger.Address(sender), args.Candidate, args.Weight))
	st.Commit()

	emitVoteEvent(sender.String(), args.Candidate, args.Weight)
	return strptr("voted")
}

// Execute elects the heaviest candidate as favorite number. Anyone may call it.
// Returns "true" when a favorite was elected, "false" when nobody voted yet.
func Execute(_ *string) *string {
	st := openLedger()
	elected, err := st.Execute()
	abortOnError(err)
	if !elected {
		return strptr(strconv.FormatBool(false))
	}

	favorite, err := st.FavoriteNumber()
	abortOnError(err)
	weight, err := st.NumberOfVotes(favorite)
	abortOnError(err)
	st.Commit()

	emitExecuteEvent(favorite, weight)
	return strptr(strconv.FormatBool(true))
}
