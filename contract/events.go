package contract

import (
	"fmt"

	"voting_ledger/contract/ledger"
	"voting_ledger/sdk"
)

// emitInitEvent records who set up the ledger and which asset it accepts.
func emitInitEvent(owner string, asset string) {
	sdk.Log(fmt.Sprintf("init|by:%s|as:%s", owner, asset))
}

// emitDepositEvent is written for every escrow credit.
func emitDepositEvent(by string, amount ledger.Amount, asset string) {
	sdk.Log(fmt.Sprintf("dep|by:%s|am:%d|as:%s", by, uint64(amount), asset))
}

// emitWithdrawEvent mirrors the deposit line for funds leaving escrow.
func emitWithdrawEvent(to string, amount ledger.Amount, asset string) {
	sdk.Log(fmt.Sprintf("wd|to:%s|am:%d|as:%s", to, uint64(amount), asset))
}

// emitVoteEvent carries the weight so tallies can be replayed from logs only.
func emitVoteEvent(by string, candidate ledger.Candidate, weight ledger.Amount) {
	sdk.Log(fmt.Sprintf("v|by:%s|c:%d|w:%d", by, uint64(candidate), uint64(weight)))
}

// emitExecuteEvent names the elected favorite and its weight.
func emitExecuteEvent(favorite ledger.Candidate, weight ledger.Amount) {
	sdk.Log(fmt.Sprintf("ex|fav:%d|w:%d", uint64(favorite), uint64(weight)))
}
