package contract

import (
	"strconv"
	"strings"

	"voting_ledger/contract/ledger"
	"voting_ledger/sdk"
)

// cachedEnv/cachedTransfer are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop the memoized intent.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedTransfer  *TransferAllow
)

// currentEnv caches the env per tx.id so repeated helper calls see the same snapshot.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedTransfer = nil
	}
	return &cachedEnv
}

// TransferAllow is the value attached to a call: the first transfer.allow
// intent, carrying the asset (Token) and the most the contract may draw (Limit).
type TransferAllow struct {
	Limit ledger.Amount
	Token sdk.Asset
}

// getFirstTransferAllow returns the attached transfer or ErrMissingTransfer.
func getFirstTransferAllow() (*TransferAllow, error) {
	env := currentEnv()
	if cachedTransfer != nil {
		return cachedTransfer, nil
	}
	for _, intent := range env.Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		token := sdk.Asset(strings.TrimSpace(intent.Args["token"]))
		if token.IsZero() {
			return nil, ledger.ErrInvalidAsset
		}
		limit, err := strconv.ParseUint(strings.TrimSpace(intent.Args["limit"]), 10, 64)
		if err != nil {
			return nil, ledger.ErrInvalidPayload.Clone().SetData("limit", intent.Args["limit"])
		}
		cachedTransfer = &TransferAllow{
			Limit: ledger.Amount(limit),
			Token: token,
		}
		return cachedTransfer, nil
	}
	return nil, ledger.ErrMissingTransfer
}

// requireEscrowHolder keeps system accounts from opening escrow; nothing
// could ever sign a withdrawal for them.
func requireEscrowHolder(addr sdk.Address) error {
	if addr.Domain() == sdk.AddressDomainSystem {
		return ledger.ErrInvalidSender.Clone().SetData("sender", addr.String())
	}
	return nil
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}
