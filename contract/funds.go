package contract

import (
	"voting_ledger/contract/ledger"
	"voting_ledger/sdk"
)

// Deposit escrows the attached transfer.allow funds for the sender.
// Payload: amount (optional, defaults to the intent limit)
func Deposit(payload *string) *string {
	st := openInitializedLedger()
	sender := getSenderAddress()
	abortOnError(requireEscrowHolder(sender))
	transfer, err := getFirstTransferAllow()
	abortOnError(err)
	amount, err := decodeDepositAmount(payload, transfer)
	abortOnError(err)

	abortOnError(st.Deposit(ledger.Address(sender), ledger.Asset(transfer.Token), amount))
	if amount > transfer.Limit {
		abortOnError(ledger.ErrExceedsAllowance.Clone().
			SetData("amount", amount.String()).
			SetData("limit", transfer.Limit.String()))
	}

	// the draw aborts the call on its own when the sender cannot pay
	sdk.Draw(uint64(amount), transfer.Token)
	st.Commit()

	emitDepositEvent(sender.String(), amount, transfer.Token.String())
	return strptr("deposited")
}

// Withdraw returns uncommitted escrow to the sender.
// Payload: amount
func Withdraw(payload *string) *string {
	st := openInitializedLedger()
	amount, err := decodeAmount(payload)
	abortOnError(err)

	sender := getSenderAddress()
	asset, err := st.Withdraw(ledger.Address(sender), amount)
	abortOnError(err)

	sdk.Transfer(sender, uint64(amount), sdk.Asset(asset))
	st.Commit()

	emitWithdrawEvent(sender.String(), amount, asset.String())
	return strptr("withdrawn")
}
