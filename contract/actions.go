package contract

// Action names, shared by the wasm exports and native hosts.
const (
	ActionInit              = "contract_init"
	ActionDeposit           = "deposit"
	ActionWithdraw          = "withdraw"
	ActionVote              = "vote"
	ActionExecute           = "execute"
	ActionGetBalance        = "get_balance"
	ActionGetUserBalance    = "get_user_balance"
	ActionGetFavoriteNumber = "get_favorite_number"
	ActionGetNumberOfVotes  = "get_number_of_votes"
	ActionGetAccount        = "get_account"
	ActionGetLedger         = "get_ledger"
)

// Exports maps every action to its handler.
func Exports() map[string]func(payload *string) *string {
	return map[string]func(payload *string) *string{
		ActionInit:              ContractInit,
		ActionDeposit:           Deposit,
		ActionWithdraw:          Withdraw,
		ActionVote:              Vote,
		ActionExecute:           Execute,
		ActionGetBalance:        GetBalance,
		ActionGetUserBalance:    GetUserBalance,
		ActionGetFavoriteNumber: GetFavoriteNumber,
		ActionGetNumberOfVotes:  GetNumberOfVotes,
		ActionGetAccount:        GetAccount,
		ActionGetLedger:         GetLedger,
	}
}
