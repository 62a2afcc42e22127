//go:build wasm

package main

import "voting_ledger/contract"

//go:wasmexport contract_init
func ContractInit(payload *string) *string { return contract.ContractInit(payload) }

//go:wasmexport deposit
func Deposit(payload *string) *string { return contract.Deposit(payload) }

//go:wasmexport withdraw
func Withdraw(payload *string) *string { return contract.Withdraw(payload) }

//go:wasmexport vote
func Vote(payload *string) *string { return contract.Vote(payload) }

//go:wasmexport execute
func Execute(payload *string) *string { return contract.Execute(payload) }

//go:wasmexport get_balance
func GetBalance(payload *string) *string { return contract.GetBalance(payload) }

//go:wasmexport get_user_balance
func GetUserBalance(payload *string) *string { return contract.GetUserBalance(payload) }

//go:wasmexport get_favorite_number
func GetFavoriteNumber(payload *string) *string { return contract.GetFavoriteNumber(payload) }

//go:wasmexport get_number_of_votes
func GetNumberOfVotes(payload *string) *string { return contract.GetNumberOfVotes(payload) }

//go:wasmexport get_account
func GetAccount(payload *string) *string { return contract.GetAccount(payload) }

//go:wasmexport get_ledger
func GetLedger(payload *string) *string { return contract.GetLedger(payload) }
