package main

import (
	"voting_ledger/cmd/votingsim/cmd"
)

func main() {
	cmd.Execute()
}
