////////////////////////////////////////////////////////////////////////////////
// Voting ledger: escrow, weighted votes and a favorite number on vsc
// Build with GOOS=wasip1 GOARCH=wasm, entry points live in exports.go.
////////////////////////////////////////////////////////////////////////////////

package main

func main() {}
