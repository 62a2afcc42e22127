//go:build wasm

package ledger

import "voting_ledger/sdk"

type Address = sdk.Address
type Asset = sdk.Asset
