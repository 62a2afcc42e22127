package sdk

import "strings"

// Asset is the opaque identity of a fungible token type. Native chain tickers
// and issuer contract ids (contract:token) are both valid identities.
type Asset string

const AssetHive Asset = "hive"

// String returns the raw identity for logging or host calls.
func (a Asset) String() string {
	return string(a)
}

// IsZero reports an empty identity, which never names a real asset.
func (a Asset) IsZero() bool {
	return strings.TrimSpace(string(a)) == ""
}
