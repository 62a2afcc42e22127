package simhost

import (
	"github.com/pkg/errors"

	"voting_ledger/sdk"
)

// TokenIssuer mints a single fungible asset and hands it out to wallets.
type TokenIssuer struct {
	chain  *Chain
	asset  sdk.Asset
	minter sdk.Address
	supply uint64
}

// NewTokenIssuer registers minter as the only account allowed to mint asset.
func (c *Chain) NewTokenIssuer(asset sdk.Asset, minter sdk.Address) *TokenIssuer {
	return &TokenIssuer{chain: c, asset: asset, minter: minter}
}

func (t *TokenIssuer) Asset() sdk.Asset    { return t.asset }
func (t *TokenIssuer) Minter() sdk.Address { return t.minter }
func (t *TokenIssuer) Supply() uint64      { return t.supply }

// MintAndSend creates amount new units and credits them to to.
func (t *TokenIssuer) MintAndSend(amount uint64, to sdk.Address) error {
	if amount == 0 {
		return errors.New("mint amount must be positive")
	}
	if t.supply+amount < t.supply {
		return errors.Errorf("minting %d overflows supply %d", amount, t.supply)
	}
	if err := t.chain.Credit(to, t.asset, amount); err != nil {
		return errors.Wrap(err, "mint")
	}
	t.supply += amount
	t.chain.log.Debug("minted", "asset", t.asset, "to", to, "amount", amount)
	return nil
}

// BalanceOf reports the wallet balance of addr. ok is false for a wallet that
// never received the asset, which is not the same as a zero balance.
func (t *TokenIssuer) BalanceOf(addr sdk.Address) (amount uint64, ok bool) {
	return t.chain.lookupBalance(addr, t.asset)
}
