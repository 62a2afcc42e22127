package simhost

import (
	"strconv"

	"voting_ledger/sdk"
)

// callHost serves the sdk imports for one call.
type callHost struct {
	chain *Chain
	dep   *deployment
	tx    Tx
	env   sdk.Env
	logs  []string
	drawn map[sdk.Asset]uint64
}

func newCallHost(c *Chain, dep *deployment, tx Tx, txID string, height uint64) *callHost {
	timestamp := tx.Timestamp
	if timestamp == "" {
		timestamp = defaultTimestamp
	}
	env := sdk.Env{
		ContractId:  dep.id,
		TxId:        txID,
		BlockId:     "block" + strconv.FormatUint(height, 10),
		BlockHeight: height,
		Timestamp:   timestamp,
		Sender: sdk.Sender{
			Address:              tx.Caller,
			RequiredAuths:        []sdk.Address{tx.Caller},
			RequiredPostingAuths: []sdk.Address{},
		},
		Caller:  sdk.Caller{Address: tx.Caller},
		Payer:   tx.Caller,
		Intents: tx.Intents,
	}
	return &callHost{
		chain: c,
		dep:   dep,
		tx:    tx,
		env:   env,
		drawn: map[sdk.Asset]uint64{},
	}
}

func (h *callHost) Log(msg string) {
	h.logs = append(h.logs, msg)
	h.chain.log.Debug("contract log", "contract", h.dep.id, "line", msg)
}

func (h *callHost) StateSet(key, value string) {
	h.chain.mu.Lock()
	defer h.chain.mu.Unlock()
	h.dep.state[key] = value
}

func (h *callHost) StateGet(key string) *string {
	h.chain.mu.Lock()
	defer h.chain.mu.Unlock()
	v, found := h.dep.state[key]
	if !found {
		return nil
	}
	return &v
}

func (h *callHost) Env() sdk.Env {
	return h.env
}

func (h *callHost) EnvKey(key string) *string {
	var v string
	switch key {
	case "contract.id":
		v = h.env.ContractId
	case "tx.id":
		v = h.env.TxId
	case "block.id":
		v = h.env.BlockId
	case "block.height":
		v = strconv.FormatUint(h.env.BlockHeight, 10)
	case "block.timestamp":
		v = h.env.Timestamp
	case "msg.sender":
		v = h.env.Sender.Address.String()
	case "msg.caller":
		v = h.env.Caller.Address.String()
	case "msg.payer":
		v = h.env.Payer.String()
	default:
		return nil
	}
	return &v
}

func (h *callHost) Balance(addr sdk.Address, asset sdk.Asset) uint64 {
	return h.chain.Balance(addr, asset)
}

// Draw pulls funds from the caller into contract custody. The total drawn per
// asset within one call may not exceed the transfer.allow limit for it.
func (h *callHost) Draw(amount uint64, asset sdk.Asset) {
	limit, found := h.allowance(asset)
	if !found {
		sdk.Revert("no transfer.allow intent for "+asset.String(), "draw_not_allowed")
	}
	drawn := h.drawn[asset]
	if drawn+amount < drawn || drawn+amount > limit {
		sdk.Revert("draw exceeds transfer.allow limit", "draw_exceeds_limit")
	}

	h.chain.mu.Lock()
	err := h.chain.debit(h.tx.Caller, asset, amount)
	if err == nil {
		err = h.chain.credit(ContractAddress(h.dep.id), asset, amount)
	}
	h.chain.mu.Unlock()
	if err != nil {
		sdk.Revert(err.Error(), "draw_failed")
	}
	h.drawn[asset] = drawn + amount
}

// Transfer pays out of contract custody.
func (h *callHost) Transfer(to sdk.Address, amount uint64, asset sdk.Asset) {
	h.chain.mu.Lock()
	err := h.chain.debit(ContractAddress(h.dep.id), asset, amount)
	if err == nil {
		err = h.chain.credit(to, asset, amount)
	}
	h.chain.mu.Unlock()
	if err != nil {
		sdk.Revert(err.Error(), "transfer_failed")
	}
}

func (h *callHost) allowance(asset sdk.Asset) (uint64, bool) {
	for _, intent := range h.tx.Intents {
		if intent.Type != "transfer.allow" || sdk.Asset(intent.Args["token"]) != asset {
			continue
		}
		limit, err := strconv.ParseUint(intent.Args["limit"], 10, 64)
		if err != nil {
			return 0, false
		}
		return limit, true
	}
	return 0, false
}

// TransferAllow builds the intent that authorizes a contract to draw funds.
func TransferAllow(asset sdk.Asset, limit uint64) sdk.Intent {
	return sdk.Intent{
		Type: "transfer.allow",
		Args: map[string]string{
			"token": asset.String(),
			"limit": strconv.FormatUint(limit, 10),
		},
	}
}
