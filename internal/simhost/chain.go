// Package simhost is an in-memory stand-in for the vsc contract host. It keeps
// wallets and contract storage, runs contract handlers natively through the sdk
// Host binding and rolls back every effect of a call that aborts.
package simhost

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"voting_ledger/sdk"
)

// the sdk host binding is process wide, so only one call may run at a time
var bindMu sync.Mutex

const defaultTimestamp = "2025-09-03T00:00:00"

// Handler is a contract entry point, the same shape as a wasm export.
type Handler = func(payload *string) *string

type walletKey struct {
	asset sdk.Asset
	addr  sdk.Address
}

type deployment struct {
	id       string
	owner    sdk.Address
	state    map[string]string
	handlers map[string]Handler
}

// Chain holds wallets and deployed contracts.
type Chain struct {
	mu        sync.Mutex
	log       log15.Logger
	wallets   map[walletKey]uint64
	contracts map[string]*deployment
	height    uint64
}

func New(logger log15.Logger) *Chain {
	if logger == nil {
		logger = NopLogger()
	}
	return &Chain{
		log:       logger.New("module", "simhost"),
		wallets:   map[walletKey]uint64{},
		contracts: map[string]*deployment{},
	}
}

// ContractAddress is the account a contract holds custody under.
func ContractAddress(contractID string) sdk.Address {
	return sdk.Address("contract:" + contractID)
}

// Deploy registers handlers under contractID with empty storage.
func (c *Chain) Deploy(contractID string, owner sdk.Address, handlers map[string]Handler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if contractID == "" {
		return errors.New("empty contract id")
	}
	if _, found := c.contracts[contractID]; found {
		return errors.Errorf("contract %q already deployed", contractID)
	}
	c.contracts[contractID] = &deployment{
		id:       contractID,
		owner:    owner,
		state:    map[string]string{},
		handlers: handlers,
	}
	c.log.Debug("contract deployed", "contract", contractID, "owner", owner, "actions", len(handlers))
	return nil
}

// Credit adds funds to a wallet outside of any contract call.
func (c *Chain) Credit(addr sdk.Address, asset sdk.Asset, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.credit(addr, asset, amount)
}

func (c *Chain) credit(addr sdk.Address, asset sdk.Asset, amount uint64) error {
	k := walletKey{asset: asset, addr: addr}
	cur := c.wallets[k]
	if cur+amount < cur {
		return errors.Errorf("wallet %s overflows for %s", addr, asset)
	}
	c.wallets[k] = cur + amount
	return nil
}

func (c *Chain) debit(addr sdk.Address, asset sdk.Asset, amount uint64) error {
	k := walletKey{asset: asset, addr: addr}
	cur := c.wallets[k]
	if cur < amount {
		return errors.Errorf("wallet %s holds %d %s, needs %d", addr, cur, asset, amount)
	}
	c.wallets[k] = cur - amount
	return nil
}

// Balance returns the wallet balance, 0 when the wallet never held the asset.
func (c *Chain) Balance(addr sdk.Address, asset sdk.Asset) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wallets[walletKey{asset: asset, addr: addr}]
}

func (c *Chain) lookupBalance(addr sdk.Address, asset sdk.Asset) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, found := c.wallets[walletKey{asset: asset, addr: addr}]
	return v, found
}

// Supply sums every wallet holding asset, contract custody included.
func (c *Chain) Supply(asset sdk.Asset) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total uint64
	for k, v := range c.wallets {
		if k.asset == asset {
			total += v
		}
	}
	return total
}

// StateGet reads a raw storage value of a deployed contract.
func (c *Chain) StateGet(contractID, key string) *string {
	c.mu.Lock()
	defer c.mu.Unlock()
	dep, found := c.contracts[contractID]
	if !found {
		return nil
	}
	v, found := dep.state[key]
	if !found {
		return nil
	}
	return &v
}

// StateKeys lists the storage keys of a contract in sorted order.
func (c *Chain) StateKeys(contractID string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	dep, found := c.contracts[contractID]
	if !found {
		return nil
	}
	keys := make([]string, 0, len(dep.state))
	for k := range dep.state {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot copies contract storage and all wallets, for comparisons in tests.
func (c *Chain) Snapshot(contractID string) (map[string]string, map[string]uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := map[string]string{}
	if dep, found := c.contracts[contractID]; found {
		for k, v := range dep.state {
			state[k] = v
		}
	}
	wallets := map[string]uint64{}
	for k, v := range c.wallets {
		wallets[fmt.Sprintf("%s@%s", k.addr, k.asset)] = v
	}
	return state, wallets
}

// Tx is a contract call as submitted by Caller.
type Tx struct {
	Caller     sdk.Address
	ContractID string
	Action     string
	Payload    string
	Intents    []sdk.Intent
	Timestamp  string
}

// TxResult is the outcome of a call. A failed call has no effect.
type TxResult struct {
	TxID    string
	Success bool
	Ret     string
	Err     string
	Symbol  string
	Logs    []string
}

// Call runs tx atomically: when the handler aborts, storage and wallets are
// restored to what they were before the call.
func (c *Chain) Call(tx Tx) TxResult {
	bindMu.Lock()
	defer bindMu.Unlock()

	result := TxResult{TxID: uuid.NewString()}
	log := c.log.New("tx", result.TxID, "action", tx.Action, "caller", tx.Caller)

	c.mu.Lock()
	dep, found := c.contracts[tx.ContractID]
	c.mu.Unlock()
	if !found {
		result.Err = fmt.Sprintf("contract %q not found", tx.ContractID)
		result.Symbol = "contract_not_found"
		log.Warn("call rejected", "error", result.Err)
		return result
	}
	handler, found := dep.handlers[tx.Action]
	if !found {
		result.Err = fmt.Sprintf("action %q not exported", tx.Action)
		result.Symbol = "action_not_found"
		log.Warn("call rejected", "error", result.Err)
		return result
	}

	c.mu.Lock()
	c.height++
	height := c.height
	stateBefore := copyState(dep.state)
	walletsBefore := copyWallets(c.wallets)
	c.mu.Unlock()

	h := newCallHost(c, dep, tx, result.TxID, height)
	prev := sdk.SetHost(h)
	defer sdk.SetHost(prev)

	ret, err := invoke(handler, tx.Payload)
	result.Logs = h.logs
	if err != nil {
		c.mu.Lock()
		dep.state = stateBefore
		c.wallets = walletsBefore
		c.mu.Unlock()

		result.Err = err.Message
		result.Symbol = err.Symbol
		log.Debug("call reverted", "symbol", err.Symbol, "error", err.Message)
		return result
	}

	result.Success = true
	if ret != nil {
		result.Ret = *ret
	}
	log.Debug("call succeeded", "ret", result.Ret, "logs", len(result.Logs))
	return result
}

// invoke converts an aborting panic into an error; other panics are reported
// the same way so a broken handler cannot leave partial effects behind.
func invoke(handler Handler, payload string) (ret *string, abort *sdk.AbortError) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch v := r.(type) {
		case *sdk.AbortError:
			abort = v
		case error:
			abort = &sdk.AbortError{Message: v.Error(), Symbol: "panic"}
		default:
			abort = &sdk.AbortError{Message: fmt.Sprint(v), Symbol: "panic"}
		}
	}()

	var p *string
	if payload != "" {
		p = &payload
	}
	return handler(p), nil
}

func copyState(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyWallets(src map[walletKey]uint64) map[walletKey]uint64 {
	dst := make(map[walletKey]uint64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
