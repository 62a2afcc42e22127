package simhost

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"voting_ledger/sdk"
)

const (
	testContract = "vsctestcontract"
	testAsset    = sdk.Asset("contract:token")
	alice        = sdk.Address("hive:alice")
	bob          = sdk.Address("hive:bob")
)

func strptr(s string) *string { return &s }

// toyHandlers exercise every host import without pulling in a real contract.
func toyHandlers() map[string]Handler {
	return map[string]Handler{
		"set": func(payload *string) *string {
			sdk.StateSetObject("k", *payload)
			sdk.Log("set|v:" + *payload)
			return strptr("ok")
		},
		"set_then_abort": func(payload *string) *string {
			sdk.StateSetObject("k", *payload)
			sdk.Revert("nope", "toy_error")
			return nil
		},
		"pull": func(payload *string) *string {
			amount, _ := strconv.ParseUint(*payload, 10, 64)
			sdk.Draw(amount, testAsset)
			return nil
		},
		"pull_then_abort": func(payload *string) *string {
			amount, _ := strconv.ParseUint(*payload, 10, 64)
			sdk.Draw(amount, testAsset)
			sdk.Abort("changed my mind")
			return nil
		},
		"pay_bob": func(payload *string) *string {
			amount, _ := strconv.ParseUint(*payload, 10, 64)
			sdk.Transfer(bob, amount, testAsset)
			return nil
		},
		"whoami": func(*string) *string {
			env := sdk.GetEnv()
			return strptr(env.Sender.Address.String())
		},
		"txid": func(*string) *string {
			return sdk.GetEnvKey("tx.id")
		},
		"boom": func(*string) *string {
			var m map[string]int
			m["x"] = 1
			return nil
		},
	}
}

func newTestChain(t *testing.T) *Chain {
	c := New(nil)
	require.NoError(t, c.Deploy(testContract, alice, toyHandlers()))
	return c
}

func TestDeployTwiceFails(t *testing.T) {
	c := newTestChain(t)
	require.Error(t, c.Deploy(testContract, alice, toyHandlers()))
	require.Error(t, c.Deploy("", alice, toyHandlers()))
}

func TestCallPersistsStateAndLogs(t *testing.T) {
	c := newTestChain(t)

	res := c.Call(Tx{Caller: alice, ContractID: testContract, Action: "set", Payload: "v1"})
	require.True(t, res.Success, res.Err)
	require.Equal(t, "ok", res.Ret)
	require.Equal(t, []string{"set|v:v1"}, res.Logs)
	require.NotEmpty(t, res.TxID)

	v := c.StateGet(testContract, "k")
	require.NotNil(t, v)
	require.Equal(t, "v1", *v)
	require.Equal(t, []string{"k"}, c.StateKeys(testContract))
}

func TestAbortRollsBackState(t *testing.T) {
	c := newTestChain(t)
	require.True(t, c.Call(Tx{Caller: alice, ContractID: testContract, Action: "set", Payload: "v1"}).Success)

	res := c.Call(Tx{Caller: alice, ContractID: testContract, Action: "set_then_abort", Payload: "v2"})
	require.False(t, res.Success)
	require.Equal(t, "toy_error", res.Symbol)
	require.Equal(t, "nope", res.Err)
	require.Equal(t, "v1", *c.StateGet(testContract, "k"))
}

func TestUnknownContractAndAction(t *testing.T) {
	c := newTestChain(t)

	res := c.Call(Tx{Caller: alice, ContractID: "missing", Action: "set"})
	require.False(t, res.Success)
	require.Equal(t, "contract_not_found", res.Symbol)

	res = c.Call(Tx{Caller: alice, ContractID: testContract, Action: "missing"})
	require.False(t, res.Success)
	require.Equal(t, "action_not_found", res.Symbol)
}

func TestDrawNeedsIntent(t *testing.T) {
	c := newTestChain(t)
	require.NoError(t, c.Credit(alice, testAsset, 1000))

	res := c.Call(Tx{Caller: alice, ContractID: testContract, Action: "pull", Payload: "100"})
	require.False(t, res.Success)
	require.Equal(t, "draw_not_allowed", res.Symbol)

	res = c.Call(Tx{
		Caller: alice, ContractID: testContract, Action: "pull", Payload: "100",
		Intents: []sdk.Intent{TransferAllow(testAsset, 50)},
	})
	require.False(t, res.Success)
	require.Equal(t, "draw_exceeds_limit", res.Symbol)
	require.Equal(t, uint64(1000), c.Balance(alice, testAsset))
}

func TestDrawMovesFundsIntoCustody(t *testing.T) {
	c := newTestChain(t)
	require.NoError(t, c.Credit(alice, testAsset, 1000))

	res := c.Call(Tx{
		Caller: alice, ContractID: testContract, Action: "pull", Payload: "400",
		Intents: []sdk.Intent{TransferAllow(testAsset, 400)},
	})
	require.True(t, res.Success, res.Err)
	require.Equal(t, uint64(600), c.Balance(alice, testAsset))
	require.Equal(t, uint64(400), c.Balance(ContractAddress(testContract), testAsset))
	require.Equal(t, uint64(1000), c.Supply(testAsset))
}

func TestDrawBeyondWalletFails(t *testing.T) {
	c := newTestChain(t)
	require.NoError(t, c.Credit(alice, testAsset, 10))

	res := c.Call(Tx{
		Caller: alice, ContractID: testContract, Action: "pull", Payload: "400",
		Intents: []sdk.Intent{TransferAllow(testAsset, 400)},
	})
	require.False(t, res.Success)
	require.Equal(t, "draw_failed", res.Symbol)
	require.Equal(t, uint64(10), c.Balance(alice, testAsset))
}

func TestAbortRollsBackWallets(t *testing.T) {
	c := newTestChain(t)
	require.NoError(t, c.Credit(alice, testAsset, 1000))
	_, walletsBefore := c.Snapshot(testContract)

	res := c.Call(Tx{
		Caller: alice, ContractID: testContract, Action: "pull_then_abort", Payload: "400",
		Intents: []sdk.Intent{TransferAllow(testAsset, 400)},
	})
	require.False(t, res.Success)
	require.Equal(t, "changed my mind", res.Err)

	_, walletsAfter := c.Snapshot(testContract)
	require.Equal(t, walletsBefore, walletsAfter)
}

func TestTransferFromCustody(t *testing.T) {
	c := newTestChain(t)
	require.NoError(t, c.Credit(ContractAddress(testContract), testAsset, 300))

	res := c.Call(Tx{Caller: alice, ContractID: testContract, Action: "pay_bob", Payload: "200"})
	require.True(t, res.Success, res.Err)
	require.Equal(t, uint64(200), c.Balance(bob, testAsset))
	require.Equal(t, uint64(100), c.Balance(ContractAddress(testContract), testAsset))

	res = c.Call(Tx{Caller: alice, ContractID: testContract, Action: "pay_bob", Payload: "200"})
	require.False(t, res.Success)
	require.Equal(t, "transfer_failed", res.Symbol)
	require.Equal(t, uint64(200), c.Balance(bob, testAsset))
}

func TestEnvCarriesCallerAndFreshTxID(t *testing.T) {
	c := newTestChain(t)

	res := c.Call(Tx{Caller: bob, ContractID: testContract, Action: "whoami"})
	require.True(t, res.Success)
	require.Equal(t, bob.String(), res.Ret)

	first := c.Call(Tx{Caller: bob, ContractID: testContract, Action: "txid"})
	second := c.Call(Tx{Caller: bob, ContractID: testContract, Action: "txid"})
	require.Equal(t, first.TxID, first.Ret)
	require.NotEqual(t, first.Ret, second.Ret)
}

func TestHandlerPanicIsContained(t *testing.T) {
	c := newTestChain(t)

	res := c.Call(Tx{Caller: alice, ContractID: testContract, Action: "boom"})
	require.False(t, res.Success)
	require.Equal(t, "panic", res.Symbol)
}
