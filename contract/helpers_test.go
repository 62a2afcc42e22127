package contract_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"voting_ledger/contract"
	"voting_ledger/internal/simhost"
	"voting_ledger/sdk"
)

const (
	ContractID    = "vsctestcontract"
	ownerAddress  = sdk.Address("hive:deployer")
	tokenAsset    = sdk.Asset("contract:token")
	user1         = sdk.Address("hive:user1")
	user2         = sdk.Address("hive:user2")
	user3         = sdk.Address("hive:user3")
	defaultMinted = 1_000_000
)

type contractTest struct {
	t     *testing.T
	chain *simhost.Chain
	token *simhost.TokenIssuer
}

// setupContractTest deploys the voting contract next to a token issuer owned
// by the deployer. The contract is not initialized yet.
func setupContractTest(t *testing.T) *contractTest {
	chain := simhost.New(nil)
	require.NoError(t, chain.Deploy(ContractID, ownerAddress, contract.Exports()))
	return &contractTest{
		t:     t,
		chain: chain,
		token: chain.NewTokenIssuer(tokenAsset, ownerAddress),
	}
}

// setupInitialized also initializes the contract and mints defaultMinted to
// every given user.
func setupInitialized(t *testing.T, users ...sdk.Address) *contractTest {
	ct := setupContractTest(t)
	ct.callOK(contract.ActionInit, tokenAsset.String(), nil, ownerAddress)
	for _, u := range users {
		require.NoError(t, ct.token.MintAndSend(defaultMinted, u))
	}
	return ct
}

func (ct *contractTest) call(action, payload string, intents []sdk.Intent, caller sdk.Address) simhost.TxResult {
	return ct.chain.Call(simhost.Tx{
		Caller:     caller,
		ContractID: ContractID,
		Action:     action,
		Payload:    payload,
		Intents:    intents,
	})
}

func (ct *contractTest) callOK(action, payload string, intents []sdk.Intent, caller sdk.Address) simhost.TxResult {
	ct.t.Helper()
	res := ct.call(action, payload, intents, caller)
	require.True(ct.t, res.Success, "%s failed: %s (%s)", action, res.Err, res.Symbol)
	return res
}

func (ct *contractTest) callFail(action, payload string, intents []sdk.Intent, caller sdk.Address, symbol string) simhost.TxResult {
	ct.t.Helper()
	res := ct.call(action, payload, intents, caller)
	require.False(ct.t, res.Success, "%s did not fail", action)
	require.Equal(ct.t, symbol, res.Symbol, res.Err)
	return res
}

func (ct *contractTest) deposit(user sdk.Address, amount uint64) simhost.TxResult {
	ct.t.Helper()
	return ct.callOK(contract.ActionDeposit, payloadUint64(amount), transferIntent(amount), user)
}

func (ct *contractTest) withdraw(user sdk.Address, amount uint64) simhost.TxResult {
	ct.t.Helper()
	return ct.callOK(contract.ActionWithdraw, payloadUint64(amount), nil, user)
}

func (ct *contractTest) vote(user sdk.Address, candidate, weight uint64) simhost.TxResult {
	ct.t.Helper()
	return ct.callOK(contract.ActionVote, votePayload(candidate, weight), nil, user)
}

func (ct *contractTest) execute() bool {
	ct.t.Helper()
	res := ct.callOK(contract.ActionExecute, "", nil, ownerAddress)
	v, err := strconv.ParseBool(res.Ret)
	require.NoError(ct.t, err)
	return v
}

func (ct *contractTest) queryUint(action, payload string, caller sdk.Address) uint64 {
	ct.t.Helper()
	res := ct.callOK(action, payload, nil, caller)
	v, err := strconv.ParseUint(res.Ret, 10, 64)
	require.NoError(ct.t, err, res.Ret)
	return v
}

func (ct *contractTest) contractBalance() uint64 {
	return ct.queryUint(contract.ActionGetBalance, "", ownerAddress)
}

func (ct *contractTest) userBalance(user sdk.Address) uint64 {
	return ct.queryUint(contract.ActionGetUserBalance, "", user)
}

func (ct *contractTest) favoriteNumber() uint64 {
	return ct.queryUint(contract.ActionGetFavoriteNumber, "", ownerAddress)
}

func (ct *contractTest) numberOfVotes(candidate uint64) uint64 {
	return ct.queryUint(contract.ActionGetNumberOfVotes, payloadUint64(candidate), ownerAddress)
}

func (ct *contractTest) wallet(user sdk.Address) uint64 {
	bal, _ := ct.token.BalanceOf(user)
	return bal
}

func transferIntent(limit uint64) []sdk.Intent {
	return transferIntentWithToken(limit, tokenAsset)
}

func transferIntentWithToken(limit uint64, token sdk.Asset) []sdk.Intent {
	return []sdk.Intent{simhost.TransferAllow(token, limit)}
}

// payloadString wraps a Go string into the quoted form clients send.
func payloadString(val string) string {
	return strconv.Quote(val)
}

func payloadUint64(val uint64) string {
	return strconv.FormatUint(val, 10)
}

func votePayload(candidate, weight uint64) string {
	return payloadString(strconv.FormatUint(candidate, 10) + "|" + strconv.FormatUint(weight, 10))
}

func contractCustody() sdk.Address {
	return simhost.ContractAddress(ContractID)
}
