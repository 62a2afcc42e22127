package scenario

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"voting_ledger/contract"
	"voting_ledger/internal/simhost"
	"voting_ledger/sdk"
)

const contractID = "voting"

// Report is the outcome of one scenario run.
type Report struct {
	Name     string
	Calls    int
	Failures []string
	Results  []simhost.TxResult
}

func (r *Report) Passed() bool {
	return len(r.Failures) == 0
}

func (r *Report) failf(format string, args ...interface{}) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

type Runner struct {
	log log15.Logger
}

func NewRunner(logger log15.Logger) *Runner {
	if logger == nil {
		logger = simhost.NopLogger()
	}
	return &Runner{log: logger.New("module", "scenario")}
}

// Run plays s on a fresh chain. Mismatches end up in the report; the error is
// reserved for scenarios that cannot be set up at all.
func (r *Runner) Run(s *Scenario) (*Report, error) {
	log := r.log.New("scenario", s.Name)
	chain := simhost.New(log)
	deployer := sdk.Address(s.Deployer)
	if err := chain.Deploy(contractID, deployer, contract.Exports()); err != nil {
		return nil, errors.Wrap(err, "deploy")
	}
	token := chain.NewTokenIssuer(sdk.Asset(s.Asset), deployer)
	for _, addr := range sortedKeys(s.Mint) {
		if err := token.MintAndSend(s.Mint[addr], sdk.Address(addr)); err != nil {
			return nil, errors.Wrapf(err, "mint to %s", addr)
		}
	}

	report := &Report{Name: s.Name}
	for i, step := range s.Steps {
		times := step.Repeat
		if times == 0 {
			times = 1
		}
		for n := 0; n < times; n++ {
			res := r.runStep(chain, s, i, step, report)
			report.Results = append(report.Results, res)
			report.Calls++
		}
	}

	r.checkFinal(chain, token, s, report)
	if report.Passed() {
		log.Info("scenario passed", "calls", report.Calls)
	} else {
		log.Warn("scenario failed", "calls", report.Calls, "failures", len(report.Failures))
	}
	return report, nil
}

func (r *Runner) runStep(chain *simhost.Chain, s *Scenario, i int, step Step, report *Report) simhost.TxResult {
	var intents []sdk.Intent
	if step.Allow != nil {
		token := step.Token
		if token == "" {
			token = s.Asset
		}
		intents = append(intents, simhost.TransferAllow(sdk.Asset(token), *step.Allow))
	}

	stateBefore, walletsBefore := chain.Snapshot(contractID)
	res := chain.Call(simhost.Tx{
		Caller:     sdk.Address(step.Caller),
		ContractID: contractID,
		Action:     step.Call,
		Payload:    step.Payload,
		Intents:    intents,
	})
	r.log.Debug("step", "index", i, "call", step.Call, "caller", step.Caller, "success", res.Success, "ret", res.Ret, "symbol", res.Symbol)

	label := fmt.Sprintf("step %d (%s by %s)", i, step.Call, step.Caller)
	want := step.Expect
	switch {
	case want.Fail && res.Success:
		report.failf("%s: expected failure, got success %q", label, res.Ret)
	case !want.Fail && !res.Success:
		report.failf("%s: failed with %s: %s", label, res.Symbol, res.Err)
	case want.Fail && want.Symbol != "" && want.Symbol != res.Symbol:
		report.failf("%s: expected symbol %s, got %s", label, want.Symbol, res.Symbol)
	}
	if want.Ret != nil && res.Success && *want.Ret != res.Ret {
		report.failf("%s: expected return %q, got %q", label, *want.Ret, res.Ret)
	}
	if want.Unchanged {
		stateAfter, walletsAfter := chain.Snapshot(contractID)
		if !reflect.DeepEqual(stateBefore, stateAfter) || !reflect.DeepEqual(walletsBefore, walletsAfter) {
			report.failf("%s: expected no state change", label)
		}
	}
	return res
}

func (r *Runner) checkFinal(chain *simhost.Chain, token *simhost.TokenIssuer, s *Scenario, report *Report) {
	deployer := sdk.Address(s.Deployer)
	want := s.Expect

	for _, addr := range want.NoWallet {
		if bal, ok := token.BalanceOf(sdk.Address(addr)); ok {
			report.failf("wallet %s: expected none, holds %d", addr, bal)
		}
	}
	for _, addr := range sortedKeys(want.Wallets) {
		bal, ok := token.BalanceOf(sdk.Address(addr))
		if !ok || bal != want.Wallets[addr] {
			report.failf("wallet %s: expected %d, got %d", addr, want.Wallets[addr], bal)
		}
	}

	// every remaining check reads the ledger, which needs an initialized contract
	if want.FavoriteNumber == nil && want.ContractBalance == nil && len(want.UserBalances) == 0 && len(want.Votes) == 0 {
		return
	}

	query := func(action, payload string, caller sdk.Address) (uint64, bool) {
		res := chain.Call(simhost.Tx{Caller: caller, ContractID: contractID, Action: action, Payload: payload})
		if !res.Success {
			report.failf("%s: %s: %s", action, res.Symbol, res.Err)
			return 0, false
		}
		v, err := strconv.ParseUint(res.Ret, 10, 64)
		if err != nil {
			report.failf("%s: unexpected return %q", action, res.Ret)
			return 0, false
		}
		return v, true
	}

	if want.FavoriteNumber != nil {
		if v, ok := query(contract.ActionGetFavoriteNumber, "", deployer); ok && v != *want.FavoriteNumber {
			report.failf("favorite number: expected %d, got %d", *want.FavoriteNumber, v)
		}
	}
	if total, ok := query(contract.ActionGetBalance, "", deployer); ok {
		if want.ContractBalance != nil && total != *want.ContractBalance {
			report.failf("contract balance: expected %d, got %d", *want.ContractBalance, total)
		}
		custody := chain.Balance(simhost.ContractAddress(contractID), sdk.Asset(s.Asset))
		if custody != total {
			report.failf("custody %d does not match ledger total %d", custody, total)
		}
	}
	for _, addr := range sortedKeys(want.UserBalances) {
		if v, ok := query(contract.ActionGetUserBalance, "", sdk.Address(addr)); ok && v != want.UserBalances[addr] {
			report.failf("user balance %s: expected %d, got %d", addr, want.UserBalances[addr], v)
		}
	}

	candidates := make([]uint64, 0, len(want.Votes))
	for c := range want.Votes {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	for _, c := range candidates {
		if v, ok := query(contract.ActionGetNumberOfVotes, strconv.FormatUint(c, 10), deployer); ok && v != want.Votes[c] {
			report.failf("votes for %d: expected %d, got %d", c, want.Votes[c], v)
		}
	}
}
