//go:build wasm

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk hive.get_balance
func getBalance(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.draw
func hiveDraw(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.transfer
func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

// Log writes a message to the host console so watchers can trace contract steps.
func Log(s string) {
	log(&s)
}

// Abort stops execution immediately and surfaces the message to the chain.
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(&AbortError{Message: msg})
}

// Revert throws a named error back to the caller with a short symbol.
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
	panic(&AbortError{Message: msg, Symbol: symbol})
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to Env.
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	env.Sender = Sender{
		Address:              addressField(envMap, "msg.sender"),
		RequiredAuths:        addressList(envMap, "msg.required_auths"),
		RequiredPostingAuths: addressList(envMap, "msg.required_posting_auths"),
	}
	env.Caller = Caller{Address: addressField(envMap, "msg.caller")}
	env.Payer = addressField(envMap, "msg.payer")
	return env
}

func addressField(envMap map[string]interface{}, key string) Address {
	s, _ := envMap[key].(string)
	return Address(s)
}

func addressList(envMap map[string]interface{}, key string) []Address {
	raw, _ := envMap[key].([]interface{})
	out := make([]Address, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, Address(s))
		}
	}
	return out
}

// GetEnvKey pulls a single env key (like tx.id) without parsing the whole env.
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetBalance queries the host ledger for the given account and asset.
func GetBalance(address Address, asset Asset) uint64 {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	bal, err := strconv.ParseUint(balStr, 10, 64)
	if err != nil {
		Abort("invalid balance from host")
	}
	return bal
}

// Draw pulls tokens from the caller to the contract within the transfer.allow limit.
func Draw(amount uint64, asset Asset) {
	amt := strconv.FormatUint(amount, 10)
	as := asset.String()
	hiveDraw(&amt, &as)
}

// Transfer sends tokens held by the contract to an address.
func Transfer(to Address, amount uint64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatUint(amount, 10)
	as := asset.String()
	hiveTransfer(&toaddr, &amt, &as)
}
