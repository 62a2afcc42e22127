//go:build !wasm

package sdk

// Host is the native stand-in for the wasm host imports. Binding one lets the
// contract code run unchanged in tests and simulations.
type Host interface {
	Log(msg string)
	StateSet(key, value string)
	StateGet(key string) *string
	Env() Env
	EnvKey(key string) *string
	Balance(addr Address, asset Asset) uint64
	Draw(amount uint64, asset Asset)
	Transfer(to Address, amount uint64, asset Asset)
}

var host Host

// SetHost binds h as the active host and returns the previously bound one.
func SetHost(h Host) Host {
	prev := host
	host = h
	return prev
}

func currentHost() Host {
	if host == nil {
		panic(&AbortError{Message: "no host bound", Symbol: "sdk_error"})
	}
	return host
}

func Log(s string) {
	currentHost().Log(s)
}

func Abort(msg string) {
	panic(&AbortError{Message: msg})
}

func Revert(msg string, symbol string) {
	panic(&AbortError{Message: msg, Symbol: symbol})
}

func StateSetObject(key string, value string) {
	currentHost().StateSet(key, value)
}

func StateGetObject(key string) *string {
	return currentHost().StateGet(key)
}

func GetEnv() Env {
	return currentHost().Env()
}

func GetEnvKey(key string) *string {
	return currentHost().EnvKey(key)
}

func GetBalance(address Address, asset Asset) uint64 {
	return currentHost().Balance(address, asset)
}

func Draw(amount uint64, asset Asset) {
	currentHost().Draw(amount, asset)
}

func Transfer(to Address, amount uint64, asset Asset) {
	currentHost().Transfer(to, amount, asset)
}
