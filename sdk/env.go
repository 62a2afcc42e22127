package sdk

// Intent is a permission attached to a call, e.g. transfer.allow with token and limit args.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type Caller struct {
	Address Address `json:"id"`
}

// Env is the execution environment of the current call.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Sender      Sender   `json:"-"`
	Caller      Caller   `json:"-"`
	Payer       Address  `json:"-"`
	Intents     []Intent `json:"msg.intents"`
}

// AbortError is raised (as a panic value) when a call is aborted or reverted.
// The host discards every effect of the call.
type AbortError struct {
	Message string
	Symbol  string
}

func (e *AbortError) Error() string {
	if e.Symbol == "" {
		return e.Message
	}
	return e.Symbol + ": " + e.Message
}
