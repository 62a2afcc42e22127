// Package scenario describes call sequences against the voting contract in
// YAML and checks their outcome on a simulated chain.
package scenario

import (
	"bytes"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"voting_ledger/sdk"
)

const (
	DefaultAsset    = "contract:token"
	DefaultDeployer = "hive:deployer"
)

// Scenario is one YAML document.
type Scenario struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Asset       string            `yaml:"asset"`
	Deployer    string            `yaml:"deployer"`
	Mint        map[string]uint64 `yaml:"mint"`
	Steps       []Step            `yaml:"steps"`
	Expect      Final             `yaml:"expect"`
}

// Step is a single contract call.
type Step struct {
	Call    string  `yaml:"call"`
	Caller  string  `yaml:"caller"`
	Payload string  `yaml:"payload"`
	Allow   *uint64 `yaml:"allow"`
	Token   string  `yaml:"token"`
	Repeat  int     `yaml:"repeat"`
	Expect  Outcome `yaml:"expect"`
}

// Outcome is what a step must produce. The zero value expects success.
type Outcome struct {
	Fail      bool    `yaml:"fail"`
	Symbol    string  `yaml:"symbol"`
	Ret       *string `yaml:"ret"`
	Unchanged bool    `yaml:"unchanged"`
}

// Final is checked once every step ran.
type Final struct {
	FavoriteNumber  *uint64           `yaml:"favorite_number"`
	ContractBalance *uint64           `yaml:"contract_balance"`
	Wallets         map[string]uint64 `yaml:"wallets"`
	UserBalances    map[string]uint64 `yaml:"user_balances"`
	Votes           map[uint64]uint64 `yaml:"votes"`
	NoWallet        []string          `yaml:"no_wallet"`
}

// Parse reads every YAML document in data as a scenario.
func Parse(data []byte) ([]*Scenario, error) {
	var out []*Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		s := &Scenario{}
		err := dec.Decode(s)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "decode scenario")
		}
		s.applyDefaults()
		if err := s.Validate(); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, errors.New("no scenario found")
	}
	return out, nil
}

func LoadFile(path string) ([]*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	scenarios, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return scenarios, nil
}

func (s *Scenario) applyDefaults() {
	if s.Asset == "" {
		s.Asset = DefaultAsset
	}
	if s.Deployer == "" {
		s.Deployer = DefaultDeployer
	}
}

// Validate checks names and addresses before anything is run.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return errors.New("scenario without name")
	}
	if !sdk.Address(s.Deployer).IsValid() {
		return errors.Errorf("%s: invalid deployer %q", s.Name, s.Deployer)
	}
	for _, addr := range sortedKeys(s.Mint) {
		if !sdk.Address(addr).IsValid() {
			return errors.Errorf("%s: invalid mint address %q", s.Name, addr)
		}
	}
	for i, step := range s.Steps {
		if step.Call == "" {
			return errors.Errorf("%s: step %d has no call", s.Name, i)
		}
		if !sdk.Address(step.Caller).IsValid() {
			return errors.Errorf("%s: step %d has invalid caller %q", s.Name, i, step.Caller)
		}
		if step.Repeat < 0 {
			return errors.Errorf("%s: step %d has negative repeat", s.Name, i)
		}
		if step.Expect.Symbol != "" && !step.Expect.Fail {
			return errors.Errorf("%s: step %d expects a symbol but no failure", s.Name, i)
		}
	}
	return nil
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
