package ledger

import (
	"strconv"
	"strings"
)

// Store is the contract key/value storage the ledger persists into.
type Store interface {
	Get(key string) *string
	Set(key, value string)
}

// State is the view of the ledger owned by exactly one call. Reads fall
// through to the store, writes are staged until Commit. A call that fails
// simply drops its State and nothing it staged becomes visible.
type State struct {
	store  Store
	staged map[string]string
	order  []string
}

// Open starts a call-scoped view over store.
func Open(store Store) *State {
	return &State{
		store:  store,
		staged: map[string]string{},
	}
}

func (s *State) get(key string) (string, bool) {
	if v, ok := s.staged[key]; ok {
		return v, true
	}
	ptr := s.store.Get(key)
	if ptr == nil || *ptr == "" {
		return "", false
	}
	return *ptr, true
}

func (s *State) put(key, value string) {
	if _, ok := s.staged[key]; !ok {
		s.order = append(s.order, key)
	}
	s.staged[key] = value
}

func (s *State) getAmount(key string) (Amount, error) {
	raw, ok := s.get(key)
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, ErrCorruptState.Clone().SetData("value", raw)
	}
	return Amount(n), nil
}

func (s *State) putAmount(key string, a Amount) {
	s.put(key, strconv.FormatUint(uint64(a), 10))
}

// Dirty reports whether the view staged any writes.
func (s *State) Dirty() bool {
	return len(s.order) > 0
}

// Commit flushes staged writes in the order they were made, skipping values
// the store already holds so unchanged keys cost nothing.
func (s *State) Commit() {
	for _, key := range s.order {
		value := s.staged[key]
		if existing := s.store.Get(key); existing != nil && *existing == value {
			continue
		}
		s.store.Set(key, value)
	}
	s.Discard()
}

// Discard drops everything staged so far.
func (s *State) Discard() {
	s.staged = map[string]string{}
	s.order = nil
}

func (s *State) config() (*Config, error) {
	raw, ok := s.get(configKey())
	if !ok {
		return nil, ErrNotInitialized
	}
	return decodeConfig(raw)
}

// encodeConfig serializes Config as asset|owner.
func encodeConfig(cfg *Config) string {
	return cfg.Asset.String() + "|" + cfg.Owner.String()
}

func decodeConfig(data string) (*Config, error) {
	i := strings.LastIndex(data, "|")
	if i <= 0 {
		return nil, ErrCorruptState.Clone().SetData("config", data)
	}
	return &Config{
		Asset: Asset(data[:i]),
		Owner: Address(data[i+1:]),
	}, nil
}
