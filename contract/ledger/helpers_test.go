package ledger

import "math/big"

// memStore keeps contract storage in a plain map and counts writes.
type memStore struct {
	db     map[string]string
	writes int
}

func newMemStore() *memStore {
	return &memStore{db: make(map[string]string)}
}

func (m *memStore) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *memStore) Set(key, value string) {
	m.db[key] = value
	m.writes++
}

func (m *memStore) snapshot() map[string]string {
	cp := make(map[string]string, len(m.db))
	for k, v := range m.db {
		cp[k] = v
	}
	return cp
}

const testAsset = Asset("contract:token")

// call runs fn against a fresh view and commits only when fn succeeds,
// the way the contract handlers do.
func call(store *memStore, fn func(s *State) error) error {
	st := Open(store)
	if err := fn(st); err != nil {
		st.Discard()
		return err
	}
	st.Commit()
	return nil
}

func initialized() *memStore {
	store := newMemStore()
	if err := call(store, func(s *State) error { return s.Initialize(testAsset, "hive:deployer") }); err != nil {
		panic(err)
	}
	return store
}

func deposit(store *memStore, addr Address, amount Amount) error {
	return call(store, func(s *State) error { return s.Deposit(addr, testAsset, amount) })
}

func vote(store *memStore, addr Address, c Candidate, w Amount) error {
	return call(store, func(s *State) error { return s.Vote(addr, c, w) })
}

func withdraw(store *memStore, addr Address, amount Amount) error {
	return call(store, func(s *State) error {
		_, err := s.Withdraw(addr, amount)
		return err
	})
}

// sumBalances adds every account balance found in storage with big ints so the
// check itself cannot overflow.
func sumBalances(store *memStore) *big.Int {
	sum := new(big.Int)
	for k, v := range store.db {
		if len(k) > 0 && k[0] == kAccountBalance {
			n, ok := new(big.Int).SetString(v, 10)
			if !ok {
				panic("bad balance " + v)
			}
			sum.Add(sum, n)
		}
	}
	return sum
}
