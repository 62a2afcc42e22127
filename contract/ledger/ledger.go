// Package ledger is the token-weighted voting ledger: it custodies escrow per
// account, records weighted votes for candidate numbers and elects the
// favorite number on demand.
//
// Every operation works on a call-scoped *State and stages its writes only
// after all preconditions and arithmetic checks passed, so a returned error
// always means the view is unchanged.
package ledger

// Initialize accepts asset as the only asset the ledger custodies. It can run once.
func (s *State) Initialize(asset Asset, owner Address) error {
	if _, ok := s.get(configKey()); ok {
		return ErrAlreadyInitialized
	}
	if asset.String() == "" {
		return ErrInvalidAsset
	}
	s.put(configKey(), encodeConfig(&Config{Asset: asset, Owner: owner}))
	s.putAmount(totalKey(), 0)
	s.putAmount(favoriteKey(), 0)
	return nil
}

// CheckInitialized fails with ErrNotInitialized until Initialize ran.
func (s *State) CheckInitialized() error {
	_, err := s.config()
	return err
}

// Deposit credits amount of the attached asset to caller's escrow.
func (s *State) Deposit(caller Address, attached Asset, amount Amount) error {
	cfg, err := s.config()
	if err != nil {
		return err
	}
	if attached != cfg.Asset {
		return ErrWrongAsset.Clone().SetData("asset", attached.String())
	}
	if amount == 0 {
		return ErrInvalidAmount
	}

	balance, err := s.getAmount(accountBalanceKey(caller))
	if err != nil {
		return err
	}
	total, err := s.getAmount(totalKey())
	if err != nil {
		return err
	}
	newBalance, err := balance.Add(amount)
	if err != nil {
		return err
	}
	newTotal, err := total.Add(amount)
	if err != nil {
		return err
	}

	s.putAmount(accountBalanceKey(caller), newBalance)
	s.putAmount(totalKey(), newTotal)
	return nil
}

// Withdraw debits amount from caller's uncommitted escrow and returns the
// asset the host has to transfer back.
func (s *State) Withdraw(caller Address, amount Amount) (Asset, error) {
	cfg, err := s.config()
	if err != nil {
		return "", err
	}
	if amount == 0 {
		return "", ErrInvalidAmount
	}

	balance, available, err := s.available(caller)
	if err != nil {
		return "", err
	}
	if amount > available {
		return "", ErrInsufficientAvailableBalance.Clone().
			SetData("requested", amount.String()).
			SetData("available", available.String())
	}
	total, err := s.getAmount(totalKey())
	if err != nil {
		return "", err
	}
	newBalance, err := balance.Sub(amount)
	if err != nil {
		return "", err
	}
	newTotal, err := total.Sub(amount)
	if err != nil {
		return "", err
	}

	s.putAmount(accountBalanceKey(caller), newBalance)
	s.putAmount(totalKey(), newTotal)
	return cfg.Asset, nil
}

// Vote pledges weight of caller's uncommitted escrow to candidate. Pledges
// are permanent: nothing releases them again.
func (s *State) Vote(caller Address, candidate Candidate, weight Amount) error {
	if _, err := s.config(); err != nil {
		return err
	}
	if weight == 0 {
		return ErrInvalidAmount
	}

	_, available, err := s.available(caller)
	if err != nil {
		return err
	}
	if weight > available {
		return ErrInsufficientAvailableBalance.Clone().
			SetData("requested", weight.String()).
			SetData("available", available.String())
	}

	committed, err := s.getAmount(accountCommittedKey(caller))
	if err != nil {
		return err
	}
	_, seen := s.get(candidateWeightKey(candidate))
	votes, err := s.getAmount(candidateWeightKey(candidate))
	if err != nil {
		return err
	}
	receipt, err := s.getAmount(voteReceiptKey(caller, candidate))
	if err != nil {
		return err
	}

	newCommitted, err := committed.Add(weight)
	if err != nil {
		return err
	}
	newVotes, err := votes.Add(weight)
	if err != nil {
		return err
	}
	newReceipt, err := receipt.Add(weight)
	if err != nil {
		return err
	}

	if !seen {
		if err := s.appendToIndex(idxCandidates, candidate); err != nil {
			return err
		}
	}
	s.putAmount(accountCommittedKey(caller), newCommitted)
	s.putAmount(candidateWeightKey(candidate), newVotes)
	s.putAmount(voteReceiptKey(caller, candidate), newReceipt)
	return nil
}

// Execute elects the candidate with the highest accumulated weight as the
// favorite number. Ties go to the smallest candidate number. Without any
// votes it returns false and leaves the favorite number alone.
func (s *State) Execute() (bool, error) {
	winner, _, ok, err := s.Leader()
	if err != nil || !ok {
		return false, err
	}
	s.putAmount(favoriteKey(), Amount(winner))
	return true, nil
}

// Leader reports who Execute would elect right now without touching the view.
func (s *State) Leader() (Candidate, Amount, bool, error) {
	if _, err := s.config(); err != nil {
		return 0, 0, false, err
	}
	candidates, err := s.indexEntries(idxCandidates)
	if err != nil {
		return 0, 0, false, err
	}

	var (
		best       Candidate
		bestWeight Amount
		found      bool
	)
	for _, c := range candidates {
		w, err := s.getAmount(candidateWeightKey(c))
		if err != nil {
			return 0, 0, false, err
		}
		if !found || w > bestWeight || (w == bestWeight && c < best) {
			best, bestWeight, found = c, w, true
		}
	}
	return best, bestWeight, found, nil
}

func (s *State) available(addr Address) (balance Amount, available Amount, err error) {
	balance, err = s.getAmount(accountBalanceKey(addr))
	if err != nil {
		return 0, 0, err
	}
	committed, err := s.getAmount(accountCommittedKey(addr))
	if err != nil {
		return 0, 0, err
	}
	available, err = balance.Sub(committed)
	if err != nil {
		// committed can never exceed balance unless storage is damaged
		return 0, 0, ErrCorruptState.Clone().SetData("account", addr.String())
	}
	return balance, available, nil
}

// Balance is the total escrow held by the ledger.
func (s *State) Balance() (Amount, error) {
	if _, err := s.config(); err != nil {
		return 0, err
	}
	return s.getAmount(totalKey())
}

// UserBalance is addr's escrow, committed or not.
func (s *State) UserBalance(addr Address) (Amount, error) {
	if _, err := s.config(); err != nil {
		return 0, err
	}
	return s.getAmount(accountBalanceKey(addr))
}

// FavoriteNumber is the candidate elected by the last Execute, 0 before that.
func (s *State) FavoriteNumber() (Candidate, error) {
	if _, err := s.config(); err != nil {
		return 0, err
	}
	n, err := s.getAmount(favoriteKey())
	return Candidate(n), err
}

// NumberOfVotes is the weight accumulated by candidate, zero if never voted for.
func (s *State) NumberOfVotes(candidate Candidate) (Amount, error) {
	if _, err := s.config(); err != nil {
		return 0, err
	}
	return s.getAmount(candidateWeightKey(candidate))
}

// Pledged is the weight addr gave to candidate over all its votes.
func (s *State) Pledged(addr Address, candidate Candidate) (Amount, error) {
	if _, err := s.config(); err != nil {
		return 0, err
	}
	return s.getAmount(voteReceiptKey(addr, candidate))
}

// Account splits addr's escrow into committed and available parts.
func (s *State) Account(addr Address) (*AccountView, error) {
	if _, err := s.config(); err != nil {
		return nil, err
	}
	balance, available, err := s.available(addr)
	if err != nil {
		return nil, err
	}
	return &AccountView{
		Address:   addr,
		Balance:   balance,
		Committed: balance - available,
		Available: available,
	}, nil
}

// Candidates lists every candidate that received a vote, in first-vote order.
func (s *State) Candidates() ([]Candidate, error) {
	if _, err := s.config(); err != nil {
		return nil, err
	}
	return s.indexEntries(idxCandidates)
}

// Summary reports configuration, total escrow, favorite and candidate count.
func (s *State) Summary() (*Summary, error) {
	cfg, err := s.config()
	if err != nil {
		return nil, err
	}
	total, err := s.getAmount(totalKey())
	if err != nil {
		return nil, err
	}
	favorite, err := s.getAmount(favoriteKey())
	if err != nil {
		return nil, err
	}
	candidates, err := s.indexEntries(idxCandidates)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Asset:          cfg.Asset,
		Owner:          cfg.Owner,
		Total:          total,
		FavoriteNumber: Candidate(favorite),
		Candidates:     uint64(len(candidates)),
	}, nil
}
