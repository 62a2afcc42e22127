package ledger

import (
	"math/bits"
	"strconv"
	"strings"
)

// Amount is an unsigned quantity of the accepted asset in base units.
// Arithmetic never wraps: Add and Sub report overflow as an error.
type Amount uint64

// Candidate is any unsigned number an account may vote for.
type Candidate uint64

func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

func (c Candidate) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// Add returns a+b or ErrOverflow when the sum leaves the uint64 range.
func (a Amount) Add(b Amount) (Amount, error) {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		return 0, ErrOverflow.Clone().SetData("a", a.String()).SetData("b", b.String())
	}
	return Amount(sum), nil
}

// Sub returns a-b or ErrOverflow when b is larger than a.
func (a Amount) Sub(b Amount) (Amount, error) {
	diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		return 0, ErrOverflow.Clone().SetData("a", a.String()).SetData("b", b.String())
	}
	return Amount(diff), nil
}

// ParseAmount reads a decimal amount as sent in call payloads.
func ParseAmount(s string) (Amount, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidPayload.Clone().SetData("amount", s)
	}
	return Amount(n), nil
}

// ParseCandidate reads a decimal candidate number.
func ParseCandidate(s string) (Candidate, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidPayload.Clone().SetData("candidate", s)
	}
	return Candidate(n), nil
}

// Config is written once by Initialize.
type Config struct {
	Asset Asset
	Owner Address
}

// AccountView is the escrow position of one account.
type AccountView struct {
	Address   Address
	Balance   Amount
	Committed Amount
	Available Amount
}

// Summary describes the ledger as a whole.
type Summary struct {
	Asset          Asset
	Owner          Address
	Total          Amount
	FavoriteNumber Candidate
	Candidates     uint64
}

// VoteArgs is the decoded vote payload.
type VoteArgs struct {
	Candidate Candidate
	Weight    Amount
}
