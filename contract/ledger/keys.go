package ledger

const (
	// kConfig holds asset|owner, written once by Initialize.
	kConfig byte = 0x01
	// kTotal is the sum of all escrowed balances.
	kTotal byte = 0x02
	// kFavorite is the candidate elected by the last successful Execute.
	kFavorite byte = 0x03
	// kAccountBalance is escrow per account.
	kAccountBalance byte = 0x04
	// kAccountCommitted is the part of an account's escrow pledged to votes.
	kAccountCommitted byte = 0x05
	// kCandidateWeight accumulates vote weight per candidate.
	kCandidateWeight byte = 0x10
	// kVoteReceipt tracks what one account pledged to one candidate.
	kVoteReceipt byte = 0x20
)

// idxCandidates is the base key of the chunked index of voted candidates.
const idxCandidates = "cand"

// packU64LE appends x in little-endian order so keys stay compact.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

func singleKey(prefix byte) string {
	return string([]byte{prefix})
}

func configKey() string   { return singleKey(kConfig) }
func totalKey() string    { return singleKey(kTotal) }
func favoriteKey() string { return singleKey(kFavorite) }

func accountKey(prefix byte, addr Address) string {
	s := addr.String()
	buf := make([]byte, 0, 1+len(s))
	buf = append(buf, prefix)
	buf = append(buf, s...)
	return string(buf)
}

func accountBalanceKey(addr Address) string {
	return accountKey(kAccountBalance, addr)
}

func accountCommittedKey(addr Address) string {
	return accountKey(kAccountCommitted, addr)
}

func candidateWeightKey(c Candidate) string {
	buf := make([]byte, 0, 9)
	buf = append(buf, kCandidateWeight)
	buf = packU64LE(uint64(c), buf)
	return string(buf)
}

// voteReceiptKey puts the candidate after the address so receipts of one
// account share a prefix.
func voteReceiptKey(addr Address, c Candidate) string {
	s := addr.String()
	buf := make([]byte, 0, 1+len(s)+8)
	buf = append(buf, kVoteReceipt)
	buf = append(buf, s...)
	buf = packU64LE(uint64(c), buf)
	return string(buf)
}
