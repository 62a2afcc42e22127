package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVoteArgs(t *testing.T) {
	args, err := DecodeVoteArgs(`{"candidate": 99, "weight": 200001, "note": {"x": [1,2]}}`)
	require.NoError(t, err)
	assert.Equal(t, Candidate(99), args.Candidate)
	assert.Equal(t, Amount(200001), args.Weight)
}

func TestDecodeVoteArgsRejectsGarbage(t *testing.T) {
	_, err := DecodeVoteArgs(`{"candidate": "five"}`)
	assert.True(t, errors.Is(err, ErrInvalidPayload))
}

func TestDecodeVoteArgsRequiresBothFields(t *testing.T) {
	for _, raw := range []string{
		`{"weight": 3}`,
		`{"candidate": 5}`,
		`{"candidate": null, "weight": 3}`,
		`{}`,
		`null`,
	} {
		_, err := DecodeVoteArgs(raw)
		assert.True(t, errors.Is(err, ErrInvalidPayload), raw)
	}

	args, err := DecodeVoteArgs(`{"candidate": 0, "weight": 3}`)
	require.NoError(t, err)
	assert.Equal(t, Candidate(0), args.Candidate)
}

func TestEncodeAccountView(t *testing.T) {
	out, err := EncodeJSON(AccountView{Address: "hive:a", Balance: 10, Committed: 4, Available: 6})
	require.NoError(t, err)
	assert.Equal(t, `{"address":"hive:a","balance":10,"committed":4,"available":6}`, out)
}

func TestEncodeSummary(t *testing.T) {
	out, err := EncodeJSON(Summary{Asset: testAsset, Owner: "hive:deployer", Total: 5, FavoriteNumber: 99, Candidates: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"asset":"contract:token","owner":"hive:deployer","total":5,"favorite_number":99,"candidates":3}`, out)
}

func TestCandidateChunkEncoding(t *testing.T) {
	raw := encodeCandidateChunk(candidateChunk{1, 18446744073709551615, 0})
	assert.Equal(t, `[1,18446744073709551615,0]`, raw)

	ids, err := decodeCandidateChunk(raw)
	require.NoError(t, err)
	assert.Equal(t, candidateChunk{1, 18446744073709551615, 0}, ids)

	_, err = decodeCandidateChunk(`[1,`)
	assert.True(t, errors.Is(err, ErrCorruptState))
}

func TestErrorCloneKeepsSentinelClean(t *testing.T) {
	e := ErrWrongAsset.Clone().SetData("asset", "hive")
	assert.Empty(t, ErrWrongAsset.Data)
	assert.Equal(t, "attached asset is not the accepted asset (asset=hive)", e.Error())
	assert.True(t, errors.Is(e, ErrWrongAsset))
	assert.False(t, errors.Is(e, ErrOverflow))
}

func TestAmountArithmetic(t *testing.T) {
	_, err := Amount(1).Sub(2)
	assert.True(t, errors.Is(err, ErrOverflow))
	sum, err := Amount(1).Add(2)
	require.NoError(t, err)
	assert.Equal(t, Amount(3), sum)

	a, err := ParseAmount(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, Amount(42), a)
	_, err = ParseAmount("-1")
	assert.True(t, errors.Is(err, ErrInvalidPayload))
}
