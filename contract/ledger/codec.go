package ledger

import (
	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// candidateChunk is one chunk of the candidate index, stored as a JSON array.
type candidateChunk []Candidate

func (v candidateChunk) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('[')
	for i, c := range v {
		if i > 0 {
			out.RawByte(',')
		}
		out.Uint64(uint64(c))
	}
	out.RawByte(']')
}

func (v *candidateChunk) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		*v = nil
		return
	}
	in.Delim('[')
	if *v == nil {
		*v = make(candidateChunk, 0, 8)
	} else {
		*v = (*v)[:0]
	}
	for !in.IsDelim(']') {
		*v = append(*v, Candidate(in.Uint64()))
		in.WantComma()
	}
	in.Delim(']')
}

func encodeCandidateChunk(ids candidateChunk) string {
	b, _ := tinyjson.Marshal(ids)
	return string(b)
}

func decodeCandidateChunk(raw string) (candidateChunk, error) {
	var ids candidateChunk
	if err := tinyjson.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, ErrCorruptState.Clone().SetData("index", raw)
	}
	return ids, nil
}

func (v AccountView) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"address":`)
	out.String(v.Address.String())
	out.RawString(`,"balance":`)
	out.Uint64(uint64(v.Balance))
	out.RawString(`,"committed":`)
	out.Uint64(uint64(v.Committed))
	out.RawString(`,"available":`)
	out.Uint64(uint64(v.Available))
	out.RawByte('}')
}

func (v Summary) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"asset":`)
	out.String(v.Asset.String())
	out.RawString(`,"owner":`)
	out.String(v.Owner.String())
	out.RawString(`,"total":`)
	out.Uint64(uint64(v.Total))
	out.RawString(`,"favorite_number":`)
	out.Uint64(uint64(v.FavoriteNumber))
	out.RawString(`,"candidates":`)
	out.Uint64(v.Candidates)
	out.RawByte('}')
}

// voteArgsWire remembers which fields the payload carried, so that a missing
// one is not mistaken for candidate 0 or weight 0.
type voteArgsWire struct {
	args         VoteArgs
	hasCandidate bool
	hasWeight    bool
}

func (v *voteArgsWire) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "candidate":
			v.args.Candidate = Candidate(in.Uint64())
			v.hasCandidate = true
		case "weight":
			v.args.Weight = Amount(in.Uint64())
			v.hasWeight = true
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// EncodeJSON renders a view for query responses.
func EncodeJSON(v tinyjson.Marshaler) (string, error) {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeVoteArgs parses {"candidate":N,"weight":W}. Both fields are required.
func DecodeVoteArgs(raw string) (*VoteArgs, error) {
	var wire voteArgsWire
	if err := tinyjson.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, ErrInvalidPayload.Clone().SetData("vote", raw)
	}
	if !wire.hasCandidate {
		return nil, ErrInvalidPayload.Clone().SetData("vote", "missing candidate")
	}
	if !wire.hasWeight {
		return nil, ErrInvalidPayload.Clone().SetData("vote", "missing weight")
	}
	return &wire.args, nil
}
