package contract

import (
	"strconv"
	"strings"

	"voting_ledger/contract/ledger"
	"voting_ledger/sdk"
)

// unwrapPayload trims quotes and whitespace. Empty payloads come back as "".
func unwrapPayload(payload *string) string {
	if payload == nil {
		return ""
	}
	raw := strings.TrimSpace(*payload)
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return strings.TrimSpace(unquoted)
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
		}
	}
	return raw
}

// requirePayload is unwrapPayload for calls that cannot do without one.
func requirePayload(payload *string, field string) (string, error) {
	raw := unwrapPayload(payload)
	if raw == "" {
		return "", ledger.ErrInvalidPayload.Clone().SetData(field, "missing")
	}
	return raw, nil
}

func decodeAsset(payload *string) (ledger.Asset, error) {
	raw := unwrapPayload(payload)
	if raw == "" {
		return "", ledger.ErrInvalidAsset
	}
	return ledger.Asset(raw), nil
}

func decodeAmount(payload *string) (ledger.Amount, error) {
	raw, err := requirePayload(payload, "amount")
	if err != nil {
		return 0, err
	}
	return ledger.ParseAmount(raw)
}

// decodeDepositAmount falls back to the transfer.allow limit when the payload is empty.
func decodeDepositAmount(payload *string, transfer *TransferAllow) (ledger.Amount, error) {
	if unwrapPayload(payload) == "" {
		return transfer.Limit, nil
	}
	return decodeAmount(payload)
}

func decodeCandidate(payload *string) (ledger.Candidate, error) {
	raw, err := requirePayload(payload, "candidate")
	if err != nil {
		return 0, err
	}
	return ledger.ParseCandidate(raw)
}

// decodeVoteArgs accepts `candidate|weight` or {"candidate":N,"weight":W}.
func decodeVoteArgs(payload *string) (*ledger.VoteArgs, error) {
	raw, err := requirePayload(payload, "vote")
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(raw, "{") {
		return ledger.DecodeVoteArgs(raw)
	}
	parts := strings.Split(raw, "|")
	if len(parts) != 2 {
		return nil, ledger.ErrInvalidPayload.Clone().SetData("vote", "requires candidate|weight")
	}
	candidate, err := ledger.ParseCandidate(parts[0])
	if err != nil {
		return nil, err
	}
	weight, err := ledger.ParseAmount(parts[1])
	if err != nil {
		return nil, err
	}
	return &ledger.VoteArgs{Candidate: candidate, Weight: weight}, nil
}

// decodeAccount reads an optional address, defaulting to the sender.
func decodeAccount(payload *string) (sdk.Address, error) {
	raw := unwrapPayload(payload)
	if raw == "" {
		return getSenderAddress(), nil
	}
	addr := sdk.Address(raw)
	if !addr.IsValid() {
		return "", ledger.ErrInvalidPayload.Clone().SetData("address", raw)
	}
	return addr, nil
}

func strptr(s string) *string { return &s }
