package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type AddressType string

const (
	AddressTypeEVM      AddressType = "evm"
	AddressTypeKey      AddressType = "key"
	AddressTypeHive     AddressType = "hive"
	AddressTypeContract AddressType = "contract"
	AddressTypeSystem   AddressType = "system"
	AddressTypeUnknown  AddressType = "unknown"
)

// Address identifies an account on the host chain (like hive:alice or contract:voting).
type Address string

// String returns the literal representation of the address.
func (a Address) String() string {
	return string(a)
}

// Domain tells user, contract and system accounts apart by prefix.
func (a Address) Domain() AddressDomain {
	switch {
	case strings.HasPrefix(a.String(), "system:"):
		return AddressDomainSystem
	case strings.HasPrefix(a.String(), "contract:"):
		return AddressDomainContract
	default:
		return AddressDomainUser
	}
}

// Type inspects the prefix to categorize the address.
func (a Address) Type() AddressType {
	s := a.String()
	switch {
	case strings.HasPrefix(s, "did:pkh:eip155"):
		return AddressTypeEVM
	case strings.HasPrefix(s, "did:key:"):
		return AddressTypeKey
	case strings.HasPrefix(s, "hive:"):
		return AddressTypeHive
	case strings.HasPrefix(s, "contract:"):
		return AddressTypeContract
	case strings.HasPrefix(s, "system:"):
		return AddressTypeSystem
	default:
		return AddressTypeUnknown
	}
}

// IsValid is a light sanity check: the prefix must be recognized and something must follow it.
func (a Address) IsValid() bool {
	if a.Type() == AddressTypeUnknown {
		return false
	}
	i := strings.LastIndex(a.String(), ":")
	return i >= 0 && i < len(a)-1
}
