package types

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// Networks tried, in order, when decoding an address. Testnet and regtest
// share base58 prefixes so legacy test addresses report testnet.
var Networks = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.SigNetParams,
	&chaincfg.RegressionNetParams,
}

var errUnknownNetwork = errors.New("not valid on any known network")

// Address is a validated address together with the network it was decoded
// for. It is comparable and can be used as a map key.
type Address struct {
	encoded string
	net     *chaincfg.Params
}

// ParseAddress validates s against each of Networks.
func ParseAddress(s string) (Address, error) {
	for _, net := range Networks {
		addr, err := btcutil.DecodeAddress(s, net)
		if err != nil || !addr.IsForNet(net) {
			continue
		}
		return Address{encoded: addr.EncodeAddress(), net: net}, nil
	}
	return Address{}, &AddressError{Input: s, Err: errUnknownNetwork}
}

// OptAddress parses an optional address.
func OptAddress(s *string) (*Address, error) {
	if s == nil {
		return nil, nil
	}
	a, err := ParseAddress(*s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// MustParseAddress is like ParseAddress but panics on error. For tests and
// constants only.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string { return a.encoded }

// Net returns the network the address was decoded for.
func (a Address) Net() *chaincfg.Params { return a.net }

// IsValidForNetwork reports whether the address can be used on net.
func (a Address) IsValidForNetwork(net *chaincfg.Params) bool {
	addr, err := btcutil.DecodeAddress(a.encoded, net)
	return err == nil && addr.IsForNet(net)
}

// Decoded returns the btcutil form of the address.
func (a Address) Decoded() btcutil.Address {
	addr, _ := btcutil.DecodeAddress(a.encoded, a.net)
	return addr
}

// IsZero reports whether a is the zero Address.
func (a Address) IsZero() bool { return a.net == nil }

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) { return []byte(a.encoded), nil }
