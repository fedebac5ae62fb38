package types

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"
)

// DecodeTx decodes a hex encoded consensus serialized transaction.
func DecodeTx(s string) (*wire.MsgTx, error) {
	b, err := ParseHexBytes(s)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(b)
	tx := new(wire.MsgTx)
	if err := tx.Deserialize(r); err != nil {
		return nil, &DecodeError{What: "transaction", Err: err}
	}
	if r.Len() != 0 {
		return nil, &DecodeError{What: "transaction", Err: ErrTrailingData}
	}
	return tx, nil
}

// OptTx decodes an optional transaction.
func OptTx(s *string) (*wire.MsgTx, error) {
	if s == nil {
		return nil, nil
	}
	return DecodeTx(*s)
}

// ParsePsbt decodes a base64 encoded partially signed transaction.
func ParsePsbt(s string) (*psbt.Packet, error) {
	p, err := psbt.NewFromRawBytes(strings.NewReader(s), true)
	if err != nil {
		return nil, &DecodeError{What: "psbt", Err: err}
	}
	return p, nil
}

// OptPsbt decodes an optional partially signed transaction.
func OptPsbt(s *string) (*psbt.Packet, error) {
	if s == nil {
		return nil, nil
	}
	return ParsePsbt(*s)
}

// PublicKey is a secp256k1 public key that remembers whether it was received
// in compressed form, so that it is written back the same way.
type PublicKey struct {
	*btcec.PublicKey
	Compressed bool
}

// Bytes returns the key in the serialization it was parsed from.
func (p PublicKey) Bytes() []byte {
	if p.Compressed {
		return p.SerializeCompressed()
	}
	return p.SerializeUncompressed()
}

func (p PublicKey) String() string { return hex.EncodeToString(p.Bytes()) }

// MarshalText implements encoding.TextMarshaler.
func (p PublicKey) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// ParsePublicKey decodes a hex encoded secp256k1 public key.
func ParsePublicKey(s string) (PublicKey, error) {
	b, err := ParseHexBytes(s)
	if err != nil {
		return PublicKey{}, err
	}
	pk, err := btcec.ParsePubKey(b)
	if err != nil {
		return PublicKey{}, &DecodeError{What: "public key", Err: err}
	}
	return PublicKey{PublicKey: pk, Compressed: len(b) == 33}, nil
}

// ParseServiceFlags decodes the 16 hex character services bitfield.
func ParseServiceFlags(s string) (wire.ServiceFlag, error) {
	if len(s) != 16 {
		return 0, &HexError{Expected: 16, Got: len(s), Err: ErrInvalidLength}
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, &HexError{Got: invalidAt(s), Err: ErrInvalidChar}
	}
	return wire.ServiceFlag(v), nil
}

// ParsePublicKeys decodes every key in order and stops at the first failure.
func ParsePublicKeys(ss []string) ([]PublicKey, error) {
	return ConvertEach(ss, ParsePublicKey)
}

// OptPublicKey decodes an optional public key.
func OptPublicKey(s *string) (*PublicKey, error) {
	return Opt(s, ParsePublicKey)
}
