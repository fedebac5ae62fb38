package types

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Txid identifies a transaction excluding its witness data.
type Txid chainhash.Hash

// Wtxid identifies a transaction including its witness data.
type Wtxid chainhash.Hash

// BlockHash identifies a block.
type BlockHash chainhash.Hash

// Hash160 is a RIPEMD160(SHA256) digest, displayed in natural byte order.
type Hash160 [20]byte

// Work is an amount of accumulated proof of work, displayed big-endian.
type Work [32]byte

// ParseTxid parses the reversed hex display form of a transaction id.
func ParseTxid(s string) (Txid, error) {
	h, err := parseHash(s)
	return Txid(h), err
}

// ParseWtxid parses the reversed hex display form of a witness transaction id.
func ParseWtxid(s string) (Wtxid, error) {
	h, err := parseHash(s)
	return Wtxid(h), err
}

// ParseBlockHash parses the reversed hex display form of a block hash.
func ParseBlockHash(s string) (BlockHash, error) {
	h, err := parseHash(s)
	return BlockHash(h), err
}

// ParseHash160 parses 40 hex characters.
func ParseHash160(s string) (Hash160, error) {
	var h Hash160
	err := decodeFixed(h[:], s)
	return h, err
}

// ParseWork parses 64 hex characters.
func ParseWork(s string) (Work, error) {
	var w Work
	err := decodeFixed(w[:], s)
	return w, err
}

// ParseTxids parses every element in order and stops at the first failure.
// A nil input gives a nil result, an empty one an empty result.
func ParseTxids(ss []string) ([]Txid, error) {
	return ConvertEach(ss, ParseTxid)
}

// ParseBlockHashes parses every element in order and stops at the first
// failure.
func ParseBlockHashes(ss []string) ([]BlockHash, error) {
	return ConvertEach(ss, ParseBlockHash)
}

// OptTxid parses an optional transaction id.
func OptTxid(s *string) (*Txid, error) {
	if s == nil {
		return nil, nil
	}
	txid, err := ParseTxid(*s)
	if err != nil {
		return nil, err
	}
	return &txid, nil
}

// OptBlockHash parses an optional block hash.
func OptBlockHash(s *string) (*BlockHash, error) {
	if s == nil {
		return nil, nil
	}
	h, err := ParseBlockHash(*s)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func parseHash(s string) (chainhash.Hash, error) {
	var h chainhash.Hash
	if err := decodeFixed(h[:], s); err != nil {
		return h, err
	}
	// Display form is little-endian.
	for i, j := 0, len(h)-1; i < j; i, j = i+1, j-1 {
		h[i], h[j] = h[j], h[i]
	}
	return h, nil
}

func decodeFixed(dst []byte, s string) error {
	if len(s) != 2*len(dst) {
		return &HexError{Expected: 2 * len(dst), Got: len(s), Err: ErrInvalidLength}
	}
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return &HexError{Got: invalidAt(s), Err: ErrInvalidChar}
	}
	return nil
}

// ParseHexBytes decodes a variable length hex string such as a script.
func ParseHexBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, &HexError{Got: len(s), Err: ErrInvalidLength}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &HexError{Got: invalidAt(s), Err: ErrInvalidChar}
	}
	return b, nil
}

// OptHexBytes decodes an optional hex string.
func OptHexBytes(s *string) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return ParseHexBytes(*s)
}

func invalidAt(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return i
		}
	}
	return len(s)
}

func (t Txid) String() string      { return chainhash.Hash(t).String() }
func (t Wtxid) String() string     { return chainhash.Hash(t).String() }
func (b BlockHash) String() string { return chainhash.Hash(b).String() }
func (h Hash160) String() string   { return hex.EncodeToString(h[:]) }
func (w Work) String() string      { return hex.EncodeToString(w[:]) }

// MarshalText implements encoding.TextMarshaler.
func (t Txid) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (t Wtxid) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (b BlockHash) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (h Hash160) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (w Work) MarshalText() ([]byte, error) { return []byte(w.String()), nil }
