package types

// stringTable maps enumeration values to their wire strings and back.
type stringTable[T comparable] struct {
	name    string
	toStr   map[T]string
	fromStr map[string]T
}

func newStringTable[T comparable](name string, m map[T]string) *stringTable[T] {
	t := &stringTable[T]{name: name, toStr: m, fromStr: make(map[string]T, len(m))}
	for k, v := range m {
		t.fromStr[v] = k
	}
	return t
}

func (t *stringTable[T]) parse(s string) (T, error) {
	v, ok := t.fromStr[s]
	if !ok {
		return v, &EnumError{Type: t.name, Value: s}
	}
	return v, nil
}

func (t *stringTable[T]) str(v T) string { return t.toStr[v] }

// ----------------------------------------------------------------
// Append new values at the end, the numeric values are not part of any wire
// format but keep them stable anyway.

// ScriptType is the type label of an output script.
type ScriptType uint8

const (
	ScriptNonStandard ScriptType = iota
	ScriptPubKey
	ScriptPubKeyHash
	ScriptHash
	ScriptMultisig
	ScriptNullData
	ScriptWitnessV0KeyHash
	ScriptWitnessV0ScriptHash
	ScriptWitnessV1Taproot
	ScriptWitnessUnknown
	ScriptAnchor
)

var scriptTypes = newStringTable("script type", map[ScriptType]string{
	ScriptNonStandard:         "nonstandard",
	ScriptPubKey:              "pubkey",
	ScriptPubKeyHash:          "pubkeyhash",
	ScriptHash:                "scripthash",
	ScriptMultisig:            "multisig",
	ScriptNullData:            "nulldata",
	ScriptWitnessV0KeyHash:    "witness_v0_keyhash",
	ScriptWitnessV0ScriptHash: "witness_v0_scripthash",
	ScriptWitnessV1Taproot:    "witness_v1_taproot",
	ScriptWitnessUnknown:      "witness_unknown",
	ScriptAnchor:              "anchor",
})

func ParseScriptType(s string) (ScriptType, error) { return scriptTypes.parse(s) }
func (t ScriptType) String() string               { return scriptTypes.str(t) }

// MarshalText implements encoding.TextMarshaler.
func (t ScriptType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// TransactionCategory is the category of a wallet transaction detail.
type TransactionCategory uint8

const (
	CategorySend TransactionCategory = iota
	CategoryReceive
	CategoryGenerate
	CategoryImmature
	CategoryOrphan
)

var categories = newStringTable("transaction category", map[TransactionCategory]string{
	CategorySend:     "send",
	CategoryReceive:  "receive",
	CategoryGenerate: "generate",
	CategoryImmature: "immature",
	CategoryOrphan:   "orphan",
})

func ParseTransactionCategory(s string) (TransactionCategory, error) { return categories.parse(s) }
func (c TransactionCategory) String() string                        { return categories.str(c) }

// MarshalText implements encoding.TextMarshaler.
func (c TransactionCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Bip125Replaceable is the replaceability state of a wallet transaction.
type Bip125Replaceable uint8

const (
	Bip125Unknown Bip125Replaceable = iota
	Bip125Yes
	Bip125No
)

var bip125 = newStringTable("bip125 replaceability", map[Bip125Replaceable]string{
	Bip125Unknown: "unknown",
	Bip125Yes:     "yes",
	Bip125No:      "no",
})

func ParseBip125Replaceable(s string) (Bip125Replaceable, error) { return bip125.parse(s) }
func (b Bip125Replaceable) String() string                     { return bip125.str(b) }

// MarshalText implements encoding.TextMarshaler.
func (b Bip125Replaceable) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// AddressPurpose is the purpose of an address book entry.
type AddressPurpose uint8

const (
	PurposeSend AddressPurpose = iota
	PurposeReceive
)

var purposes = newStringTable("address purpose", map[AddressPurpose]string{
	PurposeSend:    "send",
	PurposeReceive: "receive",
})

func ParseAddressPurpose(s string) (AddressPurpose, error) { return purposes.parse(s) }
func (p AddressPurpose) String() string                  { return purposes.str(p) }

// MarshalText implements encoding.TextMarshaler.
func (p AddressPurpose) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Chain is the network a daemon is running on.
type Chain uint8

const (
	ChainMain Chain = iota
	ChainTest
	ChainTestnet4
	ChainSignet
	ChainRegtest
)

var chains = newStringTable("chain", map[Chain]string{
	ChainMain:     "main",
	ChainTest:     "test",
	ChainTestnet4: "testnet4",
	ChainSignet:   "signet",
	ChainRegtest:  "regtest",
})

func ParseChain(s string) (Chain, error) { return chains.parse(s) }
func (c Chain) String() string         { return chains.str(c) }

// MarshalText implements encoding.TextMarshaler.
func (c Chain) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
