package model

import "github.com/DOIDFoundation/corerpc/types"

// Single value results keep the text form of the value they wrap.

func (h GetBestBlockHash) String() string { return types.BlockHash(h).String() }

// MarshalText implements encoding.TextMarshaler.
func (h GetBestBlockHash) MarshalText() ([]byte, error) { return types.BlockHash(h).MarshalText() }

func (h GetBlockHash) String() string { return types.BlockHash(h).String() }

// MarshalText implements encoding.TextMarshaler.
func (h GetBlockHash) MarshalText() ([]byte, error) { return types.BlockHash(h).MarshalText() }

func (t SendRawTransaction) String() string { return types.Txid(t).String() }

// MarshalText implements encoding.TextMarshaler.
func (t SendRawTransaction) MarshalText() ([]byte, error) { return types.Txid(t).MarshalText() }

func (t SendToAddress) String() string { return types.Txid(t).String() }

// MarshalText implements encoding.TextMarshaler.
func (t SendToAddress) MarshalText() ([]byte, error) { return types.Txid(t).MarshalText() }

func (t SendMany) String() string { return types.Txid(t).String() }

// MarshalText implements encoding.TextMarshaler.
func (t SendMany) MarshalText() ([]byte, error) { return types.Txid(t).MarshalText() }

func (a GetNewAddress) String() string { return types.Address(a).String() }

// MarshalText implements encoding.TextMarshaler.
func (a GetNewAddress) MarshalText() ([]byte, error) { return types.Address(a).MarshalText() }

func (a GetRawChangeAddress) String() string { return types.Address(a).String() }

// MarshalText implements encoding.TextMarshaler.
func (a GetRawChangeAddress) MarshalText() ([]byte, error) { return types.Address(a).MarshalText() }
