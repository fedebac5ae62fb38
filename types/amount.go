package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	SatoshiPerBitcoin = 100_000_000
	MaxMoney          = 21_000_000 * SatoshiPerBitcoin
)

var maxMoney = decimal.NewFromInt(MaxMoney)

// Amount is a non-negative number of satoshis.
type Amount int64

// SignedAmount is a number of satoshis that may be negative, used for wallet
// balances changes and fees reported as debits.
type SignedAmount int64

// ParseAmount parses a decimal bitcoin value as sent on the wire.
func ParseAmount(n json.Number) (Amount, error) {
	sats, err := parseSats(n, false)
	return Amount(sats), err
}

// ParseSignedAmount parses a decimal bitcoin value that may be negative.
func ParseSignedAmount(n json.Number) (SignedAmount, error) {
	sats, err := parseSats(n, true)
	return SignedAmount(sats), err
}

// OptAmount parses an optional amount.
func OptAmount(n *json.Number) (*Amount, error) {
	if n == nil {
		return nil, nil
	}
	a, err := ParseAmount(*n)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// OptSignedAmount parses an optional signed amount.
func OptSignedAmount(n *json.Number) (*SignedAmount, error) {
	if n == nil {
		return nil, nil
	}
	a, err := ParseSignedAmount(*n)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func parseSats(n json.Number, signed bool) (int64, error) {
	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return 0, &AmountError{Input: string(n), Err: err}
	}
	sats := d.Shift(8)
	if !sats.IsInteger() {
		return 0, &AmountError{Input: string(n), Err: ErrTooPrecise}
	}
	if sats.IsNegative() && !signed {
		return 0, &AmountError{Input: string(n), Err: ErrNegative}
	}
	if sats.Abs().GreaterThan(maxMoney) {
		return 0, &AmountError{Input: string(n), Err: ErrTooBig}
	}
	return sats.IntPart(), nil
}

// BTC returns the amount as a decimal bitcoin value.
func (a Amount) BTC() decimal.Decimal { return decimal.New(int64(a), -8) }

// BTC returns the amount as a decimal bitcoin value.
func (a SignedAmount) BTC() decimal.Decimal { return decimal.New(int64(a), -8) }

func (a Amount) String() string       { return a.BTC().StringFixed(8) + " BTC" }
func (a SignedAmount) String() string { return a.BTC().StringFixed(8) + " BTC" }
