package v19

import "github.com/DOIDFoundation/corerpc/types"

// GetBalancesErrorKind names the field of GetBalances that failed.
type GetBalancesErrorKind int

const (
	GetBalancesErrMine GetBalancesErrorKind = iota
	GetBalancesErrWatchOnly
)

var getBalancesFields = [...]string{
	GetBalancesErrMine:      "mine",
	GetBalancesErrWatchOnly: "watch_only",
}

func (k GetBalancesErrorKind) String() string { return getBalancesFields[k] }

// GetBalancesError is returned when converting a GetBalances into the model
// type.
type GetBalancesError struct {
	Kind GetBalancesErrorKind
	Err  error
}

func (e *GetBalancesError) Error() string { return types.FieldFailed(e.Kind.String(), e.Err) }

func (e *GetBalancesError) Unwrap() error { return e.Err }

// BalanceErrorKind names the balance of GetBalancesMine or
// GetBalancesWatchOnly that failed.
type BalanceErrorKind int

const (
	BalanceErrTrusted BalanceErrorKind = iota
	BalanceErrUntrustedPending
	BalanceErrImmature
	BalanceErrUsed
)

var balanceFields = [...]string{
	BalanceErrTrusted:          "trusted",
	BalanceErrUntrustedPending: "untrusted_pending",
	BalanceErrImmature:         "immature",
	BalanceErrUsed:             "used",
}

func (k BalanceErrorKind) String() string { return balanceFields[k] }

// BalanceError is returned when converting one of the balance groups of
// GetBalances.
type BalanceError struct {
	Kind BalanceErrorKind
	Err  error
}

func (e *BalanceError) Error() string { return types.FieldFailed(e.Kind.String(), e.Err) }

func (e *BalanceError) Unwrap() error { return e.Err }
