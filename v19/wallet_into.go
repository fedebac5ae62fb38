package v19

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetBalances) IntoModel() (model.GetBalances, error) {
	mine, err := g.Mine.IntoModel()
	if err != nil {
		return model.GetBalances{}, &GetBalancesError{Kind: GetBalancesErrMine, Err: err}
	}
	var watchOnly *model.GetBalancesWatchOnly
	if g.WatchOnly != nil {
		w, err := g.WatchOnly.IntoModel()
		if err != nil {
			return model.GetBalances{}, &GetBalancesError{Kind: GetBalancesErrWatchOnly, Err: err}
		}
		watchOnly = &w
	}
	return model.GetBalances{Mine: mine, WatchOnly: watchOnly}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (m GetBalancesMine) IntoModel() (model.GetBalancesMine, error) {
	trusted, err := types.ParseAmount(m.Trusted)
	if err != nil {
		return model.GetBalancesMine{}, &BalanceError{Kind: BalanceErrTrusted, Err: err}
	}
	pending, err := types.ParseAmount(m.UntrustedPending)
	if err != nil {
		return model.GetBalancesMine{}, &BalanceError{Kind: BalanceErrUntrustedPending, Err: err}
	}
	immature, err := types.ParseAmount(m.Immature)
	if err != nil {
		return model.GetBalancesMine{}, &BalanceError{Kind: BalanceErrImmature, Err: err}
	}
	used, err := types.OptAmount(m.Used)
	if err != nil {
		return model.GetBalancesMine{}, &BalanceError{Kind: BalanceErrUsed, Err: err}
	}
	return model.GetBalancesMine{
		Trusted:          trusted,
		UntrustedPending: pending,
		Immature:         immature,
		Used:             used,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (w GetBalancesWatchOnly) IntoModel() (model.GetBalancesWatchOnly, error) {
	trusted, err := types.ParseAmount(w.Trusted)
	if err != nil {
		return model.GetBalancesWatchOnly{}, &BalanceError{Kind: BalanceErrTrusted, Err: err}
	}
	pending, err := types.ParseAmount(w.UntrustedPending)
	if err != nil {
		return model.GetBalancesWatchOnly{}, &BalanceError{Kind: BalanceErrUntrustedPending, Err: err}
	}
	immature, err := types.ParseAmount(w.Immature)
	if err != nil {
		return model.GetBalancesWatchOnly{}, &BalanceError{Kind: BalanceErrImmature, Err: err}
	}
	return model.GetBalancesWatchOnly{
		Trusted:          trusted,
		UntrustedPending: pending,
		Immature:         immature,
	}, nil
}
