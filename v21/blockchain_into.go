package v21

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (e MempoolEntry) IntoModel() (model.MempoolEntry, error) {
	fail := func(kind MempoolEntryErrorKind, err error) (model.MempoolEntry, error) {
		return model.MempoolEntry{}, &MempoolEntryError{Kind: kind, Err: err}
	}

	vsize, err := types.ToUint32(e.Vsize, "vsize")
	if err != nil {
		return fail(MempoolEntryErrNumeric, err)
	}
	weight, err := types.ToUint32(e.Weight, "weight")
	if err != nil {
		return fail(MempoolEntryErrNumeric, err)
	}
	time, err := types.ToUint32(e.Time, "time")
	if err != nil {
		return fail(MempoolEntryErrNumeric, err)
	}
	height, err := types.ToUint32(e.Height, "height")
	if err != nil {
		return fail(MempoolEntryErrNumeric, err)
	}
	descendantCount, err := types.ToUint32(e.DescendantCount, "descendantcount")
	if err != nil {
		return fail(MempoolEntryErrNumeric, err)
	}
	descendantSize, err := types.ToUint32(e.DescendantSize, "descendantsize")
	if err != nil {
		return fail(MempoolEntryErrNumeric, err)
	}
	ancestorCount, err := types.ToUint32(e.AncestorCount, "ancestorcount")
	if err != nil {
		return fail(MempoolEntryErrNumeric, err)
	}
	ancestorSize, err := types.ToUint32(e.AncestorSize, "ancestorsize")
	if err != nil {
		return fail(MempoolEntryErrNumeric, err)
	}
	wtxid, err := types.ParseWtxid(e.Wtxid)
	if err != nil {
		return fail(MempoolEntryErrWtxid, err)
	}
	fees, err := e.Fees.IntoModel()
	if err != nil {
		return fail(MempoolEntryErrFees, err)
	}
	depends, err := types.ParseTxids(e.Depends)
	if err != nil {
		return fail(MempoolEntryErrDepends, err)
	}
	spentBy, err := types.ParseTxids(e.SpentBy)
	if err != nil {
		return fail(MempoolEntryErrSpentBy, err)
	}
	bip125 := e.Bip125Replaceable
	unbroadcast := e.Unbroadcast

	return model.MempoolEntry{
		Vsize:             &vsize,
		Weight:            &weight,
		Time:              time,
		Height:            height,
		DescendantCount:   descendantCount,
		DescendantSize:    descendantSize,
		AncestorCount:     ancestorCount,
		AncestorSize:      ancestorSize,
		Wtxid:             wtxid,
		Fees:              fees,
		Depends:           depends,
		SpentBy:           spentBy,
		Bip125Replaceable: &bip125,
		Unbroadcast:       &unbroadcast,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetMempoolEntry) IntoModel() (model.GetMempoolEntry, error) {
	entry, err := g.MempoolEntry.IntoModel()
	if err != nil {
		return model.GetMempoolEntry{}, err
	}
	return model.GetMempoolEntry{MempoolEntry: entry}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetMempoolAncestorsVerbose) IntoModel() (model.GetMempoolAncestorsVerbose, error) {
	m, err := mapMempoolEntries(g)
	return model.GetMempoolAncestorsVerbose(m), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetMempoolDescendantsVerbose) IntoModel() (model.GetMempoolDescendantsVerbose, error) {
	m, err := mapMempoolEntries(g)
	return model.GetMempoolDescendantsVerbose(m), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetRawMempoolVerbose) IntoModel() (model.GetRawMempoolVerbose, error) {
	m, err := mapMempoolEntries(g)
	return model.GetRawMempoolVerbose(m), err
}

func mapMempoolEntries(m map[string]MempoolEntry) (map[types.Txid]model.MempoolEntry, error) {
	return types.MapBy(m, types.ParseTxid, MempoolEntry.IntoModel,
		func(err error) error { return &MapMempoolEntryError{Kind: MapMempoolEntryErrTxid, Err: err} },
		func(err error) error { return &MapMempoolEntryError{Kind: MapMempoolEntryErrMempoolEntry, Err: err} },
	)
}
