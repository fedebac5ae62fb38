package v17

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetBestBlockHash) IntoModel() (model.GetBestBlockHash, error) {
	h, err := types.ParseBlockHash(string(g))
	return model.GetBestBlockHash(h), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetBlockCount) IntoModel() model.GetBlockCount {
	return model.GetBlockCount(g)
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetBlockHash) IntoModel() (model.GetBlockHash, error) {
	h, err := types.ParseBlockHash(string(g))
	return model.GetBlockHash(h), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetBlockchainInfo) IntoModel() (model.GetBlockchainInfo, error) {
	fail := func(kind GetBlockchainInfoErrorKind, err error) (model.GetBlockchainInfo, error) {
		return model.GetBlockchainInfo{}, &GetBlockchainInfoError{Kind: kind, Err: err}
	}

	chain, err := types.ParseChain(g.Chain)
	if err != nil {
		return fail(GetBlockchainInfoErrChain, err)
	}
	blocks, err := types.ToUint32(g.Blocks, "blocks")
	if err != nil {
		return fail(GetBlockchainInfoErrNumeric, err)
	}
	headers, err := types.ToUint32(g.Headers, "headers")
	if err != nil {
		return fail(GetBlockchainInfoErrNumeric, err)
	}
	best, err := types.ParseBlockHash(g.BestBlockHash)
	if err != nil {
		return fail(GetBlockchainInfoErrBestBlockHash, err)
	}
	medianTime, err := types.ToUint32(g.MedianTime, "mediantime")
	if err != nil {
		return fail(GetBlockchainInfoErrNumeric, err)
	}
	work, err := types.ParseWork(g.ChainWork)
	if err != nil {
		return fail(GetBlockchainInfoErrChainWork, err)
	}
	pruneHeight, err := types.OptUint32(g.PruneHeight, "pruneheight")
	if err != nil {
		return fail(GetBlockchainInfoErrNumeric, err)
	}

	return model.GetBlockchainInfo{
		Chain:                chain,
		Blocks:               blocks,
		Headers:              headers,
		BestBlockHash:        best,
		Difficulty:           g.Difficulty,
		MedianTime:           medianTime,
		VerificationProgress: g.VerificationProgress,
		InitialBlockDownload: g.InitialBlockDownload,
		ChainWork:            work,
		SizeOnDisk:           g.SizeOnDisk,
		Pruned:               g.Pruned,
		PruneHeight:          pruneHeight,
		AutomaticPruning:     g.AutomaticPruning,
		PruneTargetSize:      g.PruneTargetSize,
		Warnings:             Warnings(g.Warnings),
	}, nil
}

// Warnings turns the single warnings string of older releases into the list
// reported since v28. An empty string means no warnings.
func Warnings(s string) []string {
	if s == "" {
		return []string{}
	}
	return []string{s}
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetMempoolInfo) IntoModel() (model.GetMempoolInfo, error) {
	fail := func(kind GetMempoolInfoErrorKind, err error) (model.GetMempoolInfo, error) {
		return model.GetMempoolInfo{}, &GetMempoolInfoError{Kind: kind, Err: err}
	}

	size, err := types.ToUint32(g.Size, "size")
	if err != nil {
		return fail(GetMempoolInfoErrNumeric, err)
	}
	bytes, err := types.ToUint32(g.Bytes, "bytes")
	if err != nil {
		return fail(GetMempoolInfoErrNumeric, err)
	}
	usage, err := types.ToUint32(g.Usage, "usage")
	if err != nil {
		return fail(GetMempoolInfoErrNumeric, err)
	}
	maxMempool, err := types.ToUint32(g.MaxMempool, "maxmempool")
	if err != nil {
		return fail(GetMempoolInfoErrNumeric, err)
	}
	minFee, err := types.ParseAmount(g.MempoolMinFee)
	if err != nil {
		return fail(GetMempoolInfoErrMempoolMinFee, err)
	}
	minRelay, err := types.ParseAmount(g.MinRelayTxFee)
	if err != nil {
		return fail(GetMempoolInfoErrMinRelayTxFee, err)
	}

	return model.GetMempoolInfo{
		Size:          size,
		Bytes:         bytes,
		Usage:         usage,
		MaxMempool:    maxMempool,
		MempoolMinFee: minFee,
		MinRelayTxFee: minRelay,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (e MempoolEntry) IntoModel() (model.MempoolEntry, error) {
	fail := func(kind MempoolEntryErrorKind, err error) (model.MempoolEntry, error) {
		return model.MempoolEntry{}, &MempoolEntryError{Kind: kind, Err: err}
	}

	size, err := types.ToUint32(e.Size, "size")
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

	return model.MempoolEntry{
		Size:              &size,
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
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (f MempoolEntryFees) IntoModel() (model.MempoolEntryFees, error) {
	base, err := types.ParseAmount(f.Base)
	if err != nil {
		return model.MempoolEntryFees{}, &MempoolEntryFeesError{Kind: MempoolEntryFeesErrBase, Err: err}
	}
	modified, err := types.ParseAmount(f.Modified)
	if err != nil {
		return model.MempoolEntryFees{}, &MempoolEntryFeesError{Kind: MempoolEntryFeesErrModified, Err: err}
	}
	ancestor, err := types.ParseAmount(f.Ancestor)
	if err != nil {
		return model.MempoolEntryFees{}, &MempoolEntryFeesError{Kind: MempoolEntryFeesErrAncestor, Err: err}
	}
	descendant, err := types.ParseAmount(f.Descendant)
	if err != nil {
		return model.MempoolEntryFees{}, &MempoolEntryFeesError{Kind: MempoolEntryFeesErrDescendant, Err: err}
	}
	return model.MempoolEntryFees{
		Base:       base,
		Modified:   modified,
		Ancestor:   ancestor,
		Descendant: descendant,
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
func (g GetMempoolAncestors) IntoModel() (model.GetMempoolAncestors, error) {
	v, err := types.ParseTxids(g)
	return model.GetMempoolAncestors(v), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetMempoolAncestorsVerbose) IntoModel() (model.GetMempoolAncestorsVerbose, error) {
	m, err := mapMempoolEntries(g)
	return model.GetMempoolAncestorsVerbose(m), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetMempoolDescendants) IntoModel() (model.GetMempoolDescendants, error) {
	v, err := types.ParseTxids(g)
	return model.GetMempoolDescendants(v), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetMempoolDescendantsVerbose) IntoModel() (model.GetMempoolDescendantsVerbose, error) {
	m, err := mapMempoolEntries(g)
	return model.GetMempoolDescendantsVerbose(m), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetRawMempool) IntoModel() (model.GetRawMempool, error) {
	v, err := types.ParseTxids(g)
	return model.GetRawMempool(v), err
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
