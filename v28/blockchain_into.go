package v28

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

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

	warnings := g.Warnings
	if warnings == nil {
		warnings = []string{}
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
		Warnings:             warnings,
	}, nil
}
