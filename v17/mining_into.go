package v17

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type. The only fallible steps are narrowings so the
// NumericError is returned as is.
func (g GetMiningInfo) IntoModel() (model.GetMiningInfo, error) {
	blocks, err := types.ToUint32(g.Blocks, "blocks")
	if err != nil {
		return model.GetMiningInfo{}, err
	}
	weight, err := types.OptUint32(g.CurrentBlockWeight, "currentblockweight")
	if err != nil {
		return model.GetMiningInfo{}, err
	}
	txs, err := types.OptUint32(g.CurrentBlockTx, "currentblocktx")
	if err != nil {
		return model.GetMiningInfo{}, err
	}
	pooled, err := types.ToUint32(g.PooledTx, "pooledtx")
	if err != nil {
		return model.GetMiningInfo{}, err
	}

	return model.GetMiningInfo{
		Blocks:             blocks,
		CurrentBlockWeight: weight,
		CurrentBlockTx:     txs,
		Difficulty:         g.Difficulty,
		NetworkHashPs:      g.NetworkHashPs,
		PooledTx:           pooled,
		Chain:              g.Chain,
		Warnings:           Warnings(g.Warnings),
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GenerateToAddress) IntoModel() (model.GenerateToAddress, error) {
	hashes, err := types.ParseBlockHashes(g)
	return model.GenerateToAddress(hashes), err
}
