package v18

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetAddressInfo) IntoModel() (model.GetAddressInfo, error) {
	fail := func(kind GetAddressInfoErrorKind, err error) (model.GetAddressInfo, error) {
		return model.GetAddressInfo{}, &GetAddressInfoError{Kind: kind, Err: err}
	}

	address, err := types.ParseAddress(g.Address)
	if err != nil {
		return fail(GetAddressInfoErrAddress, err)
	}
	scriptPubKey, err := types.ParseHexBytes(g.ScriptPubKey)
	if err != nil {
		return fail(GetAddressInfoErrScriptPubKey, err)
	}
	witnessVersion, err := types.OptUint8(g.WitnessVersion, "witness_version")
	if err != nil {
		return fail(GetAddressInfoErrNumeric, err)
	}
	witnessProgram, err := types.OptHexBytes(g.WitnessProgram)
	if err != nil {
		return fail(GetAddressInfoErrWitnessProgram, err)
	}
	script, err := types.Opt(g.Script, types.ParseScriptType)
	if err != nil {
		return fail(GetAddressInfoErrScript, err)
	}
	hex, err := types.OptHexBytes(g.Hex)
	if err != nil {
		return fail(GetAddressInfoErrHex, err)
	}
	pubKeys, err := types.ParsePublicKeys(g.PubKeys)
	if err != nil {
		return fail(GetAddressInfoErrPubKeys, err)
	}
	sigsRequired, err := types.OptUint32(g.SigsRequired, "sigsrequired")
	if err != nil {
		return fail(GetAddressInfoErrNumeric, err)
	}
	pubKey, err := types.OptPublicKey(g.PubKey)
	if err != nil {
		return fail(GetAddressInfoErrPubKey, err)
	}
	var embedded *model.GetAddressInfoEmbedded
	if g.Embedded != nil {
		e, err := g.Embedded.IntoModel()
		if err != nil {
			return fail(GetAddressInfoErrEmbedded, err)
		}
		embedded = &e
	}
	timestamp, err := types.OptUint32(g.Timestamp, "timestamp")
	if err != nil {
		return fail(GetAddressInfoErrNumeric, err)
	}
	hdSeedID, err := types.Opt(g.HdSeedID, types.ParseHash160)
	if err != nil {
		return fail(GetAddressInfoErrHdSeedID, err)
	}
	solvable := g.Solvable

	return model.GetAddressInfo{
		Address:             address,
		ScriptPubKey:        scriptPubKey,
		IsMine:              g.IsMine,
		IsWatchOnly:         g.IsWatchOnly,
		Solvable:            &solvable,
		Descriptor:          g.Descriptor,
		IsScript:            g.IsScript,
		IsChange:            g.IsChange,
		IsWitness:           g.IsWitness,
		WitnessVersion:      witnessVersion,
		WitnessProgram:      witnessProgram,
		Script:              script,
		Hex:                 hex,
		PubKeys:             pubKeys,
		SigsRequired:        sigsRequired,
		PubKey:              pubKey,
		Embedded:            embedded,
		IsCompressed:        g.IsCompressed,
		Timestamp:           timestamp,
		HdKeyPath:           g.HdKeyPath,
		HdSeedID:            hdSeedID,
		HdMasterFingerprint: g.HdMasterFingerprint,
		Labels:              g.Labels,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (e GetAddressInfoEmbedded) IntoModel() (model.GetAddressInfoEmbedded, error) {
	fail := func(kind GetAddressInfoEmbeddedErrorKind, err error) (model.GetAddressInfoEmbedded, error) {
		return model.GetAddressInfoEmbedded{}, &GetAddressInfoEmbeddedError{Kind: kind, Err: err}
	}

	address, err := types.ParseAddress(e.Address)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrAddress, err)
	}
	scriptPubKey, err := types.ParseHexBytes(e.ScriptPubKey)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrScriptPubKey, err)
	}
	witnessVersion, err := types.OptUint8(e.WitnessVersion, "witness_version")
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrNumeric, err)
	}
	witnessProgram, err := types.OptHexBytes(e.WitnessProgram)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrWitnessProgram, err)
	}
	script, err := types.Opt(e.Script, types.ParseScriptType)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrScript, err)
	}
	hex, err := types.OptHexBytes(e.Hex)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrHex, err)
	}
	pubKeys, err := types.ParsePublicKeys(e.PubKeys)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrPubKeys, err)
	}
	sigsRequired, err := types.OptUint32(e.SigsRequired, "sigsrequired")
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrNumeric, err)
	}
	pubKey, err := types.OptPublicKey(e.PubKey)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrPubKey, err)
	}

	return model.GetAddressInfoEmbedded{
		Address:        address,
		ScriptPubKey:   scriptPubKey,
		Solvable:       e.Solvable,
		Descriptor:     e.Descriptor,
		IsScript:       e.IsScript,
		IsChange:       e.IsChange,
		IsWitness:      e.IsWitness,
		WitnessVersion: witnessVersion,
		WitnessProgram: witnessProgram,
		Script:         script,
		Hex:            hex,
		PubKeys:        pubKeys,
		SigsRequired:   sigsRequired,
		PubKey:         pubKey,
		IsCompressed:   e.IsCompressed,
		Labels:         e.Labels,
	}, nil
}
