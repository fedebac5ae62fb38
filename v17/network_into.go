package v17

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetNetworkInfo) IntoModel() (model.GetNetworkInfo, error) {
	fail := func(kind GetNetworkInfoErrorKind, err error) (model.GetNetworkInfo, error) {
		return model.GetNetworkInfo{}, &GetNetworkInfoError{Kind: kind, Err: err}
	}

	version, err := types.ToUint32(g.Version, "version")
	if err != nil {
		return fail(GetNetworkInfoErrNumeric, err)
	}
	protocol, err := types.ToUint32(g.ProtocolVersion, "protocolversion")
	if err != nil {
		return fail(GetNetworkInfoErrNumeric, err)
	}
	services, err := types.ParseServiceFlags(g.LocalServices)
	if err != nil {
		return fail(GetNetworkInfoErrLocalServices, err)
	}
	connections, err := types.ToUint32(g.Connections, "connections")
	if err != nil {
		return fail(GetNetworkInfoErrNumeric, err)
	}
	relayFee, err := types.ParseAmount(g.RelayFee)
	if err != nil {
		return fail(GetNetworkInfoErrRelayFee, err)
	}
	incrementalFee, err := types.ParseAmount(g.IncrementalFee)
	if err != nil {
		return fail(GetNetworkInfoErrIncrementalFee, err)
	}
	addresses, err := types.ConvertEach(g.LocalAddresses, GetNetworkInfoAddress.IntoModel)
	if err != nil {
		return fail(GetNetworkInfoErrLocalAddresses, err)
	}

	return model.GetNetworkInfo{
		Version:         version,
		Subversion:      g.Subversion,
		ProtocolVersion: protocol,
		LocalServices:   services,
		LocalRelay:      g.LocalRelay,
		TimeOffset:      g.TimeOffset,
		Connections:     connections,
		NetworkActive:   g.NetworkActive,
		Networks:        Networks(g.Networks),
		RelayFee:        relayFee,
		IncrementalFee:  incrementalFee,
		LocalAddresses:  addresses,
		Warnings:        Warnings(g.Warnings),
	}, nil
}

// Networks converts the infallible networks list.
func Networks(ns []GetNetworkInfoNetwork) []model.GetNetworkInfoNetwork {
	out := make([]model.GetNetworkInfoNetwork, 0, len(ns))
	for _, n := range ns {
		out = append(out, model.GetNetworkInfoNetwork(n))
	}
	return out
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (a GetNetworkInfoAddress) IntoModel() (model.GetNetworkInfoAddress, error) {
	port, err := types.ToUint16(a.Port, "port")
	if err != nil {
		return model.GetNetworkInfoAddress{}, &GetNetworkInfoAddressError{Err: err}
	}
	score, err := types.ToUint32(a.Score, "score")
	if err != nil {
		return model.GetNetworkInfoAddress{}, &GetNetworkInfoAddressError{Err: err}
	}
	return model.GetNetworkInfoAddress{Address: a.Address, Port: port, Score: score}, nil
}
