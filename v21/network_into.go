package v21

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
	"github.com/DOIDFoundation/corerpc/v17"
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
	connectionsIn, err := types.ToUint32(g.ConnectionsIn, "connections_in")
	if err != nil {
		return fail(GetNetworkInfoErrNumeric, err)
	}
	connectionsOut, err := types.ToUint32(g.ConnectionsOut, "connections_out")
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
		Version:            version,
		Subversion:         g.Subversion,
		ProtocolVersion:    protocol,
		LocalServices:      services,
		LocalServicesNames: g.LocalServicesNames,
		LocalRelay:         g.LocalRelay,
		TimeOffset:         g.TimeOffset,
		Connections:        connections,
		ConnectionsIn:      &connectionsIn,
		ConnectionsOut:     &connectionsOut,
		NetworkActive:      g.NetworkActive,
		Networks:           v17.Networks(g.Networks),
		RelayFee:           relayFee,
		IncrementalFee:     incrementalFee,
		LocalAddresses:     addresses,
		Warnings:           v17.Warnings(g.Warnings),
	}, nil
}
