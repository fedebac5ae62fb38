package model

import (
	"github.com/DOIDFoundation/corerpc/types"
	"github.com/btcsuite/btcd/wire"
)

// GetNetworkInfo is the result of getnetworkinfo.
type GetNetworkInfo struct {
	Version            uint32                  `json:"version"`
	Subversion         string                  `json:"subversion"`
	ProtocolVersion    uint32                  `json:"protocolversion"`
	LocalServices      wire.ServiceFlag        `json:"localservices"`
	LocalServicesNames []string                `json:"localservicesnames,omitempty"` // v21 and later
	LocalRelay         bool                    `json:"localrelay"`
	TimeOffset         int64                   `json:"timeoffset"`
	Connections        uint32                  `json:"connections"`
	ConnectionsIn      *uint32                 `json:"connections_in,omitempty"`  // v21 and later
	ConnectionsOut     *uint32                 `json:"connections_out,omitempty"` // v21 and later
	NetworkActive      bool                    `json:"networkactive"`
	Networks           []GetNetworkInfoNetwork `json:"networks"`
	RelayFee           types.Amount            `json:"relayfee"`       // per kvB
	IncrementalFee     types.Amount            `json:"incrementalfee"` // per kvB
	LocalAddresses     []GetNetworkInfoAddress `json:"localaddresses"`
	Warnings           []string                `json:"warnings"`
}

// GetNetworkInfoNetwork is the state of one reachable network.
type GetNetworkInfoNetwork struct {
	Name                      string `json:"name"`
	Limited                   bool   `json:"limited"`
	Reachable                 bool   `json:"reachable"`
	Proxy                     string `json:"proxy"`
	ProxyRandomizeCredentials bool   `json:"proxy_randomize_credentials"`
}

// GetNetworkInfoAddress is a local address the node listens on.
type GetNetworkInfoAddress struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
	Score   uint32 `json:"score"`
}
