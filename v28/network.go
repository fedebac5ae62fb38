package v28

import "encoding/json"

// GetNetworkInfo is the result of getnetworkinfo.
type GetNetworkInfo struct {
	Version            int64                   `json:"version"`
	Subversion         string                  `json:"subversion"`
	ProtocolVersion    int64                   `json:"protocolversion"`
	LocalServices      string                  `json:"localservices"`
	LocalServicesNames []string                `json:"localservicesnames"`
	LocalRelay         bool                    `json:"localrelay"`
	TimeOffset         int64                   `json:"timeoffset"`
	Connections        int64                   `json:"connections"`
	ConnectionsIn      int64                   `json:"connections_in"`
	ConnectionsOut     int64                   `json:"connections_out"`
	NetworkActive      bool                    `json:"networkactive"`
	Networks           []GetNetworkInfoNetwork `json:"networks"`
	RelayFee           json.Number             `json:"relayfee"`
	IncrementalFee     json.Number             `json:"incrementalfee"`
	LocalAddresses     []GetNetworkInfoAddress `json:"localaddresses"`
	Warnings           []string                `json:"warnings"`
}
