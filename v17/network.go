package v17

import "encoding/json"

// GetNetworkInfo is the result of getnetworkinfo.
type GetNetworkInfo struct {
	Version         int64                   `json:"version"`
	Subversion      string                  `json:"subversion"`
	ProtocolVersion int64                   `json:"protocolversion"`
	LocalServices   string                  `json:"localservices"`
	LocalRelay      bool                    `json:"localrelay"`
	TimeOffset      int64                   `json:"timeoffset"`
	Connections     int64                   `json:"connections"`
	NetworkActive   bool                    `json:"networkactive"`
	Networks        []GetNetworkInfoNetwork `json:"networks"`
	RelayFee        json.Number             `json:"relayfee"`
	IncrementalFee  json.Number             `json:"incrementalfee"`
	LocalAddresses  []GetNetworkInfoAddress `json:"localaddresses"`
	Warnings        string                  `json:"warnings"`
}

// GetNetworkInfoNetwork is an element of GetNetworkInfo.Networks.
type GetNetworkInfoNetwork struct {
	Name                      string `json:"name"`
	Limited                   bool   `json:"limited"`
	Reachable                 bool   `json:"reachable"`
	Proxy                     string `json:"proxy"`
	ProxyRandomizeCredentials bool   `json:"proxy_randomize_credentials"`
}

// GetNetworkInfoAddress is an element of GetNetworkInfo.LocalAddresses.
type GetNetworkInfoAddress struct {
	Address string `json:"address"`
	Port    int64  `json:"port"`
	Score   int64  `json:"score"`
}
