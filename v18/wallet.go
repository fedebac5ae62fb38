package v18

// GetAddressInfo is the result of getaddressinfo. From this release on labels
// are plain strings.
type GetAddressInfo struct {
	Address             string                  `json:"address"`
	ScriptPubKey        string                  `json:"scriptPubKey"`
	IsMine              bool                    `json:"ismine"`
	IsWatchOnly         bool                    `json:"iswatchonly"`
	Solvable            bool                    `json:"solvable"`
	Descriptor          *string                 `json:"desc,omitempty"`
	IsScript            bool                    `json:"isscript"`
	IsChange            bool                    `json:"ischange"`
	IsWitness           bool                    `json:"iswitness"`
	WitnessVersion      *int64                  `json:"witness_version,omitempty"`
	WitnessProgram      *string                 `json:"witness_program,omitempty"`
	Script              *string                 `json:"script,omitempty"`
	Hex                 *string                 `json:"hex,omitempty"`
	PubKeys             []string                `json:"pubkeys,omitempty"`
	SigsRequired        *int64                  `json:"sigsrequired,omitempty"`
	PubKey              *string                 `json:"pubkey,omitempty"`
	Embedded            *GetAddressInfoEmbedded `json:"embedded,omitempty"`
	IsCompressed        *bool                   `json:"iscompressed,omitempty"`
	Timestamp           *int64                  `json:"timestamp,omitempty"`
	HdKeyPath           *string                 `json:"hdkeypath,omitempty"`
	HdSeedID            *string                 `json:"hdseedid,omitempty"`
	HdMasterFingerprint *string                 `json:"hdmasterfingerprint,omitempty"`
	Labels              []string                `json:"labels"`
}

// GetAddressInfoEmbedded is the embedded object of getaddressinfo.
type GetAddressInfoEmbedded struct {
	Address        string   `json:"address"`
	ScriptPubKey   string   `json:"scriptPubKey"`
	Solvable       *bool    `json:"solvable,omitempty"`
	Descriptor     *string  `json:"desc,omitempty"`
	IsScript       bool     `json:"isscript"`
	IsChange       bool     `json:"ischange"`
	IsWitness      bool     `json:"iswitness"`
	WitnessVersion *int64   `json:"witness_version,omitempty"`
	WitnessProgram *string  `json:"witness_program,omitempty"`
	Script         *string  `json:"script,omitempty"`
	Hex            *string  `json:"hex,omitempty"`
	PubKeys        []string `json:"pubkeys,omitempty"`
	SigsRequired   *int64   `json:"sigsrequired,omitempty"`
	PubKey         *string  `json:"pubkey,omitempty"`
	IsCompressed   *bool    `json:"iscompressed,omitempty"`
	Labels         []string `json:"labels,omitempty"`
}
