// Package v26 holds the wire types of daemon release 26.0.
//
// Wallet replies report the block the wallet state was computed at as
// lastprocessedblock. gettransaction adds wtxid, replacement and mempool
// conflict data along with parent descriptors. getwalletinfo describes the
// wallet format and any running rescan, and walletprocesspsbt returns the
// finalized transaction hex once complete.
package v26
