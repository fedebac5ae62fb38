// Package v24 holds the wire types of daemon release 24.0.
//
// getmempoolinfo reports the load state, total fee, incremental relay fee,
// unbroadcast count and the full-rbf policy. gettxspendingprevout is new.
package v24
