// Package v21 holds the wire types of daemon release 0.21.
//
// Mempool entries gain the unbroadcast flag, testmempoolaccept reports vsize
// and base fee of accepted transactions, and getnetworkinfo splits the
// connection count by direction. psbtbumpfee and send are new.
package v21
