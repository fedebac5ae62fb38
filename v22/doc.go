// Package v22 holds the wire types of daemon release 22.0.
//
// testmempoolaccept reports the wtxid of each tested transaction. Every other
// reply is re-exported from package v21.
package v22
