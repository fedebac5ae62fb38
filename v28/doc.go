// Package v28 holds the wire types of daemon release 28.0.
//
// getblockchaininfo and getnetworkinfo report warnings as a list of strings
// instead of a single string. Every other reply is re-exported from package
// v27.
package v28
