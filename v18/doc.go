// Package v18 holds the wire types of daemon release 0.18.
//
// getaddressinfo reports labels as plain strings from this release on. Every
// other method replies as in release 0.17 and is re-exported from package v17.
package v18
