// Package v23 holds the wire types of daemon release 23.0.
//
// No supported reply changed shape, all types are re-exported from package
// v22.
package v23
