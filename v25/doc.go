// Package v25 holds the wire types of daemon release 25.0. No supported reply
// changed shape, all types are re-exported from package v24.
package v25
