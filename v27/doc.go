// Package v27 holds the wire types of daemon release 27.0. No supported reply
// changed shape, all types are re-exported from package v26.
package v27
