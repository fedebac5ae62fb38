// Package v20 holds the wire types of daemon release 0.20.
//
// None of the supported replies changed shape in this release, every type is
// re-exported from package v19.
package v20
