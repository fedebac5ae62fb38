// Package v19 holds the wire types of daemon release 0.19.
//
// Mempool entries report vsize and weight in place of size, and getbalances
// is new. Methods whose reply did not change are re-exported from package v18.
package v19
