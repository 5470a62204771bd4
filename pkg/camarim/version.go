// Package camarim exposes module-level metadata.
package camarim

// Version is the current release of the camarim module.
const Version = "0.1.0"
