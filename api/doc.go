// Package api is the flat, host-facing surface of numkit: plain functions
// over primitive types that a cross-language binding layer can export as is.
//
// Every routine returns an explicit error instead of aborting the host
// process. InitApp is the one-time init hook; it configures logging and the
// shared settings (sort seed, matrix workers) used by the other calls.
package api
