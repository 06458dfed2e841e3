// Package zone implements a structural scanner and token dispatcher
// for RFC 1035 §5 zone-file ("master file") text, extended by RFC 3597
// generic RDATA notation and the $INCLUDE/$ORIGIN/$TTL control
// directives.
//
// The package is split into a scanning core (this package plus
// internal/scan) and a pair of small collaborator interfaces,
// RecordHandler and SourceOpener, that let callers plug in their own
// record-acceptance and $INCLUDE-resolution policy. zone/grammar and
// zone/source provide reference implementations of both so the
// package is runnable end to end without a caller writing either.
package zone
