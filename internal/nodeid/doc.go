// internal/nodeid/doc.go

/*
Package nodeid provides a structured, type-safe representation for the
namespace-qualified identities that every registered descriptor carries.

The canonical text form is `ns=<namespace>;<kind>=<value>` where kind is one of
`i` (numeric), `s` (string), `g` (GUID) or `b` (opaque, base64), e.g.
`ns=0;i=852` or `ns=2;s=Boiler.Temperature`.

This package enforces the identifier grammar and centralizes all formatting
and parsing logic, so every valid text survives a Parse/String round trip.
*/
package nodeid
