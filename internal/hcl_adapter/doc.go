// Package hcl_adapter provides the HCL implementation of the declaration
// Decoder and Encoder interfaces defined in the `config` package.
//
// Block structures come from the `schema` package. Identity and value
// attributes are evaluated without an evaluation context, so declaration
// files hold literals only.
package hcl_adapter
