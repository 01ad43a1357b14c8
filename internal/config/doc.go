// Package config defines the format-agnostic shape of a declaration file and
// the interfaces (Decoder, Encoder) that concrete formats implement.
//
// A Document is what a decoder hands to the bootstrap: descriptors in the
// order they were declared, each already carrying its file as Source.
// Concrete implementations for HCL and YAML live in separate packages.
package config
