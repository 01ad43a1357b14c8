// Package bootstrap populates a registry at startup. It registers compiled-in
// modules, decodes declaration files, registers what they declare and
// finalizes the registry once, reporting every problem it finds on the way.
package bootstrap
