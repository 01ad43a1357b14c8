// Package cli is responsible for parsing command-line arguments, layering the
// configuration file and environment underneath them, and handling
// process-level concerns like exit codes. It translates the result into the
// application's internal configuration and runs one of the uaschema commands.
package cli
