// Package commands defines the passkeep CLI and wires dependencies for subcommands.
//
// Commands
//
//   - generate   Print a random password
//   - add        Store a password under a site, optionally generating it
//   - remove     Remove one stored password from a site
//   - list       List stored credentials, masked unless --show is given
//   - sites      List site names
//   - mcp        Serve the password tools over MCP on stdio
//
// # Implementation
//
// The root command layers configuration (defaults, YAML file, PASSKEEP_*
// environment, explicit flags) and builds the dependency graph (logger,
// storage backend, credential store) before any subcommand runs. The
// generate command does not touch storage and skips this step.
package commands
